package generate

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/seedforge/seedforge/pkg/config"
	"github.com/seedforge/seedforge/pkg/namegen"
	"github.com/seedforge/seedforge/pkg/store"
	"github.com/seedforge/seedforge/pkg/textgen"
)

// testEnv bundles everything a generator test needs: an in-memory store
// with migrated schema, a small-scale config, and deterministic providers.
type testEnv struct {
	store *store.Store
	cfg   *config.Config
	rand  *rand.Rand
	names *namegen.Provider
	text  *textgen.Generator
}

func newTestEnv(t *testing.T, seed int64) *testEnv {
	t.Helper()

	s, err := store.NewStore(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"},
		Generation: config.GenerationConfig{
			Seed:               seed,
			NumUsers:           40,
			NumProjects:        175,
			MinTasksPerProject: 3,
			MaxTasksPerProject: 6,
			SubtaskProbability: 0.4,
			MaxSubtasksPerTask: 3,
			CommentProbability: 0.3,
			MaxTagsPerTask:     3,
		},
		Dates: config.DateConfig{HistoryMonths: 6, FutureMonths: 3},
	}
	cfg.ApplyDefaults()

	r := rand.New(rand.NewSource(seed))
	return &testEnv{
		store: s,
		cfg:   cfg,
		rand:  r,
		names: namegen.New(),
		text:  textgen.NewGenerator(nil, textgen.NewStaticProvider(r), 0, zap.NewNop()),
	}
}

func (e *testEnv) pipeline() *Pipeline {
	return NewPipeline(e.store, e.cfg, zap.NewNop(), e.rand, e.names, e.text)
}
