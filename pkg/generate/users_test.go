package generate

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seedforge/seedforge/pkg/model"
	"github.com/seedforge/seedforge/pkg/store"
)

func seededEnv(t *testing.T, seed int64) *testEnv {
	t.Helper()
	env := newTestEnv(t, seed)
	seeder := NewSeeder(store.NewSeedRepository(env.store.DB()), env.cfg, zap.NewNop())
	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}
	return env
}

func newUserGen(env *testEnv) *UserGenerator {
	db := env.store.DB()
	window := newDateWindow(&env.cfg.Dates, time.Now())
	return NewUserGenerator(
		store.NewSeedRepository(db), store.NewUserRepository(db),
		env.names, env.cfg, zap.NewNop(), env.rand, window)
}

func TestUserGeneratorExactCount(t *testing.T) {
	env := seededEnv(t, 42)

	users, err := newUserGen(env).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(users) != env.cfg.Generation.NumUsers {
		t.Fatalf("expected exactly %d users, got %d", env.cfg.Generation.NumUsers, len(users))
	}

	var stored int64
	if err := env.store.DB().Model(&model.User{}).Count(&stored).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if stored != int64(len(users)) {
		t.Fatalf("stored %d users, generated %d", stored, len(users))
	}
}

func TestUserGeneratorFailsWithoutTeams(t *testing.T) {
	env := newTestEnv(t, 42) // schema migrated, nothing seeded

	if _, err := newUserGen(env).Generate(context.Background()); err == nil {
		t.Fatal("expected fatal error when no teams exist")
	}
}

func TestUserEmailDerivation(t *testing.T) {
	env := seededEnv(t, 7)

	users, err := newUserGen(env).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	domain := "@" + env.cfg.Organization.Domain
	for _, user := range users {
		if !strings.HasSuffix(user.Email, domain) {
			t.Fatalf("email %q missing domain %q", user.Email, domain)
		}
		if user.Email != strings.ToLower(user.Email) {
			t.Fatalf("email %q not lowercased", user.Email)
		}
		local := strings.TrimSuffix(user.Email, domain)
		if !strings.Contains(local, ".") {
			t.Fatalf("email local part %q not first.last shaped", local)
		}
		if user.JobTitle == "" {
			t.Fatalf("user %s has no job title", user.ID)
		}
	}
}

func TestUserDepartmentsMatchTeamTypes(t *testing.T) {
	env := seededEnv(t, 7)

	users, err := newUserGen(env).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	valid := map[model.TeamType]bool{
		model.TeamProduct:    true,
		model.TeamMarketing:  true,
		model.TeamOperations: true,
	}
	for _, user := range users {
		if !valid[user.Department] {
			t.Fatalf("user %s has unknown department %q", user.ID, user.Department)
		}
	}
}

func TestWeightedTeamApproximatesShares(t *testing.T) {
	teams := []model.Team{
		{ID: "a", Type: model.TeamProduct, UserShare: 0.5},
		{ID: "b", Type: model.TeamMarketing, UserShare: 0.25},
		{ID: "c", Type: model.TeamOperations, UserShare: 0.25},
	}

	r := rand.New(rand.NewSource(99))
	counts := map[string]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[weightedTeam(r, teams).ID]++
	}

	expect := map[string]float64{"a": 0.5, "b": 0.25, "c": 0.25}
	for id, share := range expect {
		got := float64(counts[id]) / draws
		if got < share-0.05 || got > share+0.05 {
			t.Fatalf("team %s share %f too far from %f", id, got, share)
		}
	}
}

func TestWeightedTeamUnnormalizedShares(t *testing.T) {
	// Shares are relative weights, not a partition of 1.
	teams := []model.Team{
		{ID: "a", UserShare: 3},
		{ID: "b", UserShare: 1},
	}

	r := rand.New(rand.NewSource(5))
	counts := map[string]int{}
	const draws = 8000
	for i := 0; i < draws; i++ {
		counts[weightedTeam(r, teams).ID]++
	}

	got := float64(counts["a"]) / draws
	if got < 0.70 || got > 0.80 {
		t.Fatalf("expected ~75%% for weight 3 of 4, got %f", got)
	}
}
