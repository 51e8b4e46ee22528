package generate

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/seedforge/seedforge/pkg/config"
	"github.com/seedforge/seedforge/pkg/namegen"
	"github.com/seedforge/seedforge/pkg/store"
	"github.com/seedforge/seedforge/pkg/textgen"
	"github.com/seedforge/seedforge/pkg/validate"
)

// Pipeline wires the generators together and runs them in the fixed
// topological order. Everything downstream shares one seeded rand source,
// so a fixed seed and configuration reproduce the same row counts.
type Pipeline struct {
	store  *store.Store
	cfg    *config.Config
	logger *zap.Logger
	rand   *rand.Rand
	names  *namegen.Provider
	text   *textgen.Generator
}

func NewPipeline(s *store.Store, cfg *config.Config, logger *zap.Logger,
	r *rand.Rand, names *namegen.Provider, text *textgen.Generator) *Pipeline {
	return &Pipeline{
		store:  s,
		cfg:    cfg,
		logger: logger,
		rand:   r,
		names:  names,
		text:   text,
	}
}

// Run executes the full generation sequence against a freshly reset
// schema, then validates and logs the summary. Any returned error is
// fatal; no partial result is considered consistent.
func (p *Pipeline) Run(ctx context.Context) error {
	started := time.Now()

	db := p.store.DB()
	seeds := store.NewSeedRepository(db)
	userRepo := store.NewUserRepository(db)
	projectRepo := store.NewProjectRepository(db)
	taskRepo := store.NewTaskRepository(db)
	labelRepo := store.NewLabelRepository(db)

	window := newDateWindow(&p.cfg.Dates, started)

	seeder := NewSeeder(seeds, p.cfg, p.logger)
	if err := seeder.Run(ctx); err != nil {
		return err
	}

	users, err := NewUserGenerator(seeds, userRepo, p.names, p.cfg, p.logger, p.rand, window).Generate(ctx)
	if err != nil {
		return err
	}

	projects, err := NewProjectGenerator(seeds, projectRepo, p.text, p.cfg, p.logger, p.rand, window).Generate(ctx, users)
	if err != nil {
		return err
	}

	tasks, err := NewTaskGenerator(taskRepo, p.text, p.cfg, p.logger, p.rand, window).Generate(ctx, projects, users)
	if err != nil {
		return err
	}

	subtasks, err := NewSubtaskGenerator(taskRepo, p.text, p.cfg, p.logger, p.rand, window).Generate(ctx, projects, tasks)
	if err != nil {
		return err
	}
	tasks = append(tasks, subtasks...)

	if _, err := NewCommentGenerator(taskRepo, p.text, p.cfg, p.logger, p.rand).Generate(ctx, tasks); err != nil {
		return err
	}

	if err := NewTagGenerator(labelRepo, p.cfg, p.logger, p.rand).Generate(ctx, tasks); err != nil {
		return err
	}

	if err := NewCustomFieldGenerator(labelRepo, p.logger, p.rand).Generate(ctx, projects, tasks); err != nil {
		return err
	}

	// Diagnostics only; a failed sweep is reported but never fatal.
	findings, err := validate.New(db, p.logger).Run(ctx)
	if err != nil {
		p.logger.Warn("validation sweep failed", zap.Error(err))
	} else if total := validate.Violations(findings); total == 0 {
		p.logger.Info("validation passed, no violations found")
	}

	if err := p.logSummary(); err != nil {
		return err
	}

	p.logger.Info("generation completed",
		zap.Duration("elapsed", time.Since(started)),
		zap.Time("completed_at", time.Now()))
	return nil
}

func (p *Pipeline) logSummary() error {
	counts, err := p.store.Counts()
	if err != nil {
		return fmt.Errorf("failed to build run summary: %w", err)
	}

	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	fields := make([]zap.Field, 0, len(tables))
	for _, table := range tables {
		fields = append(fields, zap.Int64(table, counts[table]))
	}
	p.logger.Info("generation summary", fields...)
	return nil
}
