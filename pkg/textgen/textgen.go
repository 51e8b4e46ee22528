// Package textgen produces short realistic text for generated records. A
// remote LLM provider can supply it; a deterministic static corpus always
// backs it up, so callers never see an error or an empty string.
package textgen

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seedforge/seedforge/pkg/model"
)

// Category is the typed content kind. It replaces prompt-string sniffing:
// the fallback and the prompt builder both branch on it explicitly.
type Category string

const (
	CategoryTaskName           Category = "task_name"
	CategoryTaskDescription    Category = "task_description"
	CategoryComment            Category = "comment"
	CategoryProjectDescription Category = "project_description"
)

// Context carries the upstream facts a provider may use.
type Context struct {
	ProjectName string
	TeamType    model.TeamType
	TaskName    string
}

// Provider produces one piece of text for a category and context.
type Provider interface {
	Generate(ctx context.Context, category Category, tctx Context) (string, error)
}

// Generator wraps an optional primary provider with the static fallback.
// Primary failures are absorbed here and never surface to generators.
type Generator struct {
	primary  Provider
	fallback *StaticProvider
	delay    time.Duration
	lastCall time.Time
	logger   *zap.Logger
}

// NewGenerator builds a generator. primary may be nil, in which case every
// request is served from the static corpus. delay spaces out successive
// primary calls to respect provider rate limits.
func NewGenerator(primary Provider, fallback *StaticProvider, delay time.Duration, logger *zap.Logger) *Generator {
	return &Generator{
		primary:  primary,
		fallback: fallback,
		delay:    delay,
		logger:   logger,
	}
}

// Generate returns text for the category. It never fails.
func (g *Generator) Generate(ctx context.Context, category Category, tctx Context) string {
	if g.primary != nil {
		g.throttle()
		text, err := g.primary.Generate(ctx, category, tctx)
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			g.logger.Debug("text provider failed, using fallback",
				zap.String("category", string(category)),
				zap.Error(err))
		}
	}
	text, _ := g.fallback.Generate(ctx, category, tctx)
	return text
}

func (g *Generator) throttle() {
	if g.delay <= 0 {
		return
	}
	if elapsed := time.Since(g.lastCall); elapsed < g.delay {
		time.Sleep(g.delay - elapsed)
	}
	g.lastCall = time.Now()
}
