package generate

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seedforge/seedforge/pkg/config"
	"github.com/seedforge/seedforge/pkg/model"
	"github.com/seedforge/seedforge/pkg/store"
	"github.com/seedforge/seedforge/pkg/textgen"
)

// CommentGenerator leaves at most one comment per task, authored by the
// task's assignee. Unassigned tasks get none. The timestamp is generation
// time, not sampled inside the task's lifespan.
type CommentGenerator struct {
	tasks  *store.TaskRepository
	text   *textgen.Generator
	cfg    *config.Config
	logger *zap.Logger
	rand   *rand.Rand
}

func NewCommentGenerator(tasks *store.TaskRepository, text *textgen.Generator,
	cfg *config.Config, logger *zap.Logger, r *rand.Rand) *CommentGenerator {
	return &CommentGenerator{
		tasks:  tasks,
		text:   text,
		cfg:    cfg,
		logger: logger,
		rand:   r,
	}
}

func (g *CommentGenerator) Generate(ctx context.Context, tasks []model.Task) ([]model.Comment, error) {
	var comments []model.Comment
	for _, task := range tasks {
		if g.rand.Float64() >= g.cfg.Generation.CommentProbability {
			continue
		}
		if task.AssigneeID == nil {
			continue
		}

		text := g.text.Generate(ctx, textgen.CategoryComment, textgen.Context{TaskName: task.Name})
		comments = append(comments, model.Comment{
			ID:        uuid.NewString(),
			TaskID:    task.ID,
			UserID:    *task.AssigneeID,
			Text:      text,
			CreatedAt: time.Now(),
		})
	}

	if err := g.tasks.CreateComments(ctx, comments); err != nil {
		return nil, fmt.Errorf("failed to insert comments: %w", err)
	}

	g.logger.Info("generated comments", zap.Int("count", len(comments)))
	return comments, nil
}
