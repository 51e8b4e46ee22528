package generate

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seedforge/seedforge/pkg/config"
	"github.com/seedforge/seedforge/pkg/model"
	"github.com/seedforge/seedforge/pkg/store"
	"github.com/seedforge/seedforge/pkg/textgen"
)

// SubtaskGenerator attaches subtasks to a share of incomplete tasks. A
// subtask is a task row with ParentTaskID set; it inherits the parent's
// project, section, assignee, and creation time. Nesting stops at one
// level: tasks that already have a parent are never considered. Candidates
// come from the in-memory task slice, in generation order, so draws from
// the seeded rand replay identically run to run.
type SubtaskGenerator struct {
	tasks  *store.TaskRepository
	text   *textgen.Generator
	cfg    *config.Config
	logger *zap.Logger
	rand   *rand.Rand
	window dateWindow
}

func NewSubtaskGenerator(tasks *store.TaskRepository, text *textgen.Generator,
	cfg *config.Config, logger *zap.Logger, r *rand.Rand, window dateWindow) *SubtaskGenerator {
	return &SubtaskGenerator{
		tasks:  tasks,
		text:   text,
		cfg:    cfg,
		logger: logger,
		rand:   r,
		window: window,
	}
}

func (g *SubtaskGenerator) Generate(ctx context.Context, projects []model.Project, tasks []model.Task) ([]model.Task, error) {
	parents := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.Completed && task.ParentTaskID == nil {
			parents = append(parents, task)
		}
	}

	teamTypes := make(map[string]model.TeamType, len(projects))
	for _, project := range projects {
		teamTypes[project.ID] = teamTypeFor(project.Type)
	}

	gen := g.cfg.Generation
	var subtasks []model.Task
	for _, parent := range parents {
		if g.rand.Float64() >= gen.SubtaskProbability {
			continue
		}

		count := g.rand.Intn(gen.MaxSubtasksPerTask + 1)
		for i := 0; i < count; i++ {
			parentID := parent.ID
			tctx := textgen.Context{
				ProjectName: parent.Name,
				TeamType:    teamTypes[parent.ProjectID],
			}
			name := g.text.Generate(ctx, textgen.CategoryTaskName, tctx)
			due := timestampBetween(g.rand, parent.CreatedAt, g.window.horizon)

			subtasks = append(subtasks, model.Task{
				ID:           uuid.NewString(),
				ProjectID:    parent.ProjectID,
				SectionID:    parent.SectionID,
				AssigneeID:   parent.AssigneeID,
				ParentTaskID: &parentID,
				Name:         name,
				Priority:     priorities[g.rand.Intn(len(priorities))],
				DueDate:      &due,
				CreatedAt:    parent.CreatedAt,
			})
		}
	}

	if err := g.tasks.CreateBatch(ctx, subtasks); err != nil {
		return nil, fmt.Errorf("failed to insert subtasks: %w", err)
	}

	g.logger.Info("generated subtasks",
		zap.Int("count", len(subtasks)),
		zap.Int("eligible_parents", len(parents)))
	return subtasks, nil
}
