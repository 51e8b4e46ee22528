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

var priorities = []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}

// TaskGenerator populates every project with tasks. Task count and section,
// assignee, priority, and date choices are random; completion is sampled
// against the completion-rate range configured for the project's workload
// type. All tasks across all projects go into one batched insert.
//
// Projects are walked in the order the project generator produced them.
// Reloading them from the store would order by uuid, and since the number
// of draws taken per project varies, that would break fixed-seed
// reproducibility.
type TaskGenerator struct {
	tasks  *store.TaskRepository
	text   *textgen.Generator
	cfg    *config.Config
	logger *zap.Logger
	rand   *rand.Rand
	window dateWindow
}

func NewTaskGenerator(tasks *store.TaskRepository, text *textgen.Generator,
	cfg *config.Config, logger *zap.Logger, r *rand.Rand, window dateWindow) *TaskGenerator {
	return &TaskGenerator{
		tasks:  tasks,
		text:   text,
		cfg:    cfg,
		logger: logger,
		rand:   r,
		window: window,
	}
}

func (g *TaskGenerator) Generate(ctx context.Context, projects []model.Project, users []model.User) ([]model.Task, error) {
	byDepartment := make(map[model.TeamType][]model.User)
	for _, user := range users {
		byDepartment[user.Department] = append(byDepartment[user.Department], user)
	}

	gen := g.cfg.Generation
	var tasks []model.Task
	for i := range projects {
		project := &projects[i]

		// Assignees must come from the department matching the project's
		// team; an empty pool just leaves tasks unassigned.
		pool := byDepartment[teamTypeFor(project.Type)]

		rate := g.completionRate(project)
		count := gen.MinTasksPerProject + g.rand.Intn(gen.MaxTasksPerProject-gen.MinTasksPerProject+1)

		for j := 0; j < count; j++ {
			tasks = append(tasks, g.buildTask(ctx, project, pool, rate))
		}
	}

	if err := g.tasks.CreateBatch(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to insert tasks: %w", err)
	}

	g.logger.Info("generated tasks",
		zap.Int("count", len(tasks)),
		zap.Int("projects", len(projects)))
	return tasks, nil
}

func (g *TaskGenerator) buildTask(ctx context.Context, project *model.Project, pool []model.User, rate float64) model.Task {
	tctx := textgen.Context{
		ProjectName: project.Name,
		TeamType:    teamTypeFor(project.Type),
	}
	name := g.text.Generate(ctx, textgen.CategoryTaskName, tctx)
	tctx.TaskName = name
	description := g.text.Generate(ctx, textgen.CategoryTaskDescription, tctx)

	// All tasks of a project share the project's creation timestamp.
	created := project.CreatedAt
	due := timestampBetween(g.rand, created, g.window.horizon)

	task := model.Task{
		ID:          uuid.NewString(),
		ProjectID:   project.ID,
		Name:        name,
		Description: description,
		Priority:    priorities[g.rand.Intn(len(priorities))],
		DueDate:     &due,
		CreatedAt:   created,
	}

	if len(project.Sections) > 0 {
		sectionID := project.Sections[g.rand.Intn(len(project.Sections))].ID
		task.SectionID = &sectionID
	}
	if len(pool) > 0 {
		assigneeID := pool[g.rand.Intn(len(pool))].ID
		task.AssigneeID = &assigneeID
	}

	if g.rand.Float64() < rate {
		completedAt := timestampBetween(g.rand, created, due)
		task.Completed = true
		task.CompletedAt = &completedAt
	}

	return task
}

// completionRate samples a rate inside the range configured for the
// project's workload type, falling back to the default range.
func (g *TaskGenerator) completionRate(project *model.Project) float64 {
	workload := "default"
	if project.Workstream != nil {
		workload = workloadForSource(project.Workstream.Source)
	}

	rates := g.cfg.Generation.CompletionRates
	r, ok := rates[workload]
	if !ok {
		r, ok = rates["default"]
		if !ok {
			return 0.5
		}
	}
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + g.rand.Float64()*(r.Max-r.Min)
}
