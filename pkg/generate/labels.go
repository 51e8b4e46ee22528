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
)

var tagColors = []string{
	"dark-pink", "dark-green", "dark-blue", "dark-red", "dark-teal",
	"light-pink", "light-green", "light-blue", "light-orange", "light-purple",
}

var tagNames = []string{
	"urgent", "blocked", "needs-review", "frontend", "backend",
	"design", "bug", "customer", "quick-win", "research",
}

// TagGenerator creates the org-level tag set and links a random handful of
// tags to each task.
type TagGenerator struct {
	labels *store.LabelRepository
	cfg    *config.Config
	logger *zap.Logger
	rand   *rand.Rand
}

func NewTagGenerator(labels *store.LabelRepository, cfg *config.Config, logger *zap.Logger, r *rand.Rand) *TagGenerator {
	return &TagGenerator{labels: labels, cfg: cfg, logger: logger, rand: r}
}

func (g *TagGenerator) Generate(ctx context.Context, tasks []model.Task) error {
	tags := make([]model.Tag, 0, len(tagNames))
	for i, name := range tagNames {
		tags = append(tags, model.Tag{
			ID:             uuid.NewString(),
			OrganizationID: g.cfg.Organization.ID,
			Name:           name,
			Color:          tagColors[i%len(tagColors)],
			CreatedAt:      time.Now(),
		})
	}
	if err := g.labels.CreateTags(ctx, tags); err != nil {
		return fmt.Errorf("failed to insert tags: %w", err)
	}

	var links []model.TaskTag
	for _, task := range tasks {
		count := g.rand.Intn(g.cfg.Generation.MaxTagsPerTask + 1)
		// A task cannot carry more tags than exist.
		if count > len(tags) {
			count = len(tags)
		}
		for _, idx := range g.rand.Perm(len(tags))[:count] {
			links = append(links, model.TaskTag{TaskID: task.ID, TagID: tags[idx].ID})
		}
	}
	if err := g.labels.CreateTaskTags(ctx, links); err != nil {
		return fmt.Errorf("failed to insert task tags: %w", err)
	}

	g.logger.Info("generated tags",
		zap.Int("tags", len(tags)),
		zap.Int("assignments", len(links)))
	return nil
}

// CustomFieldGenerator defines a small field set per project and fills
// values on roughly half of each project's tasks.
type CustomFieldGenerator struct {
	labels *store.LabelRepository
	logger *zap.Logger
	rand   *rand.Rand
}

func NewCustomFieldGenerator(labels *store.LabelRepository, logger *zap.Logger, r *rand.Rand) *CustomFieldGenerator {
	return &CustomFieldGenerator{labels: labels, logger: logger, rand: r}
}

var effortPoints = []int{1, 2, 3, 5, 8}

func (g *CustomFieldGenerator) Generate(ctx context.Context, projects []model.Project, tasks []model.Task) error {
	tasksByProject := make(map[string][]model.Task)
	for _, task := range tasks {
		tasksByProject[task.ProjectID] = append(tasksByProject[task.ProjectID], task)
	}

	var defs []model.CustomFieldDefinition
	var values []model.CustomFieldValue
	for _, project := range projects {
		effort := model.CustomFieldDefinition{
			ID:        uuid.NewString(),
			ProjectID: project.ID,
			Name:      "Effort",
			FieldType: "number",
			CreatedAt: time.Now(),
		}
		sprint := model.CustomFieldDefinition{
			ID:        uuid.NewString(),
			ProjectID: project.ID,
			Name:      "Sprint",
			FieldType: "enum",
			Options:   model.JSONB{"values": []string{"Sprint 1", "Sprint 2", "Sprint 3", "Sprint 4", "Sprint 5", "Sprint 6"}},
			CreatedAt: time.Now(),
		}
		defs = append(defs, effort, sprint)

		for _, task := range tasksByProject[project.ID] {
			if g.rand.Float64() >= 0.5 {
				continue
			}
			values = append(values,
				model.CustomFieldValue{
					ID:           uuid.NewString(),
					DefinitionID: effort.ID,
					TaskID:       task.ID,
					Value:        model.JSONB{"value": effortPoints[g.rand.Intn(len(effortPoints))]},
					CreatedAt:    time.Now(),
				},
				model.CustomFieldValue{
					ID:           uuid.NewString(),
					DefinitionID: sprint.ID,
					TaskID:       task.ID,
					Value:        model.JSONB{"value": fmt.Sprintf("Sprint %d", g.rand.Intn(6)+1)},
					CreatedAt:    time.Now(),
				},
			)
		}
	}

	if err := g.labels.CreateFieldDefinitions(ctx, defs); err != nil {
		return fmt.Errorf("failed to insert field definitions: %w", err)
	}
	if err := g.labels.CreateFieldValues(ctx, values); err != nil {
		return fmt.Errorf("failed to insert field values: %w", err)
	}

	g.logger.Info("generated custom fields",
		zap.Int("definitions", len(defs)),
		zap.Int("values", len(values)))
	return nil
}
