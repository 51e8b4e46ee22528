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

var projectColors = []string{
	"dark-pink", "dark-green", "dark-blue", "dark-red", "dark-teal",
	"dark-brown", "dark-orange", "dark-purple", "dark-warm-gray",
	"light-pink", "light-green", "light-blue", "light-red", "light-teal",
	"light-yellow", "light-orange", "light-purple", "light-warm-gray",
}

var sectionTemplates = map[model.ProjectType][]string{
	model.ProjectEngineering: {"Backlog", "To Do", "In Progress", "Code Review", "Testing", "Done"},
	model.ProjectMarketing:   {"Briefing", "Asset Creation", "Review", "Publishing", "Distribution"},
	model.ProjectOperations:  {"New Requests", "In Progress", "Blocked", "Completed"},
}

// ProjectGenerator turns workstreams into projects, one per workstream,
// until the configured target is reached. Each project gets its section
// template immediately. A strategy source with no workstreams is logged
// and skipped; the final count may fall short of the target.
type ProjectGenerator struct {
	seeds    *store.SeedRepository
	projects *store.ProjectRepository
	text     *textgen.Generator
	cfg      *config.Config
	logger   *zap.Logger
	rand     *rand.Rand
	window   dateWindow
}

func NewProjectGenerator(seeds *store.SeedRepository, projects *store.ProjectRepository, text *textgen.Generator,
	cfg *config.Config, logger *zap.Logger, r *rand.Rand, window dateWindow) *ProjectGenerator {
	return &ProjectGenerator{
		seeds:    seeds,
		projects: projects,
		text:     text,
		cfg:      cfg,
		logger:   logger,
		rand:     r,
		window:   window,
	}
}

func (g *ProjectGenerator) Generate(ctx context.Context, users []model.User) ([]model.Project, error) {
	byDepartment := make(map[model.TeamType][]model.User)
	for _, user := range users {
		byDepartment[user.Department] = append(byDepartment[user.Department], user)
	}

	target := g.cfg.Generation.NumProjects
	created := make([]model.Project, 0, target)

	for _, source := range strategySources {
		if len(created) >= target {
			break
		}

		workstreams, err := g.seeds.ListWorkstreamsBySource(ctx, source.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to load workstreams for %s: %w", source.Name, err)
		}
		if len(workstreams) == 0 {
			g.logger.Warn("strategy source has no workstreams, skipping",
				zap.String("source", source.Name))
			continue
		}

		for _, ws := range workstreams {
			if len(created) >= target {
				break
			}

			ws := ws
			project := model.Project{
				ID:           uuid.NewString(),
				WorkstreamID: &ws.ID,
				Workstream:   &ws,
				TeamID:       source.TeamID,
				OwnerID:      g.pickOwner(byDepartment, source.ProjectType),
				Name:         ws.Name,
				Type:         source.ProjectType,
				Status:       statusFor(ws.Status),
				Color:        projectColors[len(created)%len(projectColors)],
				CreatedAt:    timestampBetween(g.rand, g.window.historyStart, g.window.now),
			}
			project.Description = g.text.Generate(ctx, textgen.CategoryProjectDescription, textgen.Context{
				ProjectName: project.Name,
				TeamType:    teamTypeFor(source.ProjectType),
			})

			sections := sectionsFor(&project)
			if err := g.projects.Create(ctx, &project, sections); err != nil {
				return nil, fmt.Errorf("failed to insert project %s: %w", project.Name, err)
			}
			// Downstream generators walk this slice instead of reloading,
			// so iteration order stays deterministic under a fixed seed.
			project.Sections = sections
			created = append(created, project)
		}
	}

	g.logger.Info("generated projects",
		zap.Int("count", len(created)),
		zap.Int("target", target))
	return created, nil
}

// pickOwner draws a random user from the department matching the project
// type, falling back to the product pool, then to no owner at all.
func (g *ProjectGenerator) pickOwner(byDepartment map[model.TeamType][]model.User, projectType model.ProjectType) *string {
	pool := byDepartment[teamTypeFor(projectType)]
	if len(pool) == 0 {
		pool = byDepartment[model.TeamProduct]
	}
	if len(pool) == 0 {
		return nil
	}
	id := pool[g.rand.Intn(len(pool))].ID
	return &id
}

func sectionsFor(project *model.Project) []model.Section {
	names := sectionTemplates[project.Type]
	sections := make([]model.Section, 0, len(names))
	for i, name := range names {
		sections = append(sections, model.Section{
			ID:        uuid.NewString(),
			ProjectID: project.ID,
			Name:      name,
			Position:  i,
			CreatedAt: project.CreatedAt,
		})
	}
	return sections
}

func statusFor(status model.StrategyStatus) model.ProjectStatus {
	if status == model.StrategyActive {
		return model.ProjectOnTrack
	}
	return model.ProjectOnHold
}

// teamTypeFor maps a project type back to the department that staffs it.
func teamTypeFor(projectType model.ProjectType) model.TeamType {
	switch projectType {
	case model.ProjectMarketing:
		return model.TeamMarketing
	case model.ProjectOperations:
		return model.TeamOperations
	default:
		return model.TeamProduct
	}
}
