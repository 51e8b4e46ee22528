package generate

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seedforge/seedforge/pkg/model"
	"github.com/seedforge/seedforge/pkg/store"
)

func generateProjects(t *testing.T, env *testEnv, users []model.User) []model.Project {
	t.Helper()
	db := env.store.DB()
	window := newDateWindow(&env.cfg.Dates, time.Now())
	gen := NewProjectGenerator(
		store.NewSeedRepository(db), store.NewProjectRepository(db),
		env.text, env.cfg, zap.NewNop(), env.rand, window)
	projects, err := gen.Generate(context.Background(), users)
	if err != nil {
		t.Fatalf("project generation failed: %v", err)
	}
	return projects
}

func TestProjectCountBoundedByWorkstreams(t *testing.T) {
	env := seededEnv(t, 42)
	users, err := newUserGen(env).Generate(context.Background())
	if err != nil {
		t.Fatalf("user generation failed: %v", err)
	}

	projects := generateProjects(t, env, users)

	// The target (175) exceeds the seeded workstreams, so every
	// workstream becomes exactly one project.
	if len(projects) != len(staticWorkstreams) {
		t.Fatalf("expected %d projects, got %d", len(staticWorkstreams), len(projects))
	}
}

func TestProjectTargetCapsOutput(t *testing.T) {
	env := seededEnv(t, 42)
	env.cfg.Generation.NumProjects = 7
	users, err := newUserGen(env).Generate(context.Background())
	if err != nil {
		t.Fatalf("user generation failed: %v", err)
	}

	projects := generateProjects(t, env, users)
	if len(projects) != 7 {
		t.Fatalf("expected 7 projects, got %d", len(projects))
	}
}

func TestSectionTemplatesByType(t *testing.T) {
	env := seededEnv(t, 42)
	users, err := newUserGen(env).Generate(context.Background())
	if err != nil {
		t.Fatalf("user generation failed: %v", err)
	}
	generateProjects(t, env, users)

	loaded, err := store.NewProjectRepository(env.store.DB()).ListWithSections(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, project := range loaded {
		names := map[string]bool{}
		for _, section := range project.Sections {
			names[section.Name] = true
		}

		switch project.Type {
		case model.ProjectEngineering:
			if !names["Backlog"] || !names["Done"] {
				t.Fatalf("engineering project %s missing Backlog/Done: %v", project.Name, names)
			}
		case model.ProjectMarketing:
			if names["Code Review"] {
				t.Fatalf("marketing project %s has a Code Review section", project.Name)
			}
		}
		if len(project.Sections) == 0 {
			t.Fatalf("project %s has no sections", project.Name)
		}
	}
}

func TestProjectStatusMapping(t *testing.T) {
	env := seededEnv(t, 42)
	users, err := newUserGen(env).Generate(context.Background())
	if err != nil {
		t.Fatalf("user generation failed: %v", err)
	}
	generateProjects(t, env, users)

	loaded, err := store.NewProjectRepository(env.store.DB()).ListWithSections(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, project := range loaded {
		if project.Workstream == nil {
			t.Fatalf("project %s not linked to a workstream", project.Name)
		}
		want := model.ProjectOnHold
		if project.Workstream.Status == model.StrategyActive {
			want = model.ProjectOnTrack
		}
		if project.Status != want {
			t.Fatalf("project %s: workstream status %q mapped to %q, want %q",
				project.Name, project.Workstream.Status, project.Status, want)
		}
	}
}

func TestProjectOwnerDepartmentMatches(t *testing.T) {
	env := seededEnv(t, 42)
	users, err := newUserGen(env).Generate(context.Background())
	if err != nil {
		t.Fatalf("user generation failed: %v", err)
	}
	projects := generateProjects(t, env, users)

	byID := map[string]model.User{}
	for _, user := range users {
		byID[user.ID] = user
	}

	for _, project := range projects {
		if project.OwnerID == nil {
			continue
		}
		owner, ok := byID[*project.OwnerID]
		if !ok {
			t.Fatalf("project %s owner %s is not a generated user", project.Name, *project.OwnerID)
		}
		want := teamTypeFor(project.Type)
		// The product pool is the sanctioned fallback when the matching
		// department is empty.
		if owner.Department != want && owner.Department != model.TeamProduct {
			t.Fatalf("project %s (%s) owned by %s from department %s",
				project.Name, project.Type, owner.FullName, owner.Department)
		}
	}
}
