package generate

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seedforge/seedforge/pkg/config"
	"github.com/seedforge/seedforge/pkg/model"
	"github.com/seedforge/seedforge/pkg/namegen"
	"github.com/seedforge/seedforge/pkg/store"
)

var jobTitles = map[model.TeamType][]string{
	model.TeamProduct: {
		"Software Engineer", "Senior Software Engineer", "Staff Engineer",
		"Principal Engineer", "Engineering Manager", "Tech Lead",
		"Product Manager", "Senior Product Manager", "Director of Engineering",
		"DevOps Engineer", "SRE", "QA Engineer", "Frontend Engineer",
		"Backend Engineer", "Full Stack Engineer", "Mobile Engineer",
		"Data Engineer", "ML Engineer", "Security Engineer", "Platform Engineer",
	},
	model.TeamMarketing: {
		"Marketing Manager", "Brand Manager", "Content Strategist",
		"SEO Specialist", "Growth Manager", "Marketing Analyst",
		"Social Media Manager", "Product Marketing Manager", "Creative Director",
		"Copywriter", "Digital Marketing Specialist", "Campaign Manager",
		"Marketing Operations Manager", "Performance Marketing Manager",
		"Email Marketing Specialist", "Event Manager", "PR Manager",
	},
	model.TeamOperations: {
		"Operations Manager", "Customer Success Manager", "Support Engineer",
		"Account Manager", "Finance Analyst", "HR Manager", "Recruiter",
		"Office Manager", "Legal Counsel", "Compliance Officer",
		"Project Coordinator", "Business Analyst", "Process Improvement Manager",
		"Vendor Manager", "Procurement Specialist", "Risk Analyst",
	},
}

// UserGenerator creates the configured number of users, distributing them
// across teams by weighted random choice over each team's user share.
type UserGenerator struct {
	seeds  *store.SeedRepository
	users  *store.UserRepository
	names  *namegen.Provider
	cfg    *config.Config
	logger *zap.Logger
	rand   *rand.Rand
	window dateWindow
}

func NewUserGenerator(seeds *store.SeedRepository, users *store.UserRepository, names *namegen.Provider,
	cfg *config.Config, logger *zap.Logger, r *rand.Rand, window dateWindow) *UserGenerator {
	return &UserGenerator{
		seeds:  seeds,
		users:  users,
		names:  names,
		cfg:    cfg,
		logger: logger,
		rand:   r,
		window: window,
	}
}

func (g *UserGenerator) Generate(ctx context.Context) ([]model.User, error) {
	teams, err := g.seeds.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("no teams present; seed the organization first")
	}

	count := g.cfg.Generation.NumUsers
	users := make([]model.User, 0, count)
	for i := 0; i < count; i++ {
		team := weightedTeam(g.rand, teams)
		fullName := g.names.FullName(g.rand)
		titles := jobTitles[team.Type]

		users = append(users, model.User{
			ID:             uuid.NewString(),
			OrganizationID: team.OrganizationID,
			Email:          emailFor(fullName, g.cfg.Organization.Domain),
			FullName:       fullName,
			JobTitle:       titles[g.rand.Intn(len(titles))],
			Department:     team.Type,
			CreatedAt:      timestampBetween(g.rand, g.window.historyStart, g.window.now),
		})
	}

	if err := g.users.CreateBatch(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to insert users: %w", err)
	}

	g.logger.Info("generated users", zap.Int("count", len(users)))
	return users, nil
}

// weightedTeam samples a team proportionally to its user share. Shares are
// relative weights; they do not have to sum to one.
func weightedTeam(r *rand.Rand, teams []model.Team) model.Team {
	var total float64
	for _, team := range teams {
		total += team.UserShare
	}
	if total <= 0 {
		return teams[r.Intn(len(teams))]
	}

	target := r.Float64() * total
	for _, team := range teams {
		target -= team.UserShare
		if target < 0 {
			return team
		}
	}
	return teams[len(teams)-1]
}

// emailFor derives first.last@domain, lowercased. Collisions between users
// with identical names are accepted, matching the source dataset.
func emailFor(fullName, domain string) string {
	first, last := namegen.Split(fullName)
	local := strings.ToLower(first)
	if last != "" {
		local += "." + strings.ToLower(strings.ReplaceAll(last, " ", "."))
	}
	return local + "@" + domain
}
