package generate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seedforge/seedforge/pkg/config"
	"github.com/seedforge/seedforge/pkg/model"
	"github.com/seedforge/seedforge/pkg/store"
)

// strategySource maps a workstream lineage to the project type and owning
// team of the projects generated from it, plus the workload profile used
// for completion-rate sampling.
type strategySource struct {
	Name        string
	ProjectType model.ProjectType
	TeamID      string
	Workload    string
}

var strategySources = []strategySource{
	{Name: "pd_core_platform", ProjectType: model.ProjectEngineering, TeamID: "team_pd", Workload: "bug_tracking"},
	{Name: "pd_feature_delivery", ProjectType: model.ProjectEngineering, TeamID: "team_pd", Workload: "sprint"},
	{Name: "mkt_brand_awareness", ProjectType: model.ProjectMarketing, TeamID: "team_mkt", Workload: "default"},
	{Name: "ops_process_optimization", ProjectType: model.ProjectOperations, TeamID: "team_ops", Workload: "ongoing"},
}

func workloadForSource(source string) string {
	for _, s := range strategySources {
		if s.Name == source {
			return s.Workload
		}
	}
	return "default"
}

var staticInitiatives = []model.Initiative{
	{ID: "pd_init_1", TeamID: "team_pd", Name: "Core Platform Modernization", Type: "platform", Objective: "Upgrade core systems for scale and reliability", StartDate: "2025-07-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "pd_init_2", TeamID: "team_pd", Name: "New Feature Delivery – Q1", Type: "feature", Objective: "Deliver high-impact customer features", StartDate: "2025-07-15", EndDate: "2025-10-15", Status: model.StrategyActive},
	{ID: "pd_init_3", TeamID: "team_pd", Name: "Mobile App Revamp", Type: "feature", Objective: "Improve mobile UX and performance", StartDate: "2025-08-01", EndDate: "2025-11-30", Status: model.StrategyPlanned},
	{ID: "pd_init_4", TeamID: "team_pd", Name: "Backend Scalability Upgrade", Type: "infra", Objective: "Handle 10x traffic growth", StartDate: "2025-07-10", EndDate: "2026-01-10", Status: model.StrategyActive},
	{ID: "pd_init_5", TeamID: "team_pd", Name: "API & Integration Expansion", Type: "platform", Objective: "Enable third-party ecosystem", StartDate: "2025-09-01", EndDate: "2025-12-31", Status: model.StrategyPlanned},
	{ID: "pd_init_6", TeamID: "team_pd", Name: "Security & Compliance Program", Type: "security", Objective: "Meet enterprise compliance standards", StartDate: "2025-07-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "pd_init_7", TeamID: "team_pd", Name: "Developer Experience Improvement", Type: "feature", Objective: "Reduce build and deployment friction", StartDate: "2025-08-01", EndDate: "2025-11-15", Status: model.StrategyPlanned},
	{ID: "mkt_init_1", TeamID: "team_mkt", Name: "Brand Awareness Campaign", Type: "branding", Objective: "Increase brand visibility across channels", StartDate: "2025-07-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "mkt_init_2", TeamID: "team_mkt", Name: "Product Launch Marketing", Type: "launch", Objective: "Support major product launches", StartDate: "2025-07-15", EndDate: "2025-10-15", Status: model.StrategyActive},
	{ID: "mkt_init_3", TeamID: "team_mkt", Name: "Growth Marketing Program", Type: "growth", Objective: "Drive acquisition and activation", StartDate: "2025-08-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "mkt_init_4", TeamID: "team_mkt", Name: "Content Marketing Engine", Type: "content", Objective: "Scale high-quality content output", StartDate: "2025-07-10", EndDate: "2025-11-30", Status: model.StrategyPlanned},
	{ID: "mkt_init_5", TeamID: "team_mkt", Name: "Performance Marketing", Type: "performance", Objective: "Optimize paid marketing ROI", StartDate: "2025-07-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "mkt_init_6", TeamID: "team_mkt", Name: "Customer Retention Program", Type: "retention", Objective: "Improve engagement and reduce churn", StartDate: "2025-08-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "mkt_init_7", TeamID: "team_mkt", Name: "Marketing Operations", Type: "operations", Objective: "Improve marketing systems and processes", StartDate: "2025-07-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "ops_init_1", TeamID: "team_ops", Name: "Business Process Optimization", Type: "process", Objective: "Improve internal workflows and efficiency", StartDate: "2025-07-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "ops_init_2", TeamID: "team_ops", Name: "Customer Support Operations", Type: "customer_support", Objective: "Scale and improve customer support quality", StartDate: "2025-07-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "ops_init_3", TeamID: "team_ops", Name: "Finance & Billing Operations", Type: "finance", Objective: "Ensure accurate billing and payments", StartDate: "2025-07-15", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "ops_init_4", TeamID: "team_ops", Name: "Risk & Compliance Operations", Type: "compliance", Objective: "Meet regulatory and audit requirements", StartDate: "2025-08-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "ops_init_5", TeamID: "team_ops", Name: "Internal Infrastructure Operations", Type: "infrastructure", Objective: "Maintain internal systems and tools", StartDate: "2025-07-01", EndDate: "2025-12-31", Status: model.StrategyActive},
	{ID: "ops_init_6", TeamID: "team_ops", Name: "Vendor & Partner Management", Type: "vendor", Objective: "Manage external vendors and partners", StartDate: "2025-07-01", EndDate: "2025-12-31", Status: model.StrategyActive},
}

var staticWorkstreams = []model.Workstream{
	{ID: "cp_ws_1", InitiativeID: "pd_init_1", Source: "pd_core_platform", Name: "Architecture Refactor", FocusArea: "Core system design", LeadRole: "Principal Engineer", Priority: "high", Status: model.StrategyActive},
	{ID: "cp_ws_2", InitiativeID: "pd_init_1", Source: "pd_core_platform", Name: "Database Optimization", FocusArea: "Data layer", LeadRole: "Staff Engineer", Priority: "high", Status: model.StrategyActive},
	{ID: "cp_ws_3", InitiativeID: "pd_init_1", Source: "pd_core_platform", Name: "Service Decomposition", FocusArea: "Microservices", LeadRole: "Engineering Manager", Priority: "medium", Status: model.StrategyActive},
	{ID: "cp_ws_4", InitiativeID: "pd_init_1", Source: "pd_core_platform", Name: "Performance Tuning", FocusArea: "Latency & throughput", LeadRole: "Tech Lead", Priority: "medium", Status: model.StrategyPlanned},
	{ID: "cp_ws_5", InitiativeID: "pd_init_1", Source: "pd_core_platform", Name: "Reliability Engineering", FocusArea: "Stability & uptime", LeadRole: "SRE Lead", Priority: "high", Status: model.StrategyActive},
	{ID: "fd_ws_1", InitiativeID: "pd_init_2", Source: "pd_feature_delivery", Name: "Feature Planning", FocusArea: "Requirements", LeadRole: "Product Manager", Priority: "high", Status: model.StrategyActive},
	{ID: "fd_ws_2", InitiativeID: "pd_init_2", Source: "pd_feature_delivery", Name: "Backend Feature Development", FocusArea: "APIs", LeadRole: "Backend Lead", Priority: "high", Status: model.StrategyActive},
	{ID: "fd_ws_3", InitiativeID: "pd_init_2", Source: "pd_feature_delivery", Name: "Frontend Feature Development", FocusArea: "UI", LeadRole: "Frontend Lead", Priority: "medium", Status: model.StrategyActive},
	{ID: "fd_ws_4", InitiativeID: "pd_init_2", Source: "pd_feature_delivery", Name: "Feature Testing", FocusArea: "QA", LeadRole: "QA Manager", Priority: "medium", Status: model.StrategyPlanned},
	{ID: "fd_ws_5", InitiativeID: "pd_init_2", Source: "pd_feature_delivery", Name: "Feature Rollout", FocusArea: "Release", LeadRole: "Release Manager", Priority: "high", Status: model.StrategyPlanned},
	{ID: "ba_ws_1", InitiativeID: "mkt_init_1", Source: "mkt_brand_awareness", Name: "Social Media Presence", FocusArea: "Organic channels", LeadRole: "Social Media Manager", Priority: "high", Status: model.StrategyActive},
	{ID: "ba_ws_2", InitiativeID: "mkt_init_1", Source: "mkt_brand_awareness", Name: "Content Production", FocusArea: "Blog & video", LeadRole: "Content Strategist", Priority: "high", Status: model.StrategyActive},
	{ID: "ba_ws_3", InitiativeID: "mkt_init_1", Source: "mkt_brand_awareness", Name: "PR & Media Relations", FocusArea: "Earned media", LeadRole: "PR Manager", Priority: "medium", Status: model.StrategyActive},
	{ID: "ba_ws_4", InitiativeID: "mkt_init_1", Source: "mkt_brand_awareness", Name: "Event Sponsorships", FocusArea: "Industry events", LeadRole: "Event Manager", Priority: "medium", Status: model.StrategyPlanned},
	{ID: "ba_ws_5", InitiativeID: "mkt_init_1", Source: "mkt_brand_awareness", Name: "Brand Refresh", FocusArea: "Visual identity", LeadRole: "Creative Director", Priority: "low", Status: model.StrategyPlanned},
	{ID: "po_ws_1", InitiativeID: "ops_init_1", Source: "ops_process_optimization", Name: "Workflow Automation", FocusArea: "Internal tooling", LeadRole: "Operations Manager", Priority: "high", Status: model.StrategyActive},
	{ID: "po_ws_2", InitiativeID: "ops_init_1", Source: "ops_process_optimization", Name: "Onboarding Improvement", FocusArea: "HR processes", LeadRole: "HR Manager", Priority: "medium", Status: model.StrategyActive},
	{ID: "po_ws_3", InitiativeID: "ops_init_1", Source: "ops_process_optimization", Name: "Procurement Streamlining", FocusArea: "Vendor workflows", LeadRole: "Procurement Specialist", Priority: "medium", Status: model.StrategyActive},
	{ID: "po_ws_4", InitiativeID: "ops_init_1", Source: "ops_process_optimization", Name: "Reporting Standardization", FocusArea: "Business reporting", LeadRole: "Business Analyst", Priority: "low", Status: model.StrategyPlanned},
	{ID: "po_ws_5", InitiativeID: "ops_init_1", Source: "ops_process_optimization", Name: "Compliance Checklists", FocusArea: "Audit readiness", LeadRole: "Compliance Officer", Priority: "high", Status: model.StrategyActive},
}

// Seeder materializes the static configuration: one organization, its
// teams, and the strategy-layer reference data. No randomness; any write
// failure is fatal to the run.
type Seeder struct {
	seeds  *store.SeedRepository
	cfg    *config.Config
	logger *zap.Logger
}

func NewSeeder(seeds *store.SeedRepository, cfg *config.Config, logger *zap.Logger) *Seeder {
	return &Seeder{seeds: seeds, cfg: cfg, logger: logger}
}

func (s *Seeder) Run(ctx context.Context) error {
	org := &model.Organization{
		ID:     s.cfg.Organization.ID,
		Name:   s.cfg.Organization.Name,
		Domain: s.cfg.Organization.Domain,
	}
	if err := s.seeds.UpsertOrganization(ctx, org); err != nil {
		return fmt.Errorf("failed to seed organization: %w", err)
	}

	teams := make([]model.Team, 0, len(s.cfg.Teams))
	for _, tc := range s.cfg.Teams {
		teams = append(teams, model.Team{
			ID:             tc.ID,
			OrganizationID: org.ID,
			Name:           tc.Name,
			Type:           model.TeamType(tc.Type),
			EmployeeCount:  tc.EmployeeCount,
			UserShare:      tc.UserShare,
		})
	}
	if err := s.seeds.UpsertTeams(ctx, teams); err != nil {
		return fmt.Errorf("failed to seed teams: %w", err)
	}

	if err := s.seeds.UpsertInitiatives(ctx, staticInitiatives); err != nil {
		return fmt.Errorf("failed to seed initiatives: %w", err)
	}
	if err := s.seeds.UpsertWorkstreams(ctx, staticWorkstreams); err != nil {
		return fmt.Errorf("failed to seed workstreams: %w", err)
	}

	s.logger.Info("seeded static reference data",
		zap.Int("teams", len(teams)),
		zap.Int("initiatives", len(staticInitiatives)),
		zap.Int("workstreams", len(staticWorkstreams)))
	return nil
}
