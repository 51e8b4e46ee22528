package textgen

import (
	"context"
	"math/rand"

	"github.com/seedforge/seedforge/pkg/model"
)

var engineeringTaskNames = []string{
	"Implement user authentication flow",
	"Fix database connection pooling issue",
	"Add unit tests for payment module",
	"Refactor API error handling",
	"Update dependency versions",
	"Optimize database queries for dashboard",
	"Add logging to background workers",
	"Fix race condition in checkout process",
	"Implement rate limiting for API",
	"Add caching layer for user sessions",
	"Review and update API documentation",
	"Fix memory leak in image processing",
	"Implement webhook retry mechanism",
	"Add monitoring alerts for critical paths",
	"Migrate legacy code to new framework",
}

var marketingTaskNames = []string{
	"Create Q3 campaign assets",
	"Update landing page copy",
	"Design email newsletter template",
	"Analyze competitor pricing strategies",
	"Write blog post on industry trends",
	"Schedule social media content",
	"Review ad campaign performance",
	"Create customer case study",
	"Update brand guidelines document",
	"Plan webinar content and slides",
}

var operationsTaskNames = []string{
	"Process monthly invoices",
	"Update vendor contracts",
	"Review compliance documentation",
	"Conduct security audit review",
	"Update employee handbook",
	"Process customer refund requests",
	"Prepare quarterly report",
	"Coordinate team training session",
	"Review and approve expenses",
	"Update internal wiki documentation",
}

// Empty entries keep a share of descriptions blank, which real trackers
// are full of.
var taskDescriptions = []string{
	"",
	"",
	"This task needs to be completed by end of sprint.",
	"Follow up on the previous discussion and implement changes.",
	"Review the requirements document before starting.",
	"Coordinate with the team lead for clarifications.",
	"See attached specifications for details. Reach out if any questions.",
	"Priority task for this sprint. Block time on calendar.",
	"Dependency on API team. Check status before starting.",
}

var comments = []string{
	"Started working on this.",
	"Made good progress today. Should be done by tomorrow.",
	"Blocked on external dependency. Following up.",
	"Completed the initial implementation. Ready for review.",
	"Found some edge cases that need discussion.",
	"Updated the approach based on feedback.",
	"@team - please review when you get a chance",
	"This is taking longer than expected due to complexity.",
	"Done! Moving to the next task.",
	"Need clarification on the requirements.",
	"Pushed initial changes. Will continue tomorrow.",
	"Had to refactor some existing code first.",
	"All tests passing now.",
	"Deployed to staging for testing.",
	"Fixed the issues from code review.",
}

var projectDescriptions = []string{
	"Execution project tracking the day-to-day work for this workstream.",
	"Coordinates delivery across the owning team for this workstream.",
	"Workspace for planning, tracking, and reviewing this stream of work.",
}

// StaticProvider serves deterministic fallback text. The rand source is
// injected so a seeded run replays the same choices.
type StaticProvider struct {
	rand *rand.Rand
}

func NewStaticProvider(r *rand.Rand) *StaticProvider {
	return &StaticProvider{rand: r}
}

func (p *StaticProvider) Generate(_ context.Context, category Category, tctx Context) (string, error) {
	switch category {
	case CategoryTaskName:
		return p.pick(taskNamesFor(tctx.TeamType)), nil
	case CategoryTaskDescription:
		return p.pick(taskDescriptions), nil
	case CategoryComment:
		return p.pick(comments), nil
	case CategoryProjectDescription:
		return p.pick(projectDescriptions), nil
	default:
		return p.pick(taskDescriptions), nil
	}
}

func (p *StaticProvider) pick(options []string) string {
	return options[p.rand.Intn(len(options))]
}

func taskNamesFor(t model.TeamType) []string {
	switch t {
	case model.TeamMarketing:
		return marketingTaskNames
	case model.TeamOperations:
		return operationsTaskNames
	default:
		return engineeringTaskNames
	}
}
