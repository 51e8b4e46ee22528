// Package validate runs the post-generation consistency sweep. It only
// reads; findings are logged as warnings and never abort anything.
package validate

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Finding is one violation class with the number of offending rows.
type Finding struct {
	Check       string
	Description string
	Count       int64
}

type check struct {
	name        string
	description string
	query       string
}

var checks = []check{
	{
		name:        "completed_before_created",
		description: "tasks completed before they were created",
		query: `SELECT COUNT(*) FROM tasks
			WHERE completed_at IS NOT NULL AND completed_at < created_at`,
	},
	{
		name:        "completion_flag_mismatch",
		description: "tasks whose completed flag disagrees with completed_at",
		query: `SELECT COUNT(*) FROM tasks
			WHERE (completed = true AND completed_at IS NULL)
			   OR (completed = false AND completed_at IS NOT NULL)`,
	},
	{
		name:        "dangling_project",
		description: "tasks referencing a missing project",
		query: `SELECT COUNT(*) FROM tasks t
			LEFT JOIN projects p ON t.project_id = p.id
			WHERE t.project_id IS NOT NULL AND p.id IS NULL`,
	},
	{
		name:        "dangling_section",
		description: "tasks referencing a missing section",
		query: `SELECT COUNT(*) FROM tasks t
			LEFT JOIN sections s ON t.section_id = s.id
			WHERE t.section_id IS NOT NULL AND s.id IS NULL`,
	},
	{
		name:        "cross_project_section",
		description: "tasks placed in a section of a different project",
		query: `SELECT COUNT(*) FROM tasks t
			JOIN sections s ON t.section_id = s.id
			WHERE t.project_id <> s.project_id`,
	},
}

type Validator struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *Validator {
	return &Validator{db: db, logger: logger}
}

// Run executes every check and returns all findings, including the clean
// zero-count ones so callers can assert full coverage.
func (v *Validator) Run(ctx context.Context) ([]Finding, error) {
	findings := make([]Finding, 0, len(checks))
	for _, c := range checks {
		var count int64
		if err := v.db.WithContext(ctx).Raw(c.query).Scan(&count).Error; err != nil {
			return nil, fmt.Errorf("validation check %s failed: %w", c.name, err)
		}
		if count > 0 {
			v.logger.Warn("validation violation found",
				zap.String("check", c.name),
				zap.String("description", c.description),
				zap.Int64("count", count))
		}
		findings = append(findings, Finding{Check: c.name, Description: c.description, Count: count})
	}
	return findings, nil
}

// Violations counts rows across all findings.
func Violations(findings []Finding) int64 {
	var total int64
	for _, f := range findings {
		total += f.Count
	}
	return total
}
