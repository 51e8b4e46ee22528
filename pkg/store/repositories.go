package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seedforge/seedforge/pkg/model"
)

const batchSize = 500

type SeedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

func (r *SeedRepository) UpsertOrganization(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(org).Error
}

func (r *SeedRepository) UpsertTeams(ctx context.Context, teams []model.Team) error {
	if len(teams) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&teams).Error
}

func (r *SeedRepository) UpsertInitiatives(ctx context.Context, initiatives []model.Initiative) error {
	if len(initiatives) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&initiatives).Error
}

func (r *SeedRepository) UpsertWorkstreams(ctx context.Context, workstreams []model.Workstream) error {
	if len(workstreams) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&workstreams).Error
}

func (r *SeedRepository) ListTeams(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Order("id").Find(&teams).Error
	return teams, err
}

func (r *SeedRepository) ListWorkstreamsBySource(ctx context.Context, source string) ([]model.Workstream, error) {
	var workstreams []model.Workstream
	err := r.db.WithContext(ctx).Where("source = ?", source).Order("id").Find(&workstreams).Error
	return workstreams, err
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateBatch(ctx context.Context, users []model.User) error {
	if len(users) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&users, batchSize).Error
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create writes a project together with its sections. Associations hung
// off the struct are left alone; the seed rows they point at already exist.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project, sections []model.Section) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		if len(sections) == 0 {
			return nil
		}
		return tx.Create(&sections).Error
	})
}

// ListWithSections returns every project with its team and ordered sections
// preloaded, which is all the task generator needs.
func (r *ProjectRepository) ListWithSections(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Workstream").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.position")
		}).
		Order("id").
		Find(&projects).Error
	return projects, err
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&tasks, batchSize).Error
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("id").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CreateComments(ctx context.Context, comments []model.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&comments, batchSize).Error
}

type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) CreateTags(ctx context.Context, tags []model.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tags).Error
}

func (r *LabelRepository) CreateTaskTags(ctx context.Context, links []model.TaskTag) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&links, batchSize).Error
}

func (r *LabelRepository) CreateFieldDefinitions(ctx context.Context, defs []model.CustomFieldDefinition) error {
	if len(defs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&defs, batchSize).Error
}

func (r *LabelRepository) CreateFieldValues(ctx context.Context, values []model.CustomFieldValue) error {
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&values, batchSize).Error
}
