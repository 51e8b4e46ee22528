package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/seedforge/seedforge/pkg/config"
	"github.com/seedforge/seedforge/pkg/model"
)

// Tables lists every generated table in creation order. The run summary
// and the validator iterate it.
var Tables = []string{
	"organizations",
	"teams",
	"users",
	"initiatives",
	"workstreams",
	"projects",
	"sections",
	"tasks",
	"comments",
	"tags",
	"task_tags",
	"custom_field_definitions",
	"custom_field_values",
}

// Store owns the single database handle for a generation run. All writes
// serialize through it in pipeline order.
type Store struct {
	db *gorm.DB
}

func NewStore(cfg *config.DatabaseConfig) (*Store, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	default:
		dialector = sqlite.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver != "postgres" {
		// sqlite has a single writer; one pooled connection also keeps
		// in-memory databases on a single handle.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return &Store{db: db}, nil
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&model.Organization{},
		&model.Team{},
		&model.User{},
		&model.Initiative{},
		&model.Workstream{},
		&model.Project{},
		&model.Section{},
		&model.Task{},
		&model.Comment{},
		&model.Tag{},
		&model.TaskTag{},
		&model.CustomFieldDefinition{},
		&model.CustomFieldValue{},
	)
}

// Reset drops every generated table and recreates the schema. Each run is a
// full regeneration, never incremental.
func (s *Store) Reset() error {
	migrator := s.db.Migrator()
	for i := len(Tables) - 1; i >= 0; i-- {
		if migrator.HasTable(Tables[i]) {
			if err := migrator.DropTable(Tables[i]); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", Tables[i], err)
			}
		}
	}
	return s.AutoMigrate()
}

// Counts returns the row count per table for the run summary.
func (s *Store) Counts() (map[string]int64, error) {
	counts := make(map[string]int64, len(Tables))
	for _, table := range Tables {
		var count int64
		if err := s.db.Table(table).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}
