package model

import (
	"time"
)

// ProjectType selects the section template and task text category.
type ProjectType string

const (
	ProjectEngineering ProjectType = "engineering"
	ProjectMarketing   ProjectType = "marketing"
	ProjectOperations  ProjectType = "operations"
)

type ProjectStatus string

const (
	ProjectOnTrack ProjectStatus = "on_track"
	ProjectOnHold  ProjectStatus = "on_hold"
)

type Project struct {
	ID           string        `gorm:"primary_key"`
	WorkstreamID *string       `gorm:"index"`
	Workstream   *Workstream   `gorm:"foreignKey:WorkstreamID"`
	TeamID       string        `gorm:"not null;index"`
	Team         *Team         `gorm:"foreignKey:TeamID"`
	OwnerID      *string       `gorm:"index"`
	Owner        *User         `gorm:"foreignKey:OwnerID"`
	Name         string        `gorm:"not null"`
	Description  string        `gorm:"type:text"`
	Type         ProjectType   `gorm:"type:varchar(50);not null;column:project_type"`
	Status       ProjectStatus `gorm:"type:varchar(50);default:'on_hold'"`
	Color        string        `gorm:"type:varchar(50)"`
	Sections     []Section     `gorm:"foreignKey:ProjectID"`
	Tasks        []Task        `gorm:"foreignKey:ProjectID"`
	CreatedAt    time.Time     `gorm:"not null"`
}

func (Project) TableName() string {
	return "projects"
}

type Section struct {
	ID        string   `gorm:"primary_key"`
	ProjectID string   `gorm:"not null;index"`
	Project   *Project `gorm:"foreignKey:ProjectID"`
	Name      string   `gorm:"not null"`
	Position  int      `gorm:"default:0"`
	CreatedAt time.Time
}

func (Section) TableName() string {
	return "sections"
}
