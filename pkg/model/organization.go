package model

import (
	"time"
)

// TeamType drives department assignment, section templates, and the
// content category used for generated task text.
type TeamType string

const (
	TeamProduct    TeamType = "product"
	TeamMarketing  TeamType = "marketing"
	TeamOperations TeamType = "operations"
)

type Organization struct {
	ID        string `gorm:"primary_key"`
	Name      string `gorm:"not null"`
	Domain    string `gorm:"not null"`
	Teams     []Team `gorm:"foreignKey:OrganizationID"`
	CreatedAt time.Time
}

func (Organization) TableName() string {
	return "organizations"
}

type Team struct {
	ID             string        `gorm:"primary_key"`
	OrganizationID string        `gorm:"not null;index"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID"`
	Name           string        `gorm:"not null"`
	Type           TeamType      `gorm:"type:varchar(50);not null;column:team_type"`
	EmployeeCount  int           `gorm:"default:0"`
	UserShare      float64       `gorm:"default:0"`
	CreatedAt      time.Time
}

func (Team) TableName() string {
	return "teams"
}
