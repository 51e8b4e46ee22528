package model

import (
	"time"
)

// StrategyStatus covers both initiatives and workstreams. Only "active"
// maps to an on-track project; everything else lands on hold.
type StrategyStatus string

const (
	StrategyActive  StrategyStatus = "active"
	StrategyPlanned StrategyStatus = "planned"
)

// Initiative is a static top-level strategic goal that groups workstreams.
// Initiatives are seeded from fixed reference data, never randomized.
type Initiative struct {
	ID        string         `gorm:"primary_key"`
	TeamID    string         `gorm:"not null;index"`
	Team      *Team          `gorm:"foreignKey:TeamID"`
	Name      string         `gorm:"not null"`
	Type      string         `gorm:"type:varchar(50);not null;column:initiative_type"`
	Objective string         `gorm:"type:text"`
	StartDate string         `gorm:"type:varchar(10)"`
	EndDate   string         `gorm:"type:varchar(10)"`
	Status    StrategyStatus `gorm:"type:varchar(50);default:'planned'"`
	CreatedAt time.Time
}

func (Initiative) TableName() string {
	return "initiatives"
}

// Workstream anchors a generated Project. Source identifies the strategy
// table lineage it was seeded from (e.g. pd_core_platform).
type Workstream struct {
	ID           string         `gorm:"primary_key"`
	InitiativeID string         `gorm:"not null;index"`
	Initiative   *Initiative    `gorm:"foreignKey:InitiativeID"`
	Source       string         `gorm:"type:varchar(100);not null;index"`
	Name         string         `gorm:"not null"`
	FocusArea    string
	LeadRole     string
	Priority     string         `gorm:"type:varchar(20)"`
	Status       StrategyStatus `gorm:"type:varchar(50);default:'planned'"`
	CreatedAt    time.Time
}

func (Workstream) TableName() string {
	return "workstreams"
}
