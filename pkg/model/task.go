package model

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is the central generated entity. SectionID, when set, must reference
// a section of the same project; the validator checks this rather than the
// schema enforcing it. ParentTaskID marks a subtask; nesting is one level
// deep, a subtask never has children of its own.
type Task struct {
	ID           string     `gorm:"primary_key"`
	ProjectID    string     `gorm:"not null;index"`
	Project      *Project   `gorm:"foreignKey:ProjectID"`
	SectionID    *string    `gorm:"index"`
	Section      *Section   `gorm:"foreignKey:SectionID"`
	AssigneeID   *string    `gorm:"index"`
	Assignee     *User      `gorm:"foreignKey:AssigneeID"`
	ParentTaskID *string    `gorm:"index"`
	Name         string     `gorm:"not null"`
	Description  string     `gorm:"type:text"`
	Priority     Priority   `gorm:"type:varchar(20);default:'medium'"`
	DueDate      *time.Time
	Completed    bool       `gorm:"default:false"`
	CompletedAt  *time.Time
	Comments     []Comment  `gorm:"foreignKey:TaskID"`
	CreatedAt    time.Time  `gorm:"not null"`
}

func (Task) TableName() string {
	return "tasks"
}

type Comment struct {
	ID        string    `gorm:"primary_key"`
	TaskID    string    `gorm:"not null;index"`
	Task      *Task     `gorm:"foreignKey:TaskID"`
	UserID    string    `gorm:"not null;index"`
	User      *User     `gorm:"foreignKey:UserID"`
	Text      string    `gorm:"type:text;not null;column:text_content"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Comment) TableName() string {
	return "comments"
}
