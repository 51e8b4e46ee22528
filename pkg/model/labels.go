package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Tag struct {
	ID             string `gorm:"primary_key"`
	OrganizationID string `gorm:"not null;index"`
	Name           string `gorm:"not null"`
	Color          string `gorm:"type:varchar(50)"`
	CreatedAt      time.Time
}

func (Tag) TableName() string {
	return "tags"
}

type TaskTag struct {
	TaskID string `gorm:"primary_key"`
	TagID  string `gorm:"primary_key"`
}

func (TaskTag) TableName() string {
	return "task_tags"
}

// CustomFieldDefinition scopes a field to one project; values reference the
// definition and a task of that project.
type CustomFieldDefinition struct {
	ID        string `gorm:"primary_key"`
	ProjectID string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	FieldType string `gorm:"type:varchar(50);not null"`
	Options   JSONB  `gorm:"type:jsonb"`
	CreatedAt time.Time
}

func (CustomFieldDefinition) TableName() string {
	return "custom_field_definitions"
}

type CustomFieldValue struct {
	ID           string `gorm:"primary_key"`
	DefinitionID string `gorm:"not null;index"`
	TaskID       string `gorm:"not null;index"`
	Value        JSONB  `gorm:"type:jsonb"`
	CreatedAt    time.Time
}

func (CustomFieldValue) TableName() string {
	return "custom_field_values"
}

type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to scan JSONB: %v", value)
	}
	return json.Unmarshal(bytes, j)
}

func (j JSONB) GormDataType() string {
	return "jsonb"
}
