package model

import (
	"time"
)

type User struct {
	ID             string        `gorm:"primary_key"`
	OrganizationID string        `gorm:"not null;index"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID"`
	Email          string        `gorm:"not null;index"`
	FullName       string        `gorm:"not null"`
	JobTitle       string
	Department     TeamType  `gorm:"type:varchar(50);not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
