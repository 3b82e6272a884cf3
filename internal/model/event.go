package model

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID        string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Start     time.Time      `gorm:"not null" json:"start"`
	End       time.Time      `gorm:"not null" json:"end"`
	AssignTo  *string        `gorm:"type:uuid;index" json:"assign_to"`
	User      *User          `gorm:"foreignKey:AssignTo;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitempty"`
}
