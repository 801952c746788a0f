package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. ShowOnHome/HomePosition drive the homepage strip.
type Category struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Slug         string    `gorm:"column:slug;uniqueIndex;not null"`
	ShowOnHome   bool      `gorm:"column:show_on_home;not null;default:false"`
	HomePosition int       `gorm:"column:home_position;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
