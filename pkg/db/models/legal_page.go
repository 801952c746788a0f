package models

import (
	"time"

	"github.com/google/uuid"
)

// LegalPage backs the /legal/{slug} routes (privacy policy, terms, returns).
type LegalPage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug      string    `gorm:"column:slug;uniqueIndex;not null"`
	Title     string    `gorm:"column:title;not null"`
	BodyHTML  string    `gorm:"column:body_html;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
