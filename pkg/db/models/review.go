package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
)

// Review is a customer product review. New reviews land as pending and only
// approved rows are served publicly.
type Review struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID          `gorm:"column:product_id;type:uuid;not null;index"`
	UserID    uuid.UUID          `gorm:"column:user_id;type:uuid;not null"`
	Rating    int                `gorm:"column:rating;not null"`
	Body      string             `gorm:"column:body;not null"`
	Status    enums.ReviewStatus `gorm:"column:status;not null;default:pending"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
