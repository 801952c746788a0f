package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	dbtypes "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/types"
)

// Product is the canonical catalog listing. All prices are integer cents.
// MRPCents is the nullable list price used for the discount badge; the badge
// percent is derived (round((mrp-price)/mrp*100)), never stored.
type Product struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title            string               `gorm:"column:title;not null"`
	Slug             string               `gorm:"column:slug;uniqueIndex;not null"`
	Description      *string              `gorm:"column:description"`
	CategoryID       uuid.UUID            `gorm:"column:category_id;type:uuid;not null"`
	Category         *Category            `gorm:"foreignKey:CategoryID"`
	BasePriceCents   int                  `gorm:"column:base_price_cents;not null"`
	SalePriceCents   *int                 `gorm:"column:sale_price_cents"`
	DiscountPercent  *float64             `gorm:"column:discount_percent;type:numeric(5,2)"`
	MRPCents         *int                 `gorm:"column:mrp_cents"`
	Images           pq.StringArray       `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	IsActive         bool                 `gorm:"column:is_active;not null;default:true"`
	IsNewArrival     bool                 `gorm:"column:is_new_arrival;not null;default:false"`
	IsHotSelling     bool                 `gorm:"column:is_hot_selling;not null;default:false"`
	IsFeatured       bool                 `gorm:"column:is_featured;not null;default:false"`
	Specifications   dbtypes.JSONDocument `gorm:"column:specifications;type:jsonb;not null;default:'{}'"`
	KeyFeatures      pq.StringArray       `gorm:"column:key_features;type:text[];not null;default:ARRAY[]::text[]"`
	WarrantyCoverage pq.StringArray       `gorm:"column:warranty_coverage;type:text[];not null;default:ARRAY[]::text[]"`
	WarrantyCare     pq.StringArray       `gorm:"column:warranty_care;type:text[];not null;default:ARRAY[]::text[]"`
	Dimensions       *string              `gorm:"column:dimensions"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
