package models

import (
	"time"

	dbtypes "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/types"
)

// PageContent holds one free-form CMS document per page key ("about_page",
// "materials_page", ...). The shape is enforced by the editing form, not here.
type PageContent struct {
	Key       string               `gorm:"column:key;primaryKey"`
	Content   dbtypes.JSONDocument `gorm:"column:content;type:jsonb;not null;default:'{}'"`
	UpdatedAt time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
