package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
)

// HeroBanner is one carousel slide. Nil style fields fall back to the global
// HeroSettings value, then to the hardcoded defaults.
type HeroBanner struct {
	ID                uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Position          int                    `gorm:"column:position;not null;default:0"`
	MediaURL          string                 `gorm:"column:media_url;not null"`
	MediaKind         enums.HeroMediaKind    `gorm:"column:media_kind;not null;default:image"`
	Title             *string                `gorm:"column:title"`
	Subtitle          *string                `gorm:"column:subtitle"`
	ButtonLabel       *string                `gorm:"column:button_label"`
	ButtonURL         *string                `gorm:"column:button_url"`
	TextColor         *string                `gorm:"column:text_color"`
	HeadingSize       *string                `gorm:"column:heading_size"`
	VerticalAlign     *enums.VerticalAlign   `gorm:"column:vertical_align"`
	HorizontalAlign   *enums.HorizontalAlign `gorm:"column:horizontal_align"`
	HeadingAlign      *enums.HorizontalAlign `gorm:"column:heading_align"`
	SubheadingAlign   *enums.HorizontalAlign `gorm:"column:subheading_align"`
	ButtonAlign       *enums.HorizontalAlign `gorm:"column:button_align"`
	Animation         *string                `gorm:"column:animation"`
	AdvanceOnVideoEnd bool                   `gorm:"column:advance_on_video_end;not null;default:false"`
	IsActive          bool                   `gorm:"column:is_active;not null;default:true"`
	CreatedAt         time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
