package models

import (
	"time"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
)

// HeroSettings is a singleton row (ID fixed to 1) of global carousel defaults.
type HeroSettings struct {
	ID              int                   `gorm:"column:id;primaryKey"`
	Autoplay        bool                  `gorm:"column:autoplay;not null;default:true"`
	IntervalMS      int                   `gorm:"column:interval_ms;not null;default:5000"`
	PauseOnHover    bool                  `gorm:"column:pause_on_hover;not null;default:true"`
	ShowArrows      bool                  `gorm:"column:show_arrows;not null;default:true"`
	ShowDots        bool                  `gorm:"column:show_dots;not null;default:true"`
	VerticalAlign   *enums.VerticalAlign  `gorm:"column:vertical_align"`
	HorizontalAlign *enums.HorizontalAlign `gorm:"column:horizontal_align"`
	HeadingAlign    *enums.HorizontalAlign `gorm:"column:heading_align"`
	SubheadingAlign *enums.HorizontalAlign `gorm:"column:subheading_align"`
	ButtonAlign     *enums.HorizontalAlign `gorm:"column:button_align"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

// HeroSettingsID is the fixed primary key of the singleton row.
const HeroSettingsID = 1
