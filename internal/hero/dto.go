package hero

import (
	"time"

	"github.com/google/uuid"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
)

// BannerDTO is one carousel slide as the storefront renders it: raw fields for
// the admin panel plus the resolved style.
type BannerDTO struct {
	ID                uuid.UUID              `json:"id"`
	Position          int                    `json:"position"`
	MediaURL          string                 `json:"media_url"`
	MediaKind         enums.HeroMediaKind    `json:"media_kind"`
	Title             *string                `json:"title,omitempty"`
	Subtitle          *string                `json:"subtitle,omitempty"`
	ButtonLabel       *string                `json:"button_label,omitempty"`
	ButtonURL         *string                `json:"button_url,omitempty"`
	TextColor         *string                `json:"text_color,omitempty"`
	HeadingSize       *string                `json:"heading_size,omitempty"`
	VerticalAlign     *enums.VerticalAlign   `json:"vertical_align,omitempty"`
	HorizontalAlign   *enums.HorizontalAlign `json:"horizontal_align,omitempty"`
	HeadingAlign      *enums.HorizontalAlign `json:"heading_align,omitempty"`
	SubheadingAlign   *enums.HorizontalAlign `json:"subheading_align,omitempty"`
	ButtonAlign       *enums.HorizontalAlign `json:"button_align,omitempty"`
	Animation         *string                `json:"animation,omitempty"`
	AdvanceOnVideoEnd bool                   `json:"advance_on_video_end"`
	IsActive          bool                   `json:"is_active"`
	Style             ResolvedStyle          `json:"style"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// SettingsDTO is the global carousel configuration.
type SettingsDTO struct {
	Autoplay        bool                   `json:"autoplay"`
	IntervalMS      int                    `json:"interval_ms"`
	PauseOnHover    bool                   `json:"pause_on_hover"`
	ShowArrows      bool                   `json:"show_arrows"`
	ShowDots        bool                   `json:"show_dots"`
	VerticalAlign   *enums.VerticalAlign   `json:"vertical_align,omitempty"`
	HorizontalAlign *enums.HorizontalAlign `json:"horizontal_align,omitempty"`
	HeadingAlign    *enums.HorizontalAlign `json:"heading_align,omitempty"`
	SubheadingAlign *enums.HorizontalAlign `json:"subheading_align,omitempty"`
	ButtonAlign     *enums.HorizontalAlign `json:"button_align,omitempty"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// PlaybackDTO is the playback contract the storefront player runs with, as
// resolved by the controller: effective autoplay (settings plus slide count),
// the advance interval, and the pointer resume debounce.
type PlaybackDTO struct {
	Autoplay         bool `json:"autoplay"`
	IntervalMS       int  `json:"interval_ms"`
	PauseOnHover     bool `json:"pause_on_hover"`
	ResumeDebounceMS int  `json:"resume_debounce_ms"`
}

// CarouselDTO is everything the storefront needs to render and drive the hero.
type CarouselDTO struct {
	Banners  []BannerDTO `json:"banners"`
	Settings SettingsDTO `json:"settings"`
	Playback PlaybackDTO `json:"playback"`
}

// CreateBannerInput is the admin payload for a new banner.
type CreateBannerInput struct {
	MediaURL          string                 `json:"media_url" validate:"required,url"`
	MediaKind         enums.HeroMediaKind    `json:"media_kind" validate:"required"`
	Title             *string                `json:"title,omitempty"`
	Subtitle          *string                `json:"subtitle,omitempty"`
	ButtonLabel       *string                `json:"button_label,omitempty"`
	ButtonURL         *string                `json:"button_url,omitempty"`
	TextColor         *string                `json:"text_color,omitempty"`
	HeadingSize       *string                `json:"heading_size,omitempty"`
	VerticalAlign     *enums.VerticalAlign   `json:"vertical_align,omitempty"`
	HorizontalAlign   *enums.HorizontalAlign `json:"horizontal_align,omitempty"`
	HeadingAlign      *enums.HorizontalAlign `json:"heading_align,omitempty"`
	SubheadingAlign   *enums.HorizontalAlign `json:"subheading_align,omitempty"`
	ButtonAlign       *enums.HorizontalAlign `json:"button_align,omitempty"`
	Animation         *string                `json:"animation,omitempty"`
	AdvanceOnVideoEnd bool                   `json:"advance_on_video_end,omitempty"`
	IsActive          *bool                  `json:"is_active,omitempty"`
	Position          *int                   `json:"position,omitempty"`
}

// UpdateBannerInput is the admin payload for a partial banner update.
type UpdateBannerInput struct {
	MediaURL          *string                `json:"media_url,omitempty"`
	MediaKind         *enums.HeroMediaKind   `json:"media_kind,omitempty"`
	Title             *string                `json:"title,omitempty"`
	Subtitle          *string                `json:"subtitle,omitempty"`
	ButtonLabel       *string                `json:"button_label,omitempty"`
	ButtonURL         *string                `json:"button_url,omitempty"`
	TextColor         *string                `json:"text_color,omitempty"`
	HeadingSize       *string                `json:"heading_size,omitempty"`
	VerticalAlign     *enums.VerticalAlign   `json:"vertical_align,omitempty"`
	HorizontalAlign   *enums.HorizontalAlign `json:"horizontal_align,omitempty"`
	HeadingAlign      *enums.HorizontalAlign `json:"heading_align,omitempty"`
	SubheadingAlign   *enums.HorizontalAlign `json:"subheading_align,omitempty"`
	ButtonAlign       *enums.HorizontalAlign `json:"button_align,omitempty"`
	Animation         *string                `json:"animation,omitempty"`
	AdvanceOnVideoEnd *bool                  `json:"advance_on_video_end,omitempty"`
	IsActive          *bool                  `json:"is_active,omitempty"`
	Position          *int                   `json:"position,omitempty"`
}

// UpdateSettingsInput is the admin payload for the global carousel settings.
// Alignment axes accept an empty string to clear the global default.
type UpdateSettingsInput struct {
	Autoplay        *bool                  `json:"autoplay,omitempty"`
	IntervalMS      *int                   `json:"interval_ms,omitempty"`
	PauseOnHover    *bool                  `json:"pause_on_hover,omitempty"`
	ShowArrows      *bool                  `json:"show_arrows,omitempty"`
	ShowDots        *bool                  `json:"show_dots,omitempty"`
	VerticalAlign   *enums.VerticalAlign   `json:"vertical_align,omitempty"`
	HorizontalAlign *enums.HorizontalAlign `json:"horizontal_align,omitempty"`
	HeadingAlign    *enums.HorizontalAlign `json:"heading_align,omitempty"`
	SubheadingAlign *enums.HorizontalAlign `json:"subheading_align,omitempty"`
	ButtonAlign     *enums.HorizontalAlign `json:"button_align,omitempty"`
}

func bannerFromModel(b *models.HeroBanner, settings *models.HeroSettings) *BannerDTO {
	if b == nil {
		return nil
	}
	return &BannerDTO{
		ID:                b.ID,
		Position:          b.Position,
		MediaURL:          b.MediaURL,
		MediaKind:         b.MediaKind,
		Title:             b.Title,
		Subtitle:          b.Subtitle,
		ButtonLabel:       b.ButtonLabel,
		ButtonURL:         b.ButtonURL,
		TextColor:         b.TextColor,
		HeadingSize:       b.HeadingSize,
		VerticalAlign:     b.VerticalAlign,
		HorizontalAlign:   b.HorizontalAlign,
		HeadingAlign:      b.HeadingAlign,
		SubheadingAlign:   b.SubheadingAlign,
		ButtonAlign:       b.ButtonAlign,
		Animation:         b.Animation,
		AdvanceOnVideoEnd: b.AdvanceOnVideoEnd,
		IsActive:          b.IsActive,
		Style:             ResolveStyle(b, settings),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func settingsFromModel(s *models.HeroSettings) SettingsDTO {
	if s == nil {
		return SettingsDTO{
			Autoplay:     true,
			IntervalMS:   5000,
			PauseOnHover: true,
			ShowArrows:   true,
			ShowDots:     true,
		}
	}
	return SettingsDTO{
		Autoplay:        s.Autoplay,
		IntervalMS:      s.IntervalMS,
		PauseOnHover:    s.PauseOnHover,
		ShowArrows:      s.ShowArrows,
		ShowDots:        s.ShowDots,
		VerticalAlign:   s.VerticalAlign,
		HorizontalAlign: s.HorizontalAlign,
		HeadingAlign:    s.HeadingAlign,
		SubheadingAlign: s.SubheadingAlign,
		ButtonAlign:     s.ButtonAlign,
		UpdatedAt:       s.UpdatedAt,
	}
}
