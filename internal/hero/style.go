package hero

import (
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
)

const (
	defaultTextColor   = "#ffffff"
	defaultHeadingSize = "lg"
)

// ResolvedStyle is the per-slide styling the storefront renders after the
// banner override, global setting, center-default precedence is applied on
// every axis.
type ResolvedStyle struct {
	TextColor       string                `json:"text_color"`
	HeadingSize     string                `json:"heading_size"`
	VerticalAlign   enums.VerticalAlign   `json:"vertical_align"`
	HorizontalAlign enums.HorizontalAlign `json:"horizontal_align"`
	HeadingAlign    enums.HorizontalAlign `json:"heading_align"`
	SubheadingAlign enums.HorizontalAlign `json:"subheading_align"`
	ButtonAlign     enums.HorizontalAlign `json:"button_align"`
	Animation       *string               `json:"animation,omitempty"`
}

// ResolveStyle computes the effective style for one banner against the global
// settings. A nil settings row behaves as if every global default were unset.
func ResolveStyle(banner *models.HeroBanner, settings *models.HeroSettings) ResolvedStyle {
	var (
		globalVertical   *enums.VerticalAlign
		globalHorizontal *enums.HorizontalAlign
		globalHeading    *enums.HorizontalAlign
		globalSubheading *enums.HorizontalAlign
		globalButton     *enums.HorizontalAlign
	)
	if settings != nil {
		globalVertical = settings.VerticalAlign
		globalHorizontal = settings.HorizontalAlign
		globalHeading = settings.HeadingAlign
		globalSubheading = settings.SubheadingAlign
		globalButton = settings.ButtonAlign
	}

	return ResolvedStyle{
		TextColor:       firstPresentString(defaultTextColor, banner.TextColor),
		HeadingSize:     firstPresentString(defaultHeadingSize, banner.HeadingSize),
		VerticalAlign:   firstPresentVertical(enums.VerticalAlignCenter, banner.VerticalAlign, globalVertical),
		HorizontalAlign: firstPresentHorizontal(enums.HorizontalAlignCenter, banner.HorizontalAlign, globalHorizontal),
		HeadingAlign:    firstPresentHorizontal(enums.HorizontalAlignCenter, banner.HeadingAlign, globalHeading),
		SubheadingAlign: firstPresentHorizontal(enums.HorizontalAlignCenter, banner.SubheadingAlign, globalSubheading),
		ButtonAlign:     firstPresentHorizontal(enums.HorizontalAlignCenter, banner.ButtonAlign, globalButton),
		Animation:       banner.Animation,
	}
}

// firstPresentVertical walks the candidates in precedence order and returns
// the first set, valid value.
func firstPresentVertical(fallback enums.VerticalAlign, candidates ...*enums.VerticalAlign) enums.VerticalAlign {
	for _, candidate := range candidates {
		if candidate != nil && candidate.IsValid() {
			return *candidate
		}
	}
	return fallback
}

func firstPresentHorizontal(fallback enums.HorizontalAlign, candidates ...*enums.HorizontalAlign) enums.HorizontalAlign {
	for _, candidate := range candidates {
		if candidate != nil && candidate.IsValid() {
			return *candidate
		}
	}
	return fallback
}

func firstPresentString(fallback string, candidates ...*string) string {
	for _, candidate := range candidates {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}
	return fallback
}
