package enums

import "fmt"

// HeroMediaKind distinguishes image slides from video slides.
type HeroMediaKind string

const (
	HeroMediaImage HeroMediaKind = "image"
	HeroMediaVideo HeroMediaKind = "video"
)

var validHeroMediaKinds = []HeroMediaKind{
	HeroMediaImage,
	HeroMediaVideo,
}

func (k HeroMediaKind) String() string {
	return string(k)
}

func (k HeroMediaKind) IsValid() bool {
	for _, candidate := range validHeroMediaKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

func ParseHeroMediaKind(value string) (HeroMediaKind, error) {
	for _, candidate := range validHeroMediaKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid hero media kind %q", value)
}

// VerticalAlign positions the slide text block on the vertical axis.
type VerticalAlign string

const (
	VerticalAlignTop    VerticalAlign = "top"
	VerticalAlignCenter VerticalAlign = "center"
	VerticalAlignBottom VerticalAlign = "bottom"
)

var validVerticalAligns = []VerticalAlign{
	VerticalAlignTop,
	VerticalAlignCenter,
	VerticalAlignBottom,
}

func (a VerticalAlign) String() string {
	return string(a)
}

func (a VerticalAlign) IsValid() bool {
	for _, candidate := range validVerticalAligns {
		if candidate == a {
			return true
		}
	}
	return false
}

func ParseVerticalAlign(value string) (VerticalAlign, error) {
	for _, candidate := range validVerticalAligns {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vertical alignment %q", value)
}

// HorizontalAlign positions the slide text block on the horizontal axis. It
// also serves the heading, subheading, and button-row alignment axes, which
// share the same value set.
type HorizontalAlign string

const (
	HorizontalAlignLeft   HorizontalAlign = "left"
	HorizontalAlignCenter HorizontalAlign = "center"
	HorizontalAlignRight  HorizontalAlign = "right"
)

var validHorizontalAligns = []HorizontalAlign{
	HorizontalAlignLeft,
	HorizontalAlignCenter,
	HorizontalAlignRight,
}

func (a HorizontalAlign) String() string {
	return string(a)
}

func (a HorizontalAlign) IsValid() bool {
	for _, candidate := range validHorizontalAligns {
		if candidate == a {
			return true
		}
	}
	return false
}

func ParseHorizontalAlign(value string) (HorizontalAlign, error) {
	for _, candidate := range validHorizontalAligns {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid horizontal alignment %q", value)
}
