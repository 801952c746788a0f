package enums

import "fmt"

// SortOption enumerates the catalog sort orders the storefront exposes.
type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
	SortNew       SortOption = "new"
	SortHot       SortOption = "hot"
	SortFeatured  SortOption = "featured"
)

var validSortOptions = []SortOption{
	SortDefault,
	SortPriceAsc,
	SortPriceDesc,
	SortNew,
	SortHot,
	SortFeatured,
}

// String implements fmt.Stringer.
func (s SortOption) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOption.
func (s SortOption) IsValid() bool {
	for _, candidate := range validSortOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOption converts raw input into a SortOption. An empty value maps to
// SortDefault so list endpoints can omit the parameter.
func ParseSortOption(value string) (SortOption, error) {
	if value == "" {
		return SortDefault, nil
	}
	for _, candidate := range validSortOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", value)
}
