package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/pagination"
)

// CategoryDTO is the category payload returned to clients.
type CategoryDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ShowOnHome   bool      `json:"show_on_home"`
	HomePosition int       `json:"home_position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductDTO is the product payload returned to clients. DisplayPriceCents and
// DiscountBadgePercent are derived on the way out, never persisted.
type ProductDTO struct {
	ID                   uuid.UUID      `json:"id"`
	Title                string         `json:"title"`
	Slug                 string         `json:"slug"`
	Description          *string        `json:"description,omitempty"`
	CategoryID           uuid.UUID      `json:"category_id"`
	Category             *CategoryDTO   `json:"category,omitempty"`
	BasePriceCents       int            `json:"base_price_cents"`
	SalePriceCents       *int           `json:"sale_price_cents,omitempty"`
	DiscountPercent      *float64       `json:"discount_percent,omitempty"`
	MRPCents             *int           `json:"mrp_cents,omitempty"`
	DisplayPriceCents    int            `json:"display_price_cents"`
	HasDiscount          bool           `json:"has_discount"`
	DiscountBadgePercent *int           `json:"discount_badge_percent,omitempty"`
	Images               []string       `json:"images"`
	IsActive             bool           `json:"is_active"`
	IsNewArrival         bool           `json:"is_new_arrival"`
	IsHotSelling         bool           `json:"is_hot_selling"`
	IsFeatured           bool           `json:"is_featured"`
	Specifications       map[string]any `json:"specifications"`
	KeyFeatures          []string       `json:"key_features"`
	WarrantyCoverage     []string       `json:"warranty_coverage"`
	WarrantyCare         []string       `json:"warranty_care"`
	Dimensions           *string        `json:"dimensions,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// ProductListFilters describe the supported filter knobs for the browse endpoint.
type ProductListFilters struct {
	CategorySlug   string `json:"category,omitempty"`
	PriceMinCents  *int   `json:"price_min_cents,omitempty"`
	PriceMaxCents  *int   `json:"price_max_cents,omitempty"`
	DiscountedOnly bool   `json:"discounted_only,omitempty"`
	NewArrivals    bool   `json:"new_arrivals,omitempty"`
	HotSelling     bool   `json:"hot_selling,omitempty"`
	FeaturedOnly   bool   `json:"featured_only,omitempty"`
	Query          string `json:"q,omitempty"`
}

// ListProductsInput captures the inputs needed to paginate, filter, and sort
// the browse endpoint. The cursor applies only to the default sort; price and
// flag sorts page by offset.
type ListProductsInput struct {
	Filters         ProductListFilters
	Sort            enums.SortOption
	Pagination      pagination.Params
	Page            int
	IncludeInactive bool
}

// ProductListResult is one page of products plus the cursor for the next page.
type ProductListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// SearchInput carries the free-text query plus the client sequence number.
type SearchInput struct {
	Query string `json:"q"`
	Seq   int    `json:"seq"`
	Limit int    `json:"limit,omitempty"`
}

// SearchResult echoes the request seq so clients can discard stale responses.
type SearchResult struct {
	Seq      int          `json:"seq"`
	Query    string       `json:"q"`
	Products []ProductDTO `json:"products"`
}

// FilterMeta describes the bounds the storefront renders for the price slider.
type FilterMeta struct {
	PriceMinCents  int `json:"price_min_cents"`
	PriceMaxCents  int `json:"price_max_cents"`
	PriceStepCents int `json:"price_step_cents"`
}

// CreateProductInput is the admin payload for a new product.
type CreateProductInput struct {
	Title            string         `json:"title" validate:"required"`
	Slug             string         `json:"slug" validate:"required"`
	Description      *string        `json:"description,omitempty"`
	CategoryID       uuid.UUID      `json:"category_id" validate:"required"`
	BasePriceCents   int            `json:"base_price_cents" validate:"required,gt=0"`
	SalePriceCents   *int           `json:"sale_price_cents,omitempty"`
	DiscountPercent  *float64       `json:"discount_percent,omitempty"`
	MRPCents         *int           `json:"mrp_cents,omitempty"`
	Images           []string       `json:"images,omitempty"`
	IsActive         *bool          `json:"is_active,omitempty"`
	IsNewArrival     bool           `json:"is_new_arrival,omitempty"`
	IsHotSelling     bool           `json:"is_hot_selling,omitempty"`
	IsFeatured       bool           `json:"is_featured,omitempty"`
	Specifications   map[string]any `json:"specifications,omitempty"`
	KeyFeatures      []string       `json:"key_features,omitempty"`
	WarrantyCoverage []string       `json:"warranty_coverage,omitempty"`
	WarrantyCare     []string       `json:"warranty_care,omitempty"`
	Dimensions       *string        `json:"dimensions,omitempty"`
}

// UpdateProductInput is the admin payload for a partial product update. Nil
// fields are left untouched. Sending zero for sale_price_cents,
// discount_percent, or mrp_cents clears the stored value.
type UpdateProductInput struct {
	Title            *string         `json:"title,omitempty"`
	Slug             *string         `json:"slug,omitempty"`
	Description      *string         `json:"description,omitempty"`
	CategoryID       *uuid.UUID      `json:"category_id,omitempty"`
	BasePriceCents   *int            `json:"base_price_cents,omitempty"`
	SalePriceCents   *int            `json:"sale_price_cents,omitempty"`
	DiscountPercent  *float64        `json:"discount_percent,omitempty"`
	MRPCents         *int            `json:"mrp_cents,omitempty"`
	Images           *[]string       `json:"images,omitempty"`
	IsActive         *bool           `json:"is_active,omitempty"`
	IsNewArrival     *bool           `json:"is_new_arrival,omitempty"`
	IsHotSelling     *bool           `json:"is_hot_selling,omitempty"`
	IsFeatured       *bool           `json:"is_featured,omitempty"`
	Specifications   *map[string]any `json:"specifications,omitempty"`
	KeyFeatures      *[]string       `json:"key_features,omitempty"`
	WarrantyCoverage *[]string       `json:"warranty_coverage,omitempty"`
	WarrantyCare     *[]string       `json:"warranty_care,omitempty"`
	Dimensions       *string         `json:"dimensions,omitempty"`
}

// CreateCategoryInput is the admin payload for a new category.
type CreateCategoryInput struct {
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	ShowOnHome   bool   `json:"show_on_home,omitempty"`
	HomePosition int    `json:"home_position,omitempty"`
}

// UpdateCategoryInput is the admin payload for a partial category update.
type UpdateCategoryInput struct {
	Name         *string `json:"name,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	ShowOnHome   *bool   `json:"show_on_home,omitempty"`
	HomePosition *int    `json:"home_position,omitempty"`
}

// CategoryFromModel maps a category row to its DTO.
func CategoryFromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		ShowOnHome:   c.ShowOnHome,
		HomePosition: c.HomePosition,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ProductFromModel maps a product row to its DTO, deriving display pricing.
func ProductFromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	dto := &ProductDTO{
		ID:                   p.ID,
		Title:                p.Title,
		Slug:                 p.Slug,
		Description:          p.Description,
		CategoryID:           p.CategoryID,
		Category:             CategoryFromModel(p.Category),
		BasePriceCents:       p.BasePriceCents,
		SalePriceCents:       p.SalePriceCents,
		DiscountPercent:      p.DiscountPercent,
		MRPCents:             p.MRPCents,
		DisplayPriceCents:    DisplayPriceCents(p),
		HasDiscount:          HasDiscount(p),
		DiscountBadgePercent: DiscountBadgePercent(p),
		Images:               append([]string{}, p.Images...),
		IsActive:             p.IsActive,
		IsNewArrival:         p.IsNewArrival,
		IsHotSelling:         p.IsHotSelling,
		IsFeatured:           p.IsFeatured,
		Specifications:       p.Specifications.Clone(),
		KeyFeatures:          append([]string{}, p.KeyFeatures...),
		WarrantyCoverage:     append([]string{}, p.WarrantyCoverage...),
		WarrantyCare:         append([]string{}, p.WarrantyCare...),
		Dimensions:           p.Dimensions,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
	return dto
}
