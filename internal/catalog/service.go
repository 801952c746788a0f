package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	dbtypes "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/types"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

const defaultSearchLimit = 12

type catalogRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListProducts(ctx context.Context, query productListQuery) (*productListRows, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error)

	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListHomeCategories(ctx context.Context) ([]models.Category, error)
	CountProductsInCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// Service exposes the catalog to both the storefront and the admin panel.
type Service interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListResult, error)
	GetProductBySlug(ctx context.Context, slug string) (*ProductDTO, error)
	Search(ctx context.Context, input SearchInput) (*SearchResult, error)
	FilterMeta() FilterMeta
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	HomeCategories(ctx context.Context) ([]CategoryDTO, error)

	GetProductByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo catalogRepository
	cfg  config.CatalogConfig
}

// NewService constructs a catalog service with the provided repository.
func NewService(repo catalogRepository, cfg config.CatalogConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{repo: repo, cfg: cfg}, nil
}

func (s *service) ListProducts(ctx context.Context, input ListProductsInput) (*ProductListResult, error) {
	filters, err := s.clampFilters(input.Filters)
	if err != nil {
		return nil, err
	}

	sort := input.Sort
	if sort == "" {
		sort = enums.SortDefault
	}
	if !sort.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid sort option")
	}

	rows, err := s.repo.ListProducts(ctx, productListQuery{
		Filters:         filters,
		Sort:            sort,
		Pagination:      input.Pagination,
		Page:            input.Page,
		IncludeInactive: input.IncludeInactive,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	products := make([]ProductDTO, 0, len(rows.Products))
	for i := range rows.Products {
		products = append(products, *ProductFromModel(&rows.Products[i]))
	}
	return &ProductListResult{
		Products:   products,
		NextCursor: rows.NextCursor,
	}, nil
}

func (s *service) GetProductBySlug(ctx context.Context, slug string) (*ProductDTO, error) {
	slug = normalizeSlug(slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	product, err := s.repo.FindProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return ProductFromModel(product), nil
}

func (s *service) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	limit := input.Limit
	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}

	query := strings.TrimSpace(input.Query)
	result := &SearchResult{
		Seq:      input.Seq,
		Query:    query,
		Products: []ProductDTO{},
	}
	if query == "" {
		return result, nil
	}

	rows, err := s.repo.SearchProducts(ctx, query, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search products")
	}
	for i := range rows {
		result.Products = append(result.Products, *ProductFromModel(&rows[i]))
	}
	return result, nil
}

func (s *service) FilterMeta() FilterMeta {
	return FilterMeta{
		PriceMinCents:  s.cfg.PriceFilterMinCents,
		PriceMaxCents:  s.cfg.PriceFilterMaxCents,
		PriceStepCents: s.cfg.PriceFilterStepCents,
	}
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return categoriesFromModels(rows), nil
}

func (s *service) HomeCategories(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.ListHomeCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list home categories")
	}
	return categoriesFromModels(rows), nil
}

func (s *service) GetProductByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return ProductFromModel(product), nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	slug := normalizeSlug(input.Slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	if input.BasePriceCents <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "base price must be positive")
	}
	if err := validateOptionalPricing(input.SalePriceCents, input.DiscountPercent, input.MRPCents); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindCategoryByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &models.Product{
		Title:            strings.TrimSpace(input.Title),
		Slug:             slug,
		Description:      input.Description,
		CategoryID:       input.CategoryID,
		BasePriceCents:   input.BasePriceCents,
		SalePriceCents:   input.SalePriceCents,
		DiscountPercent:  input.DiscountPercent,
		MRPCents:         input.MRPCents,
		Images:           pq.StringArray(append([]string{}, input.Images...)),
		IsActive:         isActive,
		IsNewArrival:     input.IsNewArrival,
		IsHotSelling:     input.IsHotSelling,
		IsFeatured:       input.IsFeatured,
		Specifications:   dbtypes.JSONDocument(input.Specifications),
		KeyFeatures:      pq.StringArray(append([]string{}, input.KeyFeatures...)),
		WarrantyCoverage: pq.StringArray(append([]string{}, input.WarrantyCoverage...)),
		WarrantyCare:     pq.StringArray(append([]string{}, input.WarrantyCare...)),
		Dimensions:       input.Dimensions,
	}
	if product.Specifications == nil {
		product.Specifications = dbtypes.JSONDocument{}
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return ProductFromModel(created), nil
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if input.Title != nil {
		product.Title = strings.TrimSpace(*input.Title)
	}
	if input.Slug != nil {
		slug := normalizeSlug(*input.Slug)
		if slug == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
		}
		product.Slug = slug
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.CategoryID != nil {
		if _, err := s.repo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
		}
		product.CategoryID = *input.CategoryID
	}
	if input.BasePriceCents != nil {
		if *input.BasePriceCents <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "base price must be positive")
		}
		product.BasePriceCents = *input.BasePriceCents
	}
	if input.SalePriceCents != nil {
		product.SalePriceCents = clearableInt(*input.SalePriceCents)
	}
	if input.DiscountPercent != nil {
		product.DiscountPercent = clearableFloat(*input.DiscountPercent)
	}
	if input.MRPCents != nil {
		product.MRPCents = clearableInt(*input.MRPCents)
	}
	if err := validateOptionalPricing(product.SalePriceCents, product.DiscountPercent, product.MRPCents); err != nil {
		return nil, err
	}
	if input.Images != nil {
		product.Images = pq.StringArray(append([]string{}, (*input.Images)...))
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsNewArrival != nil {
		product.IsNewArrival = *input.IsNewArrival
	}
	if input.IsHotSelling != nil {
		product.IsHotSelling = *input.IsHotSelling
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.Specifications != nil {
		product.Specifications = dbtypes.JSONDocument(*input.Specifications)
		if product.Specifications == nil {
			product.Specifications = dbtypes.JSONDocument{}
		}
	}
	if input.KeyFeatures != nil {
		product.KeyFeatures = pq.StringArray(append([]string{}, (*input.KeyFeatures)...))
	}
	if input.WarrantyCoverage != nil {
		product.WarrantyCoverage = pq.StringArray(append([]string{}, (*input.WarrantyCoverage)...))
	}
	if input.WarrantyCare != nil {
		product.WarrantyCare = pq.StringArray(append([]string{}, (*input.WarrantyCare)...))
	}
	if input.Dimensions != nil {
		product.Dimensions = input.Dimensions
	}

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return ProductFromModel(updated), nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindProductByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func (s *service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error) {
	slug := normalizeSlug(input.Slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	category, err := s.repo.CreateCategory(ctx, &models.Category{
		Name:         name,
		Slug:         slug,
		ShowOnHome:   input.ShowOnHome,
		HomePosition: input.HomePosition,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	return CategoryFromModel(category), nil
}

func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error) {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
		}
		category.Name = name
	}
	if input.Slug != nil {
		slug := normalizeSlug(*input.Slug)
		if slug == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
		}
		category.Slug = slug
	}
	if input.ShowOnHome != nil {
		category.ShowOnHome = *input.ShowOnHome
	}
	if input.HomePosition != nil {
		category.HomePosition = *input.HomePosition
	}

	updated, err := s.repo.UpdateCategory(ctx, category)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update category")
	}
	return CategoryFromModel(updated), nil
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}

	count, err := s.repo.CountProductsInCategory(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count category products")
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "category still has products")
	}

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete category")
	}
	return nil
}

func (s *service) clampFilters(filters ProductListFilters) (ProductListFilters, error) {
	minBound := s.cfg.PriceFilterMinCents
	maxBound := s.cfg.PriceFilterMaxCents

	if filters.PriceMinCents != nil {
		v := *filters.PriceMinCents
		if v < minBound {
			v = minBound
		}
		if maxBound > 0 && v > maxBound {
			v = maxBound
		}
		filters.PriceMinCents = &v
	}
	if filters.PriceMaxCents != nil {
		v := *filters.PriceMaxCents
		if v < minBound {
			v = minBound
		}
		if maxBound > 0 && v > maxBound {
			v = maxBound
		}
		filters.PriceMaxCents = &v
	}
	if filters.PriceMinCents != nil && filters.PriceMaxCents != nil && *filters.PriceMinCents > *filters.PriceMaxCents {
		return filters, pkgerrors.New(pkgerrors.CodeValidation, "price_min_cents exceeds price_max_cents")
	}
	return filters, nil
}

func categoriesFromModels(rows []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *CategoryFromModel(&rows[i]))
	}
	return out
}

func validateOptionalPricing(sale *int, discount *float64, mrp *int) error {
	if sale != nil && *sale < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "sale price cannot be negative")
	}
	if discount != nil && (*discount < 0 || *discount > 100) {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount percent must be between 0 and 100")
	}
	if mrp != nil && *mrp < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "mrp cannot be negative")
	}
	return nil
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

func clearableInt(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

func clearableFloat(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}
