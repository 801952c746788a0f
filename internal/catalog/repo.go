package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/pagination"
)

// displayPriceExpr mirrors DisplayPriceCents in SQL so filters and sorts see
// the same price buyers see.
const displayPriceExpr = `COALESCE(
NULLIF(sale_price_cents, 0),
CASE WHEN discount_percent IS NOT NULL AND discount_percent > 0
     THEN ROUND(base_price_cents * (1 - discount_percent / 100.0))
     ELSE NULL END,
base_price_cents)`

// discountedExpr mirrors HasDiscount in SQL: any discount signal counts, a
// positive percent, a sale price below the base price, or a list price above
// the display price.
const discountedExpr = `(
(discount_percent IS NOT NULL AND discount_percent > 0)
OR (sale_price_cents IS NOT NULL AND sale_price_cents > 0 AND sale_price_cents < base_price_cents)
OR (mrp_cents IS NOT NULL AND mrp_cents > ` + displayPriceExpr + `))`

// Repository wires together product and category persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// CreateProduct inserts a new product row.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates an existing product row.
func (r *Repository) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product by ID.
func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

// FindProductByID loads the product without associations.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindProductBySlug loads the product with its category preloaded.
func (r *Repository) FindProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindProductsByIDs loads multiple products in one query.
func (r *Repository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type productListQuery struct {
	Filters         ProductListFilters
	Sort            enums.SortOption
	Pagination      pagination.Params
	Page            int
	IncludeInactive bool
}

type productListRows struct {
	Products   []models.Product
	NextCursor string
}

// ListProducts runs the filtered browse query. The default sort uses the
// (created_at, id) keyset cursor; the remaining sorts page by offset.
func (r *Repository) ListProducts(ctx context.Context, query productListQuery) (*productListRows, error) {
	pageSize := pagination.NormalizeLimit(query.Pagination.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(query.Pagination.Limit)
	if limitWithBuffer <= pageSize {
		limitWithBuffer = pageSize + 1
	}

	qb := r.db.WithContext(ctx).Model(&models.Product{})

	filter := query.Filters
	if !query.IncludeInactive {
		qb = qb.Where("is_active = ?", true)
	}
	if slug := strings.TrimSpace(filter.CategorySlug); slug != "" {
		qb = qb.Where("category_id IN (SELECT id FROM categories WHERE slug = ?)", slug)
	}
	if filter.PriceMinCents != nil {
		qb = qb.Where(displayPriceExpr+" >= ?", *filter.PriceMinCents)
	}
	if filter.PriceMaxCents != nil {
		qb = qb.Where(displayPriceExpr+" <= ?", *filter.PriceMaxCents)
	}
	if filter.DiscountedOnly {
		qb = qb.Where(discountedExpr)
	}
	if filter.NewArrivals {
		qb = qb.Where("is_new_arrival = ?", true)
	}
	if filter.HotSelling {
		qb = qb.Where("is_hot_selling = ?", true)
	}
	if filter.FeaturedOnly {
		qb = qb.Where("is_featured = ?", true)
	}
	if search := strings.TrimSpace(filter.Query); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(title) LIKE ? OR LOWER(slug) LIKE ?)", pattern, pattern)
	}

	usesCursor := query.Sort == enums.SortDefault || query.Sort == enums.SortNew

	switch query.Sort {
	case enums.SortPriceAsc:
		qb = qb.Order(displayPriceExpr + " ASC").Order("id ASC")
	case enums.SortPriceDesc:
		qb = qb.Order(displayPriceExpr + " DESC").Order("id DESC")
	case enums.SortHot:
		qb = qb.Order("is_hot_selling DESC").Order("created_at DESC").Order("id DESC")
	case enums.SortFeatured:
		qb = qb.Order("is_featured DESC").Order("created_at DESC").Order("id DESC")
	default:
		qb = qb.Order("created_at DESC").Order("id DESC")
	}

	if usesCursor {
		cursor, err := pagination.ParseCursor(query.Pagination.Cursor)
		if err != nil {
			return nil, err
		}
		if cursor != nil {
			qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
		}
	} else if query.Page > 0 {
		qb = qb.Offset(query.Page * pageSize)
	}

	var records []models.Product
	if err := qb.Limit(limitWithBuffer).Find(&records).Error; err != nil {
		return nil, err
	}

	resultRows := records
	nextCursor := ""
	if len(records) > pageSize {
		resultRows = records[:pageSize]
		if usesCursor {
			last := resultRows[len(resultRows)-1]
			nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		}
	}

	return &productListRows{
		Products:   resultRows,
		NextCursor: nextCursor,
	}, nil
}

// SearchProducts matches the query against title and slug for the live search box.
func (r *Repository) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	search := strings.TrimSpace(query)
	if search == "" {
		return nil, nil
	}
	pattern := "%" + strings.ToLower(search) + "%"

	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("(LOWER(title) LIKE ? OR LOWER(slug) LIKE ?)", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// CreateCategory inserts a new category row.
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory saves the provided category.
func (r *Repository) UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category by ID.
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}).Error
}

// FindCategoryByID loads a category by its UUID.
func (r *Repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindCategoryBySlug loads a category by its slug.
func (r *Repository) FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns all categories ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

// ListHomeCategories returns the homepage strip in its configured order.
func (r *Repository) ListHomeCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Where("show_on_home = ?", true).
		Order("home_position ASC").
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

// CountProductsInCategory reports how many products reference the category.
func (r *Repository) CountProductsInCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
