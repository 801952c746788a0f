package reviews

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
)

// Repository handles review persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to review operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new review row.
func (r *Repository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// FindByID loads a review by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateStatus moves the review to the given moderation status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ReviewStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListApprovedByProduct returns the approved reviews for a product, newest first.
func (r *Repository) ListApprovedByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	var rows []models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID, enums.ReviewStatusApproved).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListByStatus returns reviews in the given moderation status, oldest first so
// admins work through the queue in order.
func (r *Repository) ListByStatus(ctx context.Context, status enums.ReviewStatus) ([]models.Review, error) {
	var rows []models.Review
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// HasUserReviewed reports whether the user already reviewed the product.
func (r *Repository) HasUserReviewed(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

// ApprovedSummary returns the approved review count and average rating for a
// product.
func (r *Repository) ApprovedSummary(ctx context.Context, productID uuid.UUID) (int64, float64, error) {
	type aggregate struct {
		Count int64
		Avg   float64
	}
	var agg aggregate
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
		Where("product_id = ? AND status = ?", productID, enums.ReviewStatusApproved).
		Scan(&agg).Error
	return agg.Count, agg.Avg, err
}
