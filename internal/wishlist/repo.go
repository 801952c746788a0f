package wishlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
)

// Repository handles wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to wishlist operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts the (user, product) like. Re-adding an existing like is a no-op
// thanks to the unique index.
func (r *Repository) Add(ctx context.Context, userID, productID uuid.UUID) error {
	item := models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(&item).Error
}

// Remove deletes the (user, product) like if present.
func (r *Repository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}

// List returns the user's likes newest first.
func (r *Repository) List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	var rows []models.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// Contains reports whether the user has liked the product.
func (r *Repository) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
