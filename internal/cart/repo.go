package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
)

// Repository handles signed-in cart persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to cart operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SetQuantity upserts the (user, product) line to the absolute quantity in a
// single statement.
func (r *Repository) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{"quantity": quantity}),
	}).Create(&item).Error
}

// IncrementQuantity adds delta to the (user, product) line, creating it when
// missing. Used by the guest-cart merge.
func (r *Repository) IncrementQuantity(ctx context.Context, userID, productID uuid.UUID, delta int) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  delta,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("cart_items.quantity + ?", delta)}),
	}).Create(&item).Error
}

// RemoveItem deletes the (user, product) line if present.
func (r *Repository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

// ListItems returns the user's cart lines oldest first.
func (r *Repository) ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// Clear removes every line in the user's cart.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
