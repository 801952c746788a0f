package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is one (user, product) like. Wishlists require a signed-in user.
type WishlistItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
