package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/catalog"
)

// LineDTO is one cart line with the product joined in and the line total
// computed from the product's display price.
type LineDTO struct {
	ProductID      uuid.UUID           `json:"product_id"`
	Quantity       int                 `json:"quantity"`
	Product        *catalog.ProductDTO `json:"product,omitempty"`
	LineTotalCents int                 `json:"line_total_cents"`
	AddedAt        time.Time           `json:"added_at"`
}

// CartDTO is the full cart payload.
type CartDTO struct {
	Items         []LineDTO `json:"items"`
	ItemCount     int       `json:"item_count"`
	SubtotalCents int       `json:"subtotal_cents"`
}

// SetItemInput sets the absolute quantity of one product. Quantity zero
// removes the line.
type SetItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

// GuestCartDTO is the anonymous cart payload. The token travels with the
// browser and is redeemed at login to merge the lines into the user cart.
type GuestCartDTO struct {
	Token string  `json:"token"`
	Cart  CartDTO `json:"cart"`
}
