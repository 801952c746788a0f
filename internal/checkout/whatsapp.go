package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cart"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

const waBaseURL = "https://wa.me/"

// LinkBuilder turns a cart into a prefilled WhatsApp order message. Checkout
// hands the conversation to the store's WhatsApp number instead of taking
// payment online.
type LinkBuilder struct {
	number    string
	storeName string
}

// NewLinkBuilder validates the configured WhatsApp destination.
func NewLinkBuilder(cfg config.CheckoutConfig) (*LinkBuilder, error) {
	number := sanitizeNumber(cfg.WhatsAppNumber)
	if number == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "whatsapp number is not configured")
	}
	storeName := strings.TrimSpace(cfg.StoreName)
	if storeName == "" {
		storeName = "our store"
	}
	return &LinkBuilder{number: number, storeName: storeName}, nil
}

// Build renders the order message for the cart and returns the wa.me link.
// Empty carts are rejected so buyers never send a blank order.
func (b *LinkBuilder) Build(c *cart.CartDTO) (string, error) {
	if c == nil || len(c.Items) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "Hello %s, I would like to order:\n\n", b.storeName)
	for i, item := range c.Items {
		title := "item"
		if item.Product != nil {
			title = item.Product.Title
		}
		unitPrice := 0
		if item.Quantity > 0 {
			unitPrice = item.LineTotalCents / item.Quantity
		}
		fmt.Fprintf(&msg, "%d. %s x%d @ %s = %s\n",
			i+1, title, item.Quantity, formatRupees(unitPrice), formatRupees(item.LineTotalCents))
	}
	fmt.Fprintf(&msg, "\nTotal: %s", formatRupees(c.SubtotalCents))

	return waBaseURL + b.number + "?text=" + url.QueryEscape(msg.String()), nil
}

// sanitizeNumber strips everything but digits so "+91 98765-43210" becomes
// the wa.me-compatible "919876543210".
func sanitizeNumber(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

func formatRupees(cents int) string {
	amount := decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100))
	return "Rs. " + amount.StringFixed(2)
}
