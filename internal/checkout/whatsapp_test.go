package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cart"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/catalog"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

func testCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		WhatsAppNumber: "+91 98765-43210",
		StoreName:      "Dipak Steel Furniture",
	}
}

func sampleCart() *cart.CartDTO {
	return &cart.CartDTO{
		Items: []cart.LineDTO{
			{
				ProductID:      uuid.New(),
				Quantity:       2,
				Product:        &catalog.ProductDTO{Title: "Steel Almirah", DisplayPriceCents: 120000},
				LineTotalCents: 240000,
			},
			{
				ProductID:      uuid.New(),
				Quantity:       1,
				Product:        &catalog.ProductDTO{Title: "Office Chair", DisplayPriceCents: 65000},
				LineTotalCents: 65000,
			},
		},
		ItemCount:     3,
		SubtotalCents: 305000,
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	builder, err := NewLinkBuilder(testCheckoutConfig())
	require.NoError(t, err)

	link, err := builder.Build(sampleCart())
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/919876543210", parsed.Path)

	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Dipak Steel Furniture")
	assert.Contains(t, text, "Steel Almirah x2 @ Rs. 1200.00 = Rs. 2400.00")
	assert.Contains(t, text, "Office Chair x1 @ Rs. 650.00 = Rs. 650.00")
	assert.Contains(t, text, "Total: Rs. 3050.00")
}

func TestBuildRejectsEmptyCart(t *testing.T) {
	builder, err := NewLinkBuilder(testCheckoutConfig())
	require.NoError(t, err)

	_, err = builder.Build(&cart.CartDTO{})
	require.Error(t, err)
	require.NotNil(t, pkgerrors.As(err))
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestNewLinkBuilderRequiresNumber(t *testing.T) {
	_, err := NewLinkBuilder(config.CheckoutConfig{WhatsAppNumber: " - "})
	require.Error(t, err)
}

func TestSanitizeNumber(t *testing.T) {
	assert.Equal(t, "919876543210", sanitizeNumber("+91 98765-43210"))
	assert.Equal(t, "", sanitizeNumber("no digits"))
}

func TestMessageEscapesNewlines(t *testing.T) {
	builder, err := NewLinkBuilder(testCheckoutConfig())
	require.NoError(t, err)

	link, err := builder.Build(sampleCart())
	require.NoError(t, err)
	// raw newlines never appear in the query string
	assert.False(t, strings.ContainsAny(link, "\n "))
}
