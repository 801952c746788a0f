package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cart"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

type fakeCartReader struct {
	userCarts  map[uuid.UUID]*cart.CartDTO
	guestCarts map[string]*cart.CartDTO
}

func (f *fakeCartReader) GetCart(_ context.Context, userID uuid.UUID) (*cart.CartDTO, error) {
	if c, ok := f.userCarts[userID]; ok {
		return c, nil
	}
	return &cart.CartDTO{Items: []cart.LineDTO{}}, nil
}

func (f *fakeCartReader) GetGuestCart(_ context.Context, token string) (*cart.GuestCartDTO, error) {
	if c, ok := f.guestCarts[token]; ok {
		return &cart.GuestCartDTO{Token: token, Cart: *c}, nil
	}
	return &cart.GuestCartDTO{Token: token, Cart: cart.CartDTO{Items: []cart.LineDTO{}}}, nil
}

func TestCheckoutCartBuildsLink(t *testing.T) {
	builder, err := NewLinkBuilder(testCheckoutConfig())
	require.NoError(t, err)

	userID := uuid.New()
	carts := &fakeCartReader{userCarts: map[uuid.UUID]*cart.CartDTO{userID: sampleCart()}}
	svc, err := NewService(ServiceParams{Carts: carts, Links: builder})
	require.NoError(t, err)

	out, err := svc.CheckoutCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Contains(t, out.WhatsAppURL, "https://wa.me/919876543210?text=")
	assert.Equal(t, 3, out.ItemCount)
	assert.Equal(t, 305000, out.SubtotalCents)
}

func TestCheckoutGuestCartBuildsLink(t *testing.T) {
	builder, err := NewLinkBuilder(testCheckoutConfig())
	require.NoError(t, err)

	carts := &fakeCartReader{guestCarts: map[string]*cart.CartDTO{"tok123": sampleCart()}}
	svc, err := NewService(ServiceParams{Carts: carts, Links: builder})
	require.NoError(t, err)

	out, err := svc.CheckoutGuestCart(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Contains(t, out.WhatsAppURL, "wa.me")
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	builder, err := NewLinkBuilder(testCheckoutConfig())
	require.NoError(t, err)

	carts := &fakeCartReader{}
	svc, err := NewService(ServiceParams{Carts: carts, Links: builder})
	require.NoError(t, err)

	_, err = svc.CheckoutCart(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
