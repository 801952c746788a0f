package checkout

import (
	"context"

	"github.com/google/uuid"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cart"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

type cartReader interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*cart.CartDTO, error)
	GetGuestCart(ctx context.Context, token string) (*cart.GuestCartDTO, error)
}

// CheckoutDTO is the link payload handed to the storefront.
type CheckoutDTO struct {
	WhatsAppURL   string `json:"whatsapp_url"`
	ItemCount     int    `json:"item_count"`
	SubtotalCents int    `json:"subtotal_cents"`
}

// Service turns a cart into a WhatsApp checkout link.
type Service interface {
	CheckoutCart(ctx context.Context, userID uuid.UUID) (*CheckoutDTO, error)
	CheckoutGuestCart(ctx context.Context, token string) (*CheckoutDTO, error)
}

type service struct {
	carts cartReader
	links *LinkBuilder
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Carts cartReader
	Links *LinkBuilder
}

// NewService builds the checkout service after validating its dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart service is required")
	}
	if params.Links == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "link builder is required")
	}
	return &service{carts: params.Carts, links: params.Links}, nil
}

func (s *service) CheckoutCart(ctx context.Context, userID uuid.UUID) (*CheckoutDTO, error) {
	c, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.build(c)
}

func (s *service) CheckoutGuestCart(ctx context.Context, token string) (*CheckoutDTO, error) {
	guest, err := s.carts.GetGuestCart(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.build(&guest.Cart)
}

func (s *service) build(c *cart.CartDTO) (*CheckoutDTO, error) {
	link, err := s.links.Build(c)
	if err != nil {
		return nil, err
	}
	return &CheckoutDTO{
		WhatsAppURL:   link,
		ItemCount:     c.ItemCount,
		SubtotalCents: c.SubtotalCents,
	}, nil
}
