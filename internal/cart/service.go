package cart

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/catalog"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

const maxLineQuantity = 99

type cartRepository interface {
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	IncrementQuantity(ctx context.Context, userID, productID uuid.UUID, delta int) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type productFinder interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

type guestCarts interface {
	NewToken() string
	Load(ctx context.Context, token string) (guestLines, error)
	Save(ctx context.Context, token string, lines guestLines) error
	Delete(ctx context.Context, token string) error
}

// Service exposes signed-in and guest cart operations. Guest carts live in
// Redis under an opaque token; MergeGuestCart folds one into the account cart
// at login.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	SetItem(ctx context.Context, userID uuid.UUID, input SetItemInput) (*CartDTO, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error

	GetGuestCart(ctx context.Context, token string) (*GuestCartDTO, error)
	SetGuestItem(ctx context.Context, token string, input SetItemInput) (*GuestCartDTO, error)
	RemoveGuestItem(ctx context.Context, token string, productID uuid.UUID) (*GuestCartDTO, error)

	MergeGuestCart(ctx context.Context, token string, userID uuid.UUID) error
}

type service struct {
	repo     cartRepository
	products productFinder
	guests   guestCarts
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Repository cartRepository
	Products   productFinder
	GuestStore guestCarts
}

// NewService builds the cart service after validating its dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repository == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart repository is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product finder is required")
	}
	if params.GuestStore == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "guest cart store is required")
	}
	return &service{
		repo:     params.Repository,
		products: params.Products,
		guests:   params.GuestStore,
	}, nil
}

func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	items, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load cart")
	}

	lines := make([]lineSource, 0, len(items))
	for _, item := range items {
		lines = append(lines, lineSource{ProductID: item.ProductID, Quantity: item.Quantity, AddedAt: item.CreatedAt})
	}
	return s.buildCart(ctx, lines)
}

func (s *service) SetItem(ctx context.Context, userID uuid.UUID, input SetItemInput) (*CartDTO, error) {
	if err := s.validateItem(ctx, input); err != nil {
		return nil, err
	}

	if input.Quantity == 0 {
		if err := s.repo.RemoveItem(ctx, userID, input.ProductID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to remove cart item")
		}
	} else if err := s.repo.SetQuantity(ctx, userID, input.ProductID, input.Quantity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to set cart quantity")
	}
	return s.GetCart(ctx, userID)
}

func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error) {
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to remove cart item")
	}
	return s.GetCart(ctx, userID)
}

func (s *service) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to clear cart")
	}
	return nil
}

func (s *service) GetGuestCart(ctx context.Context, token string) (*GuestCartDTO, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		token = s.guests.NewToken()
	}
	lines, err := s.guests.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	cart, err := s.buildCart(ctx, guestLineSources(lines))
	if err != nil {
		return nil, err
	}
	return &GuestCartDTO{Token: token, Cart: *cart}, nil
}

func (s *service) SetGuestItem(ctx context.Context, token string, input SetItemInput) (*GuestCartDTO, error) {
	if err := s.validateItem(ctx, input); err != nil {
		return nil, err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		token = s.guests.NewToken()
	}
	lines, err := s.guests.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	if input.Quantity == 0 {
		delete(lines, input.ProductID)
	} else {
		lines[input.ProductID] = input.Quantity
	}
	if err := s.guests.Save(ctx, token, lines); err != nil {
		return nil, err
	}

	cart, err := s.buildCart(ctx, guestLineSources(lines))
	if err != nil {
		return nil, err
	}
	return &GuestCartDTO{Token: token, Cart: *cart}, nil
}

func (s *service) RemoveGuestItem(ctx context.Context, token string, productID uuid.UUID) (*GuestCartDTO, error) {
	return s.SetGuestItem(ctx, token, SetItemInput{ProductID: productID, Quantity: 0})
}

// MergeGuestCart adds the guest quantities onto the account cart line by line,
// then deletes the Redis entry so the token cannot be replayed.
func (s *service) MergeGuestCart(ctx context.Context, token string, userID uuid.UUID) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	lines, err := s.guests.Load(ctx, token)
	if err != nil {
		return err
	}

	for productID, quantity := range lines {
		if quantity <= 0 {
			continue
		}
		if _, err := s.activeProduct(ctx, productID); err != nil {
			// products deactivated since the guest added them are dropped
			if code := pkgerrors.As(err); code != nil && code.Code() == pkgerrors.CodeNotFound {
				continue
			}
			return err
		}
		if err := s.repo.IncrementQuantity(ctx, userID, productID, quantity); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to merge guest cart line")
		}
	}
	return s.guests.Delete(ctx, token)
}

type lineSource struct {
	ProductID uuid.UUID
	Quantity  int
	AddedAt   time.Time
}

func guestLineSources(lines guestLines) []lineSource {
	out := make([]lineSource, 0, len(lines))
	for productID, quantity := range lines {
		out = append(out, lineSource{ProductID: productID, Quantity: quantity})
	}
	// map iteration order is random; keep the payload stable
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProductID.String() < out[j].ProductID.String()
	})
	return out
}

// buildCart joins products onto the lines and totals them. Lines whose product
// vanished or went inactive are silently omitted.
func (s *service) buildCart(ctx context.Context, lines []lineSource) (*CartDTO, error) {
	cart := &CartDTO{Items: []LineDTO{}}
	if len(lines) == 0 {
		return cart, nil
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.products.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load cart products")
	}
	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok || !product.IsActive {
			continue
		}
		lineTotal := catalog.DisplayPriceCents(product) * line.Quantity
		cart.Items = append(cart.Items, LineDTO{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			Product:        catalog.ProductFromModel(product),
			LineTotalCents: lineTotal,
			AddedAt:        line.AddedAt,
		})
		cart.ItemCount += line.Quantity
		cart.SubtotalCents += lineTotal
	}
	return cart, nil
}

func (s *service) validateItem(ctx context.Context, input SetItemInput) error {
	if input.ProductID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if input.Quantity < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}
	if input.Quantity > maxLineQuantity {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity exceeds the per-line limit")
	}
	if input.Quantity == 0 {
		return nil
	}
	_, err := s.activeProduct(ctx, input.ProductID)
	return err
}

func (s *service) activeProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}
