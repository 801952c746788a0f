package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/catalog"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

type wishlistRepository interface {
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type productFinder interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

// ItemDTO is one wishlist entry with the product joined in.
type ItemDTO struct {
	ProductID uuid.UUID           `json:"product_id"`
	Product   *catalog.ProductDTO `json:"product,omitempty"`
	LikedAt   time.Time           `json:"liked_at"`
}

// WishlistDTO is the full wishlist payload.
type WishlistDTO struct {
	Items []ItemDTO `json:"items"`
}

// Service exposes wishlist operations. Wishlists require a signed-in user;
// there is no guest variant.
type Service interface {
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) (*WishlistDTO, error)
	Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type service struct {
	repo     wishlistRepository
	products productFinder
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Repository wishlistRepository
	Products   productFinder
}

// NewService builds the wishlist service after validating its dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repository == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wishlist repository is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product finder is required")
	}
	return &service{repo: params.Repository, products: params.Products}, nil
}

// Add likes the product. Liking an already-liked product succeeds silently.
func (s *service) Add(ctx context.Context, userID, productID uuid.UUID) error {
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	product, err := s.products.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	if err := s.repo.Add(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add wishlist item")
	}
	return nil
}

func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist item")
	}
	return nil
}

// List returns the likes newest first. Entries whose product vanished or went
// inactive are omitted.
func (s *service) List(ctx context.Context, userID uuid.UUID) (*WishlistDTO, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist")
	}

	out := &WishlistDTO{Items: []ItemDTO{}}
	if len(items) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist products")
	}
	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok || !product.IsActive {
			continue
		}
		out.Items = append(out.Items, ItemDTO{
			ProductID: item.ProductID,
			Product:   catalog.ProductFromModel(product),
			LikedAt:   item.CreatedAt,
		})
	}
	return out, nil
}

func (s *service) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	liked, err := s.repo.Contains(ctx, userID, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check wishlist")
	}
	return liked, nil
}
