package reviews

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

const maxBodyLength = 4000

type reviewRepository interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ReviewStatus) error
	ListApprovedByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
	ListByStatus(ctx context.Context, status enums.ReviewStatus) ([]models.Review, error)
	HasUserReviewed(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	ApprovedSummary(ctx context.Context, productID uuid.UUID) (int64, float64, error)
}

type productFinder interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// ReviewDTO is a review as returned to clients.
type ReviewDTO struct {
	ID        uuid.UUID          `json:"id"`
	ProductID uuid.UUID          `json:"product_id"`
	UserID    uuid.UUID          `json:"user_id"`
	Rating    int                `json:"rating"`
	Body      string             `json:"body"`
	Status    enums.ReviewStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// SubmitInput is the customer payload for a new review.
type SubmitInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Body      string    `json:"body" validate:"required"`
}

// ProductReviewsDTO is the public review payload for a product page.
type ProductReviewsDTO struct {
	Reviews       []ReviewDTO `json:"reviews"`
	Count         int64       `json:"count"`
	AverageRating float64     `json:"average_rating"`
}

// Service exposes customer review submission and admin moderation. New
// reviews land as pending; only approved reviews are served publicly.
type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, input SubmitInput) (*ReviewDTO, error)
	ListForProduct(ctx context.Context, productID uuid.UUID) (*ProductReviewsDTO, error)

	ListByStatus(ctx context.Context, status enums.ReviewStatus) ([]ReviewDTO, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     reviewRepository
	products productFinder
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Repository reviewRepository
	Products   productFinder
}

// NewService builds the reviews service after validating its dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repository == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "review repository is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product finder is required")
	}
	return &service{repo: params.Repository, products: params.Products}, nil
}

func (s *service) Submit(ctx context.Context, userID uuid.UUID, input SubmitInput) (*ReviewDTO, error) {
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "review body is required")
	}
	if len(body) > maxBodyLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "review body is too long")
	}

	product, err := s.products.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	reviewed, err := s.repo.HasUserReviewed(ctx, userID, input.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check existing review")
	}
	if reviewed {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "you have already reviewed this product")
	}

	created, err := s.repo.Create(ctx, &models.Review{
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Body:      body,
		Status:    enums.ReviewStatusPending,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create review")
	}
	return reviewFromModel(created), nil
}

func (s *service) ListForProduct(ctx context.Context, productID uuid.UUID) (*ProductReviewsDTO, error) {
	rows, err := s.repo.ListApprovedByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	count, avg, err := s.repo.ApprovedSummary(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "summarize reviews")
	}

	out := &ProductReviewsDTO{Reviews: []ReviewDTO{}, Count: count, AverageRating: avg}
	for i := range rows {
		out.Reviews = append(out.Reviews, *reviewFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) ListByStatus(ctx context.Context, status enums.ReviewStatus) ([]ReviewDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid review status")
	}
	rows, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	out := make([]ReviewDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *reviewFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) error {
	return s.moderate(ctx, id, enums.ReviewStatusApproved)
}

func (s *service) Reject(ctx context.Context, id uuid.UUID) error {
	return s.moderate(ctx, id, enums.ReviewStatusRejected)
}

func (s *service) moderate(ctx context.Context, id uuid.UUID, status enums.ReviewStatus) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update review status")
	}
	return nil
}

func reviewFromModel(r *models.Review) *ReviewDTO {
	return &ReviewDTO{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Body:      r.Body,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
