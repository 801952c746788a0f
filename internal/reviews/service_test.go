package reviews

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uuid.UUID]*models.Review{}}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *models.Review) (*models.Review, error) {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now()
	copied := *review
	f.reviews[review.ID] = &copied
	return review, nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enums.ReviewStatus) error {
	review, ok := f.reviews[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	review.Status = status
	return nil
}

func (f *fakeReviewRepo) ListApprovedByProduct(_ context.Context, productID uuid.UUID) ([]models.Review, error) {
	var rows []models.Review
	for _, review := range f.reviews {
		if review.ProductID == productID && review.Status == enums.ReviewStatusApproved {
			rows = append(rows, *review)
		}
	}
	return rows, nil
}

func (f *fakeReviewRepo) ListByStatus(_ context.Context, status enums.ReviewStatus) ([]models.Review, error) {
	var rows []models.Review
	for _, review := range f.reviews {
		if review.Status == status {
			rows = append(rows, *review)
		}
	}
	return rows, nil
}

func (f *fakeReviewRepo) HasUserReviewed(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	for _, review := range f.reviews {
		if review.UserID == userID && review.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) ApprovedSummary(_ context.Context, productID uuid.UUID) (int64, float64, error) {
	var count int64
	var total int
	for _, review := range f.reviews {
		if review.ProductID == productID && review.Status == enums.ReviewStatusApproved {
			count++
			total += review.Rating
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(total) / float64(count), nil
}

type fakeProductFinder struct {
	products map[uuid.UUID]*models.Product
}

func (f *fakeProductFinder) FindProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *product
	return &copied, nil
}

func seedProduct(finder *fakeProductFinder, active bool) uuid.UUID {
	id := uuid.New()
	finder.products[id] = &models.Product{
		ID:             id,
		Title:          "Steel Bookshelf",
		Slug:           "steel-bookshelf-" + id.String()[:8],
		CategoryID:     uuid.New(),
		BasePriceCents: 45000,
		IsActive:       active,
	}
	return id
}

func newReviewService(t *testing.T, repo *fakeReviewRepo, finder *fakeProductFinder) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repository: repo, Products: finder})
	require.NoError(t, err)
	return svc
}

func TestSubmitCreatesPendingReview(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, true)
	svc := newReviewService(t, newFakeReviewRepo(), finder)

	review, err := svc.Submit(context.Background(), uuid.New(), SubmitInput{
		ProductID: productID,
		Rating:    4,
		Body:      "Solid build, arrived on time.",
	})
	require.NoError(t, err)
	assert.Equal(t, enums.ReviewStatusPending, review.Status)
	assert.Equal(t, 4, review.Rating)
}

func TestSubmitValidation(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, true)
	inactiveID := seedProduct(finder, false)
	svc := newReviewService(t, newFakeReviewRepo(), finder)

	userID := uuid.New()

	cases := []struct {
		name  string
		input SubmitInput
		code  pkgerrors.Code
	}{
		{name: "missing product", input: SubmitInput{Rating: 3, Body: "ok"}, code: pkgerrors.CodeValidation},
		{name: "rating too low", input: SubmitInput{ProductID: productID, Rating: 0, Body: "ok"}, code: pkgerrors.CodeValidation},
		{name: "rating too high", input: SubmitInput{ProductID: productID, Rating: 6, Body: "ok"}, code: pkgerrors.CodeValidation},
		{name: "empty body", input: SubmitInput{ProductID: productID, Rating: 3, Body: "   "}, code: pkgerrors.CodeValidation},
		{name: "body too long", input: SubmitInput{ProductID: productID, Rating: 3, Body: strings.Repeat("a", 4001)}, code: pkgerrors.CodeValidation},
		{name: "unknown product", input: SubmitInput{ProductID: uuid.New(), Rating: 3, Body: "ok"}, code: pkgerrors.CodeNotFound},
		{name: "inactive product", input: SubmitInput{ProductID: inactiveID, Rating: 3, Body: "ok"}, code: pkgerrors.CodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), userID, tc.input)
			require.Error(t, err)
			require.NotNil(t, pkgerrors.As(err))
			assert.Equal(t, tc.code, pkgerrors.As(err).Code())
		})
	}
}

func TestSubmitRejectsSecondReviewForSameProduct(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, true)
	svc := newReviewService(t, newFakeReviewRepo(), finder)

	userID := uuid.New()
	_, err := svc.Submit(context.Background(), userID, SubmitInput{ProductID: productID, Rating: 5, Body: "Great"})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), userID, SubmitInput{ProductID: productID, Rating: 1, Body: "Changed my mind"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestPublicListServesApprovedOnly(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, true)
	repo := newFakeReviewRepo()
	svc := newReviewService(t, repo, finder)

	pending, err := svc.Submit(context.Background(), uuid.New(), SubmitInput{ProductID: productID, Rating: 5, Body: "Great"})
	require.NoError(t, err)
	rejected, err := svc.Submit(context.Background(), uuid.New(), SubmitInput{ProductID: productID, Rating: 1, Body: "Bad"})
	require.NoError(t, err)
	approved, err := svc.Submit(context.Background(), uuid.New(), SubmitInput{ProductID: productID, Rating: 3, Body: "Fine"})
	require.NoError(t, err)

	require.NoError(t, svc.Reject(context.Background(), rejected.ID))
	require.NoError(t, svc.Approve(context.Background(), approved.ID))

	list, err := svc.ListForProduct(context.Background(), productID)
	require.NoError(t, err)
	require.Len(t, list.Reviews, 1)
	assert.Equal(t, approved.ID, list.Reviews[0].ID)
	assert.Equal(t, int64(1), list.Count)
	assert.InDelta(t, 3.0, list.AverageRating, 0.001)

	// the pending one stays in the moderation queue
	queue, err := svc.ListByStatus(context.Background(), enums.ReviewStatusPending)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, pending.ID, queue[0].ID)
}

func TestModerateUnknownReview(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	svc := newReviewService(t, newFakeReviewRepo(), finder)

	err := svc.Approve(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListByStatusRejectsBogusStatus(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	svc := newReviewService(t, newFakeReviewRepo(), finder)

	_, err := svc.ListByStatus(context.Background(), "archived")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
