package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

type cartKey struct {
	user    uuid.UUID
	product uuid.UUID
}

type fakeCartRepo struct {
	items map[cartKey]*models.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[cartKey]*models.CartItem{}}
}

func (f *fakeCartRepo) SetQuantity(_ context.Context, userID, productID uuid.UUID, quantity int) error {
	key := cartKey{user: userID, product: productID}
	if existing, ok := f.items[key]; ok {
		existing.Quantity = quantity
		return nil
	}
	f.items[key] = &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeCartRepo) IncrementQuantity(_ context.Context, userID, productID uuid.UUID, delta int) error {
	key := cartKey{user: userID, product: productID}
	if existing, ok := f.items[key]; ok {
		existing.Quantity += delta
		return nil
	}
	f.items[key] = &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  delta,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, userID, productID uuid.UUID) error {
	delete(f.items, cartKey{user: userID, product: productID})
	return nil
}

func (f *fakeCartRepo) ListItems(_ context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var rows []models.CartItem
	for key, item := range f.items {
		if key.user == userID {
			rows = append(rows, *item)
		}
	}
	return rows, nil
}

func (f *fakeCartRepo) Clear(_ context.Context, userID uuid.UUID) error {
	for key := range f.items {
		if key.user == userID {
			delete(f.items, key)
		}
	}
	return nil
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

func (f *fakeProductFinder) FindProductsByIDs(_ context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var rows []models.Product
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			rows = append(rows, *product)
		}
	}
	return rows, nil
}

type fakeGuestStore struct {
	carts map[string]guestLines
}

func newFakeGuestStore() *fakeGuestStore {
	return &fakeGuestStore{carts: map[string]guestLines{}}
}

func (f *fakeGuestStore) NewToken() string { return uuid.NewString() }

func (f *fakeGuestStore) Load(_ context.Context, token string) (guestLines, error) {
	lines, ok := f.carts[token]
	if !ok {
		return guestLines{}, nil
	}
	copied := guestLines{}
	for id, qty := range lines {
		copied[id] = qty
	}
	return copied, nil
}

func (f *fakeGuestStore) Save(_ context.Context, token string, lines guestLines) error {
	if len(lines) == 0 {
		delete(f.carts, token)
		return nil
	}
	f.carts[token] = lines
	return nil
}

func (f *fakeGuestStore) Delete(_ context.Context, token string) error {
	delete(f.carts, token)
	return nil
}

func intPtr(v int) *int { return &v }

func seedProduct(finder *fakeProductFinder, basePriceCents int, active bool) uuid.UUID {
	id := uuid.New()
	finder.products[id] = &models.Product{
		ID:             id,
		Title:          "Steel Almirah",
		Slug:           "steel-almirah-" + id.String()[:8],
		CategoryID:     uuid.New(),
		BasePriceCents: basePriceCents,
		IsActive:       active,
	}
	return id
}

func newCartService(t *testing.T, repo *fakeCartRepo, finder *fakeProductFinder, guests *fakeGuestStore) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repository: repo, Products: finder, GuestStore: guests})
	require.NoError(t, err)
	return svc
}

func TestSetItemAddsLineAndTotals(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, 150000, true)
	finder.products[productID].SalePriceCents = intPtr(120000)
	svc := newCartService(t, newFakeCartRepo(), finder, newFakeGuestStore())

	userID := uuid.New()
	cart, err := svc.SetItem(context.Background(), userID, SetItemInput{ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.ItemCount)
	// sale price wins over base price
	assert.Equal(t, 240000, cart.SubtotalCents)
	assert.Equal(t, 240000, cart.Items[0].LineTotalCents)
	require.NotNil(t, cart.Items[0].Product)
	assert.Equal(t, 120000, cart.Items[0].Product.DisplayPriceCents)
}

func TestSetItemIsAbsoluteNotAdditive(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, 100000, true)
	svc := newCartService(t, newFakeCartRepo(), finder, newFakeGuestStore())

	userID := uuid.New()
	_, err := svc.SetItem(context.Background(), userID, SetItemInput{ProductID: productID, Quantity: 3})
	require.NoError(t, err)
	cart, err := svc.SetItem(context.Background(), userID, SetItemInput{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, cart.ItemCount)
}

func TestSetItemZeroQuantityRemovesLine(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, 100000, true)
	svc := newCartService(t, newFakeCartRepo(), finder, newFakeGuestStore())

	userID := uuid.New()
	_, err := svc.SetItem(context.Background(), userID, SetItemInput{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.SetItem(context.Background(), userID, SetItemInput{ProductID: productID, Quantity: 0})
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
}

func TestSetItemValidation(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	activeID := seedProduct(finder, 100000, true)
	inactiveID := seedProduct(finder, 100000, false)
	svc := newCartService(t, newFakeCartRepo(), finder, newFakeGuestStore())

	userID := uuid.New()

	cases := []struct {
		name  string
		input SetItemInput
		code  pkgerrors.Code
	}{
		{name: "missing product id", input: SetItemInput{Quantity: 1}, code: pkgerrors.CodeValidation},
		{name: "negative quantity", input: SetItemInput{ProductID: activeID, Quantity: -1}, code: pkgerrors.CodeValidation},
		{name: "over per-line limit", input: SetItemInput{ProductID: activeID, Quantity: 100}, code: pkgerrors.CodeValidation},
		{name: "unknown product", input: SetItemInput{ProductID: uuid.New(), Quantity: 1}, code: pkgerrors.CodeNotFound},
		{name: "inactive product", input: SetItemInput{ProductID: inactiveID, Quantity: 1}, code: pkgerrors.CodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SetItem(context.Background(), userID, tc.input)
			require.Error(t, err)
			require.NotNil(t, pkgerrors.As(err))
			assert.Equal(t, tc.code, pkgerrors.As(err).Code())
		})
	}
}

func TestGetCartOmitsDeactivatedProducts(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, 100000, true)
	svc := newCartService(t, newFakeCartRepo(), finder, newFakeGuestStore())

	userID := uuid.New()
	_, err := svc.SetItem(context.Background(), userID, SetItemInput{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	finder.products[productID].IsActive = false

	cart, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.SubtotalCents)
}

func TestGuestCartMintsTokenAndPersists(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, 50000, true)
	guests := newFakeGuestStore()
	svc := newCartService(t, newFakeCartRepo(), finder, guests)

	guest, err := svc.SetGuestItem(context.Background(), "", SetItemInput{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	require.NotEmpty(t, guest.Token)
	assert.Equal(t, 100000, guest.Cart.SubtotalCents)

	reloaded, err := svc.GetGuestCart(context.Background(), guest.Token)
	require.NoError(t, err)
	assert.Equal(t, guest.Token, reloaded.Token)
	require.Len(t, reloaded.Cart.Items, 1)
	assert.Equal(t, 2, reloaded.Cart.Items[0].Quantity)
}

func TestMergeGuestCartSumsQuantitiesAndDeletesToken(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	productID := seedProduct(finder, 100000, true)
	repo := newFakeCartRepo()
	guests := newFakeGuestStore()
	svc := newCartService(t, repo, finder, guests)

	userID := uuid.New()
	_, err := svc.SetItem(context.Background(), userID, SetItemInput{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	guest, err := svc.SetGuestItem(context.Background(), "", SetItemInput{ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.MergeGuestCart(context.Background(), guest.Token, userID))

	cart, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// the token is single-use
	_, ok := guests.carts[guest.Token]
	assert.False(t, ok)
}

func TestMergeGuestCartDropsDeactivatedProducts(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	activeID := seedProduct(finder, 100000, true)
	goneID := seedProduct(finder, 100000, true)
	repo := newFakeCartRepo()
	guests := newFakeGuestStore()
	svc := newCartService(t, repo, finder, guests)

	guest, err := svc.SetGuestItem(context.Background(), "", SetItemInput{ProductID: activeID, Quantity: 1})
	require.NoError(t, err)
	guest, err = svc.SetGuestItem(context.Background(), guest.Token, SetItemInput{ProductID: goneID, Quantity: 1})
	require.NoError(t, err)

	finder.products[goneID].IsActive = false

	userID := uuid.New()
	require.NoError(t, svc.MergeGuestCart(context.Background(), guest.Token, userID))

	cart, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, activeID, cart.Items[0].ProductID)
}

func TestMergeGuestCartEmptyTokenIsNoOp(t *testing.T) {
	finder := &fakeProductFinder{products: map[uuid.UUID]*models.Product{}}
	svc := newCartService(t, newFakeCartRepo(), finder, newFakeGuestStore())

	assert.NoError(t, svc.MergeGuestCart(context.Background(), "  ", uuid.New()))
}
