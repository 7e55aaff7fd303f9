package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkr-foods/models"
)

// fakeStore is an in-memory CartPersistence recording write-through
// activity.
type fakeStore struct {
	carts     map[string]*models.Cart
	coupons   map[string]*models.AppliedCoupon
	cartSaves int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		carts:   make(map[string]*models.Cart),
		coupons: make(map[string]*models.AppliedCoupon),
	}
}

func (f *fakeStore) SaveCart(_ context.Context, userID string, cart *models.Cart) {
	f.cartSaves++
	saved := models.NewCart()
	saved.Lines = cart.CloneLines()
	f.carts[userID] = saved
}

func (f *fakeStore) LoadCart(_ context.Context, userID string) *models.Cart {
	if cart, ok := f.carts[userID]; ok {
		loaded := models.NewCart()
		loaded.Lines = cart.CloneLines()
		return loaded
	}
	return models.NewCart()
}

func (f *fakeStore) SaveCoupon(_ context.Context, userID string, coupon *models.AppliedCoupon) {
	if coupon == nil {
		delete(f.coupons, userID)
		return
	}
	c := *coupon
	f.coupons[userID] = &c
}

func (f *fakeStore) LoadCoupon(_ context.Context, userID string) *models.AppliedCoupon {
	if c, ok := f.coupons[userID]; ok {
		copied := *c
		return &copied
	}
	return nil
}

func (f *fakeStore) DeleteCoupon(_ context.Context, userID string) {
	delete(f.coupons, userID)
}

func murukku() *models.Product {
	return &models.Product{
		ID:        "p1",
		Name:      "Murukku",
		Image:     "https://cdn.example.com/murukku.jpg",
		Price250:  120,
		Price500:  230,
		Price1000: 450,
		IsActive:  true,
	}
}

func mixture() *models.Product {
	return &models.Product{
		ID:       "p2",
		Name:     "Mixture",
		Price250: 110,
		Price500: 210,
		IsActive: true,
	}
}

func TestSubtotalTracksMutationSequence(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeStore())

	_, err := svc.AddItem(ctx, "u1", murukku(), "250g", 2) // 240
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", murukku(), "500g", 1) // +230
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", mixture(), "250g", 3) // +330
	require.NoError(t, err)

	summary := svc.Summary(ctx, "u1")
	assert.Equal(t, "800.00", summary.Subtotal)
	assert.Equal(t, 6, summary.ItemCount)

	// Last-write-wins: the quantity replaces, it does not accumulate.
	_, err = svc.AddItem(ctx, "u1", murukku(), "250g", 1)
	require.NoError(t, err)
	summary = svc.Summary(ctx, "u1")
	assert.Equal(t, "680.00", summary.Subtotal)

	svc.RemoveItem(ctx, "u1", "p2", "250g")
	summary = svc.Summary(ctx, "u1")
	assert.Equal(t, "350.00", summary.Subtotal)

	// Derived subtotal always equals the sum over the present variants.
	expected := decimal.Zero
	for _, line := range summary.Items {
		for _, v := range line.Variants {
			expected = expected.Add(v.Price.Mul(decimal.NewFromInt(int64(v.Quantity))))
		}
	}
	assert.Equal(t, expected.StringFixed(2), summary.Subtotal)
}

func TestRemovingLastVariantRemovesLine(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeStore())

	_, err := svc.AddItem(ctx, "u1", murukku(), "250g", 1)
	require.NoError(t, err)

	summary := svc.RemoveItem(ctx, "u1", "p1", "250g")
	assert.Empty(t, summary.Items)
	for _, line := range summary.Items {
		assert.NotEqual(t, "p1", line.ProductID)
	}
}

func TestZeroOrNegativeQuantityRemovesVariant(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeStore())

	_, err := svc.AddItem(ctx, "u1", murukku(), "250g", 2)
	require.NoError(t, err)

	summary, err := svc.SetQuantity(ctx, "u1", "p1", "250g", 0)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	// Negative quantities from upstream are clamped, never stored.
	_, err = svc.AddItem(ctx, "u1", murukku(), "250g", 2)
	require.NoError(t, err)
	summary, err = svc.AddItem(ctx, "u1", murukku(), "250g", -3)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestSetQuantityPreservesPriceAndIgnoresUnknown(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeStore())

	_, err := svc.AddItem(ctx, "u1", murukku(), "500g", 1)
	require.NoError(t, err)

	summary, err := svc.SetQuantity(ctx, "u1", "p1", "500g", 3)
	require.NoError(t, err)
	assert.Equal(t, "690.00", summary.Subtotal)

	// Unknown product or weight is a no-op, not an error.
	summary, err = svc.SetQuantity(ctx, "u1", "nope", "500g", 5)
	require.NoError(t, err)
	assert.Equal(t, "690.00", summary.Subtotal)
}

func TestStockCapAcrossVariants(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeStore())

	capped := murukku()
	capped.StockGrams = 1000

	_, err := svc.AddItem(ctx, "u1", capped, "250g", 3) // 750g
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "u1", capped, "500g", 1) // would be 1250g
	assert.ErrorIs(t, err, ErrExceedsStock)

	_, err = svc.AddItem(ctx, "u1", capped, "250g", 4) // replaces: exactly 1000g
	require.NoError(t, err)
}

func TestUnknownWeightRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeStore())

	_, err := svc.AddItem(ctx, "u1", mixture(), "1kg", 1)
	assert.ErrorIs(t, err, ErrVariantNotSold)
}

func TestEveryMutationWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewCartService(store)

	_, err := svc.AddItem(ctx, "u1", murukku(), "250g", 2)
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, "u1", "p1", "250g", 1)
	require.NoError(t, err)
	svc.RemoveItem(ctx, "u1", "p1", "250g")
	svc.Clear(ctx, "u1")

	assert.Equal(t, 4, store.cartSaves)
}

func TestCouponAutoInvalidatedWhenSubtotalDrops(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewCartService(store)

	_, err := svc.AddItem(ctx, "u1", murukku(), "250g", 3) // 360
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", murukku(), "500g", 1) // 590
	require.NoError(t, err)

	token := svc.BeginCouponRequest(ctx, "u1")
	summary, err := svc.CompleteCouponRequest(ctx, "u1", token, &models.Coupon{
		Code:          "SAVE50",
		DiscountPrice: d("50"),
		MinimumOrder:  d("500"),
	})
	require.NoError(t, err)
	assert.Equal(t, "50.00", summary.CouponDiscount)
	assert.NotNil(t, store.coupons["u1"])

	// Dropping below the minimum removes the coupon on that mutation.
	summary, err = svc.SetQuantity(ctx, "u1", "p1", "250g", 1) // 120 + 230 = 350
	require.NoError(t, err)
	assert.True(t, summary.CouponRemoved)
	assert.Nil(t, summary.Coupon)
	assert.Equal(t, "0.00", summary.CouponDiscount)
	assert.NotEmpty(t, summary.Notice)
	assert.Nil(t, store.coupons["u1"], "coupon must be removed from durable storage too")
}

func TestStaleCouponRequestDiscarded(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeStore())

	_, err := svc.AddItem(ctx, "u1", murukku(), "1kg", 2) // 900
	require.NoError(t, err)

	stale := svc.BeginCouponRequest(ctx, "u1")
	_ = svc.BeginCouponRequest(ctx, "u1") // newer request supersedes

	_, err = svc.CompleteCouponRequest(ctx, "u1", stale, &models.Coupon{
		Code:          "OLD",
		DiscountPrice: d("10"),
		MinimumOrder:  d("0"),
	})
	assert.ErrorIs(t, err, ErrCouponRequestSuperseded)

	summary := svc.Summary(ctx, "u1")
	assert.Nil(t, summary.Coupon)
}

func TestHydrationFromStorage(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	seed := models.NewCart()
	seed.UpsertVariant("p1", "Murukku", "", 0, "250g", d("120"), 2)
	store.carts["u1"] = seed
	store.coupons["u1"] = &models.AppliedCoupon{Code: "SAVE20", Discount: d("20"), MinimumOrder: d("200")}

	svc := NewCartService(store)
	summary := svc.Summary(ctx, "u1")

	assert.Equal(t, "240.00", summary.Subtotal)
	if assert.NotNil(t, summary.Coupon) {
		assert.Equal(t, "SAVE20", summary.Coupon.Code)
	}
}

func TestHydrationDropsCouponBelowMinimum(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	seed := models.NewCart()
	seed.UpsertVariant("p1", "Murukku", "", 0, "250g", d("120"), 1)
	store.carts["u1"] = seed
	store.coupons["u1"] = &models.AppliedCoupon{Code: "SAVE50", Discount: d("50"), MinimumOrder: d("500")}

	svc := NewCartService(store)
	summary := svc.Summary(ctx, "u1")

	assert.Nil(t, summary.Coupon)
	assert.Nil(t, store.coupons["u1"])
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeStore())

	_, err := svc.AddItem(ctx, "u1", murukku(), "250g", 1)
	require.NoError(t, err)

	summary := svc.Summary(ctx, "u2")
	assert.Empty(t, summary.Items)
}
