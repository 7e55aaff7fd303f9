package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"mkr-foods/models"
)

// CartPersistence is the durable side of the cart. Saves are best-effort
// and never fail the mutation that triggered them, so the write methods
// carry no error.
type CartPersistence interface {
	SaveCart(ctx context.Context, userID string, cart *models.Cart)
	LoadCart(ctx context.Context, userID string) *models.Cart
	SaveCoupon(ctx context.Context, userID string, coupon *models.AppliedCoupon)
	LoadCoupon(ctx context.Context, userID string) *models.AppliedCoupon
	DeleteCoupon(ctx context.Context, userID string)
}

type userCart struct {
	cart   *models.Cart
	coupon *models.AppliedCoupon

	// couponSeq tags coupon lookup requests so a stale resolution can be
	// recognized and discarded after a newer request began.
	couponSeq uint64
}

// CartService holds the canonical in-memory cart per user, hydrated once
// from storage and written through on every mutation. All mutations run
// under one lock, so every operation ends in a consistent state.
type CartService struct {
	mu    sync.Mutex
	store CartPersistence
	carts map[string]*userCart
}

func NewCartService(store CartPersistence) *CartService {
	return &CartService{
		store: store,
		carts: make(map[string]*userCart),
	}
}

// entry returns the user's cart, hydrating it from storage on first
// access. A stored coupon whose minimum is no longer met is dropped
// during hydration. Caller must hold s.mu.
func (s *CartService) entry(ctx context.Context, userID string) *userCart {
	if u, ok := s.carts[userID]; ok {
		return u
	}

	u := &userCart{
		cart:   s.store.LoadCart(ctx, userID),
		coupon: s.store.LoadCoupon(ctx, userID),
	}
	if u.coupon != nil && u.cart.Subtotal().LessThan(u.coupon.MinimumOrder) {
		u.coupon = nil
		s.store.DeleteCoupon(ctx, userID)
	}
	s.carts[userID] = u
	return u
}

// AddItem upserts a variant of the product, resolving the unit price from
// the catalog record. Quantity is clamped at zero from below; zero means
// remove. Last-write-wins: the quantity replaces, never accumulates.
func (s *CartService) AddItem(ctx context.Context, userID string, product *models.Product, weight string, quantity int) (*models.CartSummary, error) {
	price, ok := product.VariantPrice(weight)
	if !ok {
		return nil, ErrVariantNotSold
	}
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.entry(ctx, userID)

	if quantity > 0 && product.StockGrams > 0 {
		if lineGramsExcluding(u.cart, product.ID, weight)+models.WeightGrams(weight)*quantity > product.StockGrams {
			return nil, ErrExceedsStock
		}
	}

	u.cart.UpsertVariant(product.ID, product.Name, product.Image, product.StockGrams, weight, price, quantity)
	return s.afterMutation(ctx, userID, u), nil
}

// SetQuantity replaces an existing variant's quantity, preserving its
// price. Quantity ≤ 0 removes the variant. Unknown product/weight pairs
// are a no-op.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID, weight string, quantity int) (*models.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.entry(ctx, userID)

	if quantity > 0 {
		if line := u.cart.Line(productID); line != nil && line.MaxQuantity > 0 {
			if lineGramsExcluding(u.cart, productID, weight)+models.WeightGrams(weight)*quantity > line.MaxQuantity {
				return nil, ErrExceedsStock
			}
		}
	}

	u.cart.SetVariantQuantity(productID, weight, quantity)
	return s.afterMutation(ctx, userID, u), nil
}

// RemoveItem deletes a variant; the line goes with its last variant.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID, weight string) *models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.entry(ctx, userID)
	u.cart.RemoveVariant(productID, weight)
	return s.afterMutation(ctx, userID, u)
}

func (s *CartService) Clear(ctx context.Context, userID string) *models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.entry(ctx, userID)
	u.cart.Clear()
	return s.afterMutation(ctx, userID, u)
}

// Summary reads the current cart without mutating anything.
func (s *CartService) Summary(ctx context.Context, userID string) *models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.entry(ctx, userID)
	return s.summaryLocked(u, false, "")
}

// PricingInputs exposes the figures checkout needs.
func (s *CartService) PricingInputs(ctx context.Context, userID string) (subtotal decimal.Decimal, itemCount int, coupon *models.AppliedCoupon) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.entry(ctx, userID)
	coupon = u.coupon
	return u.cart.Subtotal(), u.cart.ItemCount(), coupon
}

// BeginCouponRequest issues a token for a coupon lookup. A later call for
// the same user supersedes it; the lookup must present the token back to
// CompleteCouponRequest, which rejects stale ones.
func (s *CartService) BeginCouponRequest(ctx context.Context, userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.entry(ctx, userID)
	u.couponSeq++
	return u.couponSeq
}

// CompleteCouponRequest validates a looked-up coupon against the current
// subtotal and applies it. Applying over an existing coupon is
// remove-then-add: the old one is discarded wholesale.
func (s *CartService) CompleteCouponRequest(ctx context.Context, userID string, token uint64, coupon *models.Coupon) (*models.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.entry(ctx, userID)
	if u.couponSeq != token {
		return nil, ErrCouponRequestSuperseded
	}

	if !ValidateCoupon(coupon, u.cart.Subtotal()) {
		return nil, ErrCouponMinimumNotMet
	}

	u.coupon = &models.AppliedCoupon{
		Code:         coupon.Code,
		Discount:     coupon.DiscountPrice,
		MinimumOrder: coupon.MinimumOrder,
	}
	s.store.SaveCoupon(ctx, userID, u.coupon)
	return s.summaryLocked(u, false, ""), nil
}

// RemoveCoupon drops the applied coupon from memory and storage.
func (s *CartService) RemoveCoupon(ctx context.Context, userID string) *models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.entry(ctx, userID)
	u.coupon = nil
	s.store.DeleteCoupon(ctx, userID)
	return s.summaryLocked(u, false, "")
}

// afterMutation runs the post-mutation pipeline: coupon auto-invalidation
// against the recomputed subtotal, then the write-through save, then the
// response summary. Caller must hold s.mu.
func (s *CartService) afterMutation(ctx context.Context, userID string, u *userCart) *models.CartSummary {
	couponRemoved := false
	notice := ""

	if u.coupon != nil && u.cart.Subtotal().LessThan(u.coupon.MinimumOrder) {
		notice = fmt.Sprintf("Coupon %s removed: order total fell below its ₹%s minimum",
			u.coupon.Code, u.coupon.MinimumOrder.StringFixed(2))
		u.coupon = nil
		couponRemoved = true
		s.store.DeleteCoupon(ctx, userID)
	}

	s.store.SaveCart(ctx, userID, u.cart)
	return s.summaryLocked(u, couponRemoved, notice)
}

func (s *CartService) summaryLocked(u *userCart, couponRemoved bool, notice string) *models.CartSummary {
	discount := decimal.Zero
	if u.coupon != nil {
		discount = u.coupon.Discount
	}

	return &models.CartSummary{
		Items:          u.cart.CloneLines(),
		ItemCount:      u.cart.ItemCount(),
		Subtotal:       u.cart.Subtotal().StringFixed(2),
		Coupon:         u.coupon,
		CouponDiscount: discount.StringFixed(2),
		CouponRemoved:  couponRemoved,
		Notice:         notice,
	}
}

// lineGramsExcluding sums the selected weight of a product's variants,
// leaving out the one about to be replaced.
func lineGramsExcluding(cart *models.Cart, productID, weight string) int {
	line := cart.Line(productID)
	if line == nil {
		return 0
	}
	grams := 0
	for _, v := range line.Variants {
		if v.Weight == weight {
			continue
		}
		grams += models.WeightGrams(v.Weight) * v.Quantity
	}
	return grams
}
