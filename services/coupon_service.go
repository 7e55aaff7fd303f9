package services

import (
	"context"
	"fmt"

	"mkr-foods/models"
)

// CouponLookup is the coupon side of the document database. No match is
// (nil, nil); an error means the lookup itself failed and is retryable.
type CouponLookup interface {
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
}

// CouponService drives coupon application: lookup by code, validation
// against the live subtotal, and the supersede discipline that keeps at
// most one lookup outcome in play per user.
type CouponService struct {
	carts   *CartService
	coupons CouponLookup
}

func NewCouponService(carts *CartService, coupons CouponLookup) *CouponService {
	return &CouponService{carts: carts, coupons: coupons}
}

// Apply looks the code up and applies the coupon if the cart qualifies.
// The token issued before the lookup guards against interleaving: if a
// newer Apply started while this lookup was in flight, this result is
// discarded and ErrCouponRequestSuperseded comes back.
func (s *CouponService) Apply(ctx context.Context, userID, code string) (*models.CartSummary, error) {
	token := s.carts.BeginCouponRequest(ctx, userID)

	coupon, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("coupon lookup failed: %w", err)
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	return s.carts.CompleteCouponRequest(ctx, userID, token, coupon)
}

// Remove drops the user's applied coupon.
func (s *CouponService) Remove(ctx context.Context, userID string) *models.CartSummary {
	return s.carts.RemoveCoupon(ctx, userID)
}
