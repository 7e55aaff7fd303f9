package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mkr-foods/models"
)

// DeliveryTable resolves the per-region charge table. A nil table is
// valid: every region then falls back to the default charge.
type DeliveryTable interface {
	GetTable(ctx context.Context) (map[string]decimal.Decimal, error)
}

// SessionStore holds the checkout handoff for the payment page.
type SessionStore interface {
	SaveAddress(ctx context.Context, userID string, addr *models.Address) error
	LoadAddress(ctx context.Context, userID string) (*models.Address, error)
	SavePricing(ctx context.Context, userID string, snap *models.PricingSnapshot) error
	LoadPricing(ctx context.Context, userID string) (*models.PricingSnapshot, error)
}

// CheckoutService freezes the cart's pricing for payment: subtotal,
// coupon discount, region delivery charge and the clamped grand total,
// stashed in the session store alongside the chosen address.
type CheckoutService struct {
	carts    *CartService
	delivery DeliveryTable
	sessions SessionStore
}

func NewCheckoutService(carts *CartService, delivery DeliveryTable, sessions SessionStore) *CheckoutService {
	return &CheckoutService{carts: carts, delivery: delivery, sessions: sessions}
}

func (s *CheckoutService) SaveAddress(ctx context.Context, userID string, addr *models.Address) error {
	return s.sessions.SaveAddress(ctx, userID, addr)
}

// BuildSummary computes the pricing snapshot for the stored address's
// region and stashes it for the payment page. Requires an address and a
// non-empty cart.
func (s *CheckoutService) BuildSummary(ctx context.Context, userID string) (*models.CheckoutView, error) {
	addr, err := s.sessions.LoadAddress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, ErrNoAddress
	}

	subtotal, itemCount, coupon := s.carts.PricingInputs(ctx, userID)
	if itemCount == 0 {
		return nil, ErrEmptyCart
	}

	discount := decimal.Zero
	if coupon != nil {
		discount = coupon.Discount
	}

	table, err := s.delivery.GetTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("delivery charge lookup failed: %w", err)
	}

	charge := ResolveDeliveryCharge(subtotal, addr.State, table)
	final := GrandTotal(subtotal, charge, discount)

	snap := &models.PricingSnapshot{
		ID:             uuid.NewString(),
		CartTotal:      subtotal.StringFixed(2),
		CouponDiscount: discount.StringFixed(2),
		DeliveryCharge: charge.StringFixed(2),
		FinalAmount:    final.StringFixed(2),
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.sessions.SavePricing(ctx, userID, snap); err != nil {
		return nil, err
	}

	return &models.CheckoutView{Address: addr, Pricing: snap}, nil
}

// Handoff reads back what the payment page needs. Both pieces must be
// present; an expired session surfaces as the corresponding error.
func (s *CheckoutService) Handoff(ctx context.Context, userID string) (*models.CheckoutView, error) {
	addr, err := s.sessions.LoadAddress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, ErrNoAddress
	}

	snap, err := s.sessions.LoadPricing(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNoPricing
	}

	return &models.CheckoutView{Address: addr, Pricing: snap}, nil
}
