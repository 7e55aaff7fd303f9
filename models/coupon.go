package models

import "github.com/shopspring/decimal"

// Coupon is an externally issued flat discount, looked up by code in the
// "coupons" collection. Codes are compared case-insensitively and stored
// uppercase.
type Coupon struct {
	Code          string
	DiscountPrice decimal.Decimal
	MinimumOrder  decimal.Decimal
}

// AppliedCoupon is the coupon the user has activated. It is never mutated
// in place: replacing one means remove-then-add. It is auto-removed the
// moment the subtotal falls below MinimumOrder.
type AppliedCoupon struct {
	Code         string          `json:"code"`
	Discount     decimal.Decimal `json:"discount"`
	MinimumOrder decimal.Decimal `json:"minimumOrder"`
}
