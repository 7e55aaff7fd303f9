package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"mkr-foods/models"
)

// Delivery is free above this subtotal; below it the region table
// applies, with a flat default for regions the table does not list.
var (
	FreeDeliveryThreshold = decimal.NewFromInt(1000)
	DefaultDeliveryCharge = decimal.NewFromInt(100)
)

// Subtotal sums unit price × quantity over every variant in the cart.
func Subtotal(cart *models.Cart) decimal.Decimal {
	return cart.Subtotal()
}

// ResolveDeliveryCharge returns zero above the free-delivery threshold,
// otherwise the table charge for the whitespace-stripped region, falling
// back to the default charge for unknown regions.
func ResolveDeliveryCharge(subtotal decimal.Decimal, region string, table map[string]decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeDeliveryThreshold) {
		return decimal.Zero
	}

	key := StripWhitespace(region)
	if charge, ok := table[key]; ok {
		return charge
	}
	return DefaultDeliveryCharge
}

// ValidateCoupon reports whether the subtotal still meets the coupon's
// minimum order amount.
func ValidateCoupon(coupon *models.Coupon, subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(coupon.MinimumOrder)
}

// GrandTotal is subtotal + delivery − discount, clamped at zero: a
// discount exceeding the rest of the order never produces a negative
// total.
func GrandTotal(subtotal, deliveryCharge, couponDiscount decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(deliveryCharge).Sub(couponDiscount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// StripWhitespace normalizes a region key the way the delivery table
// stores them ("Tamil Nadu" → "TamilNadu").
func StripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
