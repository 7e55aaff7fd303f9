package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"mkr-foods/models"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestGrandTotalNeverNegative(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		delivery string
		discount string
		want     string
	}{
		{"no discount", "500", "100", "0", "600"},
		{"normal discount", "600", "60", "50", "610"},
		{"discount equals total", "100", "0", "100", "0"},
		{"discount exceeds subtotal and delivery", "100", "40", "500", "0"},
		{"everything zero", "0", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrandTotal(d(tt.subtotal), d(tt.delivery), d(tt.discount))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestResolveDeliveryChargeFreeAboveThreshold(t *testing.T) {
	table := map[string]decimal.Decimal{"Karnataka": d("60")}

	charge := ResolveDeliveryCharge(d("1200"), "Karnataka", table)
	assert.True(t, charge.IsZero(), "subtotal above threshold must waive delivery, got %s", charge)

	// At exactly the threshold delivery still applies.
	charge = ResolveDeliveryCharge(d("1000"), "Karnataka", table)
	assert.True(t, charge.Equal(d("60")))
}

func TestResolveDeliveryChargeTableLookup(t *testing.T) {
	table := map[string]decimal.Decimal{
		"Karnataka": d("60"),
		"TamilNadu": d("80"),
	}

	assert.True(t, ResolveDeliveryCharge(d("300"), "Karnataka", table).Equal(d("60")))
	assert.True(t, ResolveDeliveryCharge(d("300"), "Tamil Nadu", table).Equal(d("80")),
		"region keys are matched with whitespace stripped")
	assert.True(t, ResolveDeliveryCharge(d("300"), "UnknownState", table).Equal(DefaultDeliveryCharge))
	assert.True(t, ResolveDeliveryCharge(d("300"), "Kerala", nil).Equal(DefaultDeliveryCharge),
		"missing table falls back to the default charge")
}

func TestValidateCoupon(t *testing.T) {
	coupon := &models.Coupon{Code: "SAVE50", DiscountPrice: d("50"), MinimumOrder: d("500")}

	assert.True(t, ValidateCoupon(coupon, d("600")))
	assert.True(t, ValidateCoupon(coupon, d("500")), "minimum is inclusive")
	assert.False(t, ValidateCoupon(coupon, d("499.99")))
}

func TestSubtotalSumsAllVariants(t *testing.T) {
	cart := models.NewCart()
	cart.UpsertVariant("p1", "Murukku", "", 0, "250g", d("120"), 2)
	cart.UpsertVariant("p1", "Murukku", "", 0, "500g", d("230"), 1)
	cart.UpsertVariant("p2", "Mixture", "", 0, "1kg", d("450"), 1)

	assert.True(t, Subtotal(cart).Equal(d("920")))
}

func TestStripWhitespace(t *testing.T) {
	assert.Equal(t, "TamilNadu", StripWhitespace("  Tamil  Nadu "))
	assert.Equal(t, "Karnataka", StripWhitespace("Karnataka"))
	assert.Equal(t, "", StripWhitespace("   "))
}
