package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkr-foods/models"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func sampleCart() *models.Cart {
	cart := models.NewCart()
	cart.UpsertVariant("p1", "Murukku", "https://cdn.example.com/murukku.jpg", 2000, "250g", d("120"), 2)
	cart.UpsertVariant("p1", "Murukku", "https://cdn.example.com/murukku.jpg", 2000, "500g", d("230"), 1)
	cart.UpsertVariant("p2", "Mixture", "https://cdn.example.com/mixture.jpg", 0, "250g", d("110"), 3)
	cart.UpsertVariant("p2", "Mixture", "https://cdn.example.com/mixture.jpg", 0, "1kg", d("400.50"), 1)
	return cart
}

func TestCartEnvelopeRoundTrip(t *testing.T) {
	original := sampleCart()

	data, err := encodeCart(original)
	require.NoError(t, err)

	restored, err := decodeCart(data)
	require.NoError(t, err)

	require.Len(t, restored.Lines, len(original.Lines))
	for i, want := range original.Lines {
		got := restored.Lines[i]
		assert.Equal(t, want.ProductID, got.ProductID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Image, got.Image)
		assert.Equal(t, want.MaxQuantity, got.MaxQuantity)
		require.Len(t, got.Variants, len(want.Variants))
		for j, wv := range want.Variants {
			assert.Equal(t, wv.Weight, got.Variants[j].Weight)
			assert.Equal(t, wv.Quantity, got.Variants[j].Quantity)
			assert.True(t, wv.Price.Equal(got.Variants[j].Price))
		}
		assert.True(t, want.TotalPrice.Equal(got.TotalPrice))
	}

	assert.True(t, original.Subtotal().Equal(restored.Subtotal()))
}

func TestDecodeCartRejectsCorruptData(t *testing.T) {
	for _, corrupt := range []string{
		"not json at all",
		`{"version":1,"items":`,
		``,
	} {
		_, err := decodeCart([]byte(corrupt))
		assert.Error(t, err, "input %q", corrupt)
	}
}

func TestDecodeCartRejectsUnknownSchemaVersion(t *testing.T) {
	_, err := decodeCart([]byte(`{"version":99,"items":[]}`))
	assert.Error(t, err)

	// The original storefront wrote a bare array with no envelope; that
	// decodes with version 0 and is treated as unrecognized.
	_, err = decodeCart([]byte(`{"items":[]}`))
	assert.Error(t, err)
}

func TestDecodeCartRestoresInvariants(t *testing.T) {
	// Zero-quantity variants and the empty line they leave behind must
	// not survive hydration, and line totals are recomputed, not trusted.
	data := []byte(`{"version":1,"items":[
		{"productId":"p1","name":"Murukku","image":"","maxQuantity":0,
		 "variants":[{"weight":"250g","price":"120","quantity":2},{"weight":"500g","price":"230","quantity":0}],
		 "totalPrice":"9999"},
		{"productId":"p2","name":"Mixture","image":"","maxQuantity":0,
		 "variants":[{"weight":"250g","price":"110","quantity":0}],
		 "totalPrice":"110"}
	]}`)

	cart, err := decodeCart(data)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p1", cart.Lines[0].ProductID)
	require.Len(t, cart.Lines[0].Variants, 1)
	assert.True(t, cart.Lines[0].TotalPrice.Equal(d("240")))
}

func TestLoadCartWithoutRedisReturnsEmpty(t *testing.T) {
	// Redis being down degrades to a session-only cart; loading must not
	// panic or error.
	repo := NewCartRepository()
	cart := repo.LoadCart(context.Background(), "u1")
	require.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
	assert.Nil(t, repo.LoadCoupon(context.Background(), "u1"))
}
