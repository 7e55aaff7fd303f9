package models

import "github.com/shopspring/decimal"

// Product mirrors a document in the "products" catalog collection. Prices
// are stored per weight tier the way the storefront records them.
type Product struct {
	ID          string  `json:"id" firestore:"-"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	Image       string  `json:"image" firestore:"image"`
	Price250    float64 `json:"price_250" firestore:"price_250"`
	Price500    float64 `json:"price_500" firestore:"price_500"`
	Price1000   float64 `json:"price_1000" firestore:"price_1000"`
	StockGrams  int     `json:"stock_grams" firestore:"stock_grams"`
	IsActive    bool    `json:"is_active" firestore:"is_active"`
}

// VariantPrice resolves the catalog price for a weight label. The second
// return is false for weights the product does not sell.
func (p *Product) VariantPrice(weight string) (decimal.Decimal, bool) {
	var price float64
	switch WeightGrams(weight) {
	case 250:
		price = p.Price250
	case 500:
		price = p.Price500
	case 1000:
		price = p.Price1000
	default:
		return decimal.Zero, false
	}
	if price <= 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(price), true
}
