package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Variant is one purchasable unit of a product at a specific weight.
// A variant with quantity 0 is never kept in the cart.
type Variant struct {
	Weight   string          `json:"weight"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CartLine aggregates all variants of one product. Name and Image are a
// display cache of catalog data at the time of add and are not refreshed.
// TotalPrice is a cache recomputed on every mutation, never a source of truth.
type CartLine struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	MaxQuantity int             `json:"maxQuantity"`
	Variants    []Variant       `json:"variants"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// Cart is an ordered sequence of lines, unique by product ID. Insertion
// order is kept for display stability.
type Cart struct {
	Lines []CartLine `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

func (c *Cart) findLine(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Line returns the cart line for a product, or nil.
func (c *Cart) Line(productID string) *CartLine {
	if i := c.findLine(productID); i != -1 {
		return &c.Lines[i]
	}
	return nil
}

// UpsertVariant adds a variant or replaces the quantity of an existing one
// (last-write-wins, callers always pass the absolute desired quantity).
// Quantity ≤ 0 removes the variant instead.
func (c *Cart) UpsertVariant(productID, name, image string, maxGrams int, weight string, price decimal.Decimal, quantity int) {
	if quantity <= 0 {
		c.RemoveVariant(productID, weight)
		return
	}

	i := c.findLine(productID)
	if i == -1 {
		c.Lines = append(c.Lines, CartLine{
			ProductID:   productID,
			Name:        name,
			Image:       image,
			MaxQuantity: maxGrams,
			Variants:    []Variant{{Weight: weight, Price: price, Quantity: quantity}},
			TotalPrice:  price.Mul(decimal.NewFromInt(int64(quantity))),
		})
		return
	}

	line := &c.Lines[i]
	if maxGrams > 0 {
		line.MaxQuantity = maxGrams
	}

	found := false
	for j := range line.Variants {
		if line.Variants[j].Weight == weight {
			line.Variants[j].Price = price
			line.Variants[j].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		line.Variants = append(line.Variants, Variant{Weight: weight, Price: price, Quantity: quantity})
	}
	line.recomputeTotal()
}

// SetVariantQuantity replaces the quantity of an existing variant, keeping
// its price. Quantity ≤ 0 removes the variant. Returns false if the
// product/weight pair is not in the cart.
func (c *Cart) SetVariantQuantity(productID, weight string, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveVariant(productID, weight)
	}

	i := c.findLine(productID)
	if i == -1 {
		return false
	}
	line := &c.Lines[i]
	for j := range line.Variants {
		if line.Variants[j].Weight == weight {
			line.Variants[j].Quantity = quantity
			line.recomputeTotal()
			return true
		}
	}
	return false
}

// RemoveVariant deletes the named variant; when the last variant of a line
// goes, the line goes with it. No-op on unknown ids.
func (c *Cart) RemoveVariant(productID, weight string) bool {
	i := c.findLine(productID)
	if i == -1 {
		return false
	}

	line := &c.Lines[i]
	removed := false
	kept := line.Variants[:0]
	for _, v := range line.Variants {
		if v.Weight == weight {
			removed = true
			continue
		}
		kept = append(kept, v)
	}
	line.Variants = kept

	if len(line.Variants) == 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	} else {
		line.recomputeTotal()
	}
	return removed
}

// CloneLines returns a deep copy of the lines, safe to hand out after
// the store's lock is released.
func (c *Cart) CloneLines() []CartLine {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	for i := range lines {
		variants := make([]Variant, len(lines[i].Variants))
		copy(variants, lines[i].Variants)
		lines[i].Variants = variants
	}
	return lines
}

func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount is the sum of all variant quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		for _, v := range line.Variants {
			count += v.Quantity
		}
	}
	return count
}

// Subtotal is always derived from the variants, never read from the
// cached line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.Lines {
		for _, v := range line.Variants {
			sum = sum.Add(v.Price.Mul(decimal.NewFromInt(int64(v.Quantity))))
		}
	}
	return sum
}

func (l *CartLine) recomputeTotal() {
	sum := decimal.Zero
	for _, v := range l.Variants {
		sum = sum.Add(v.Price.Mul(decimal.NewFromInt(int64(v.Quantity))))
	}
	l.TotalPrice = sum
}

// TotalGrams is the total selected weight across the line's variants,
// checked against MaxQuantity when the catalog caps stock.
func (l *CartLine) TotalGrams() int {
	grams := 0
	for _, v := range l.Variants {
		grams += WeightGrams(v.Weight) * v.Quantity
	}
	return grams
}

// WeightGrams parses a weight label like "250g", "500g" or "1kg" into
// grams. Unrecognized labels yield 0 and are excluded from stock checks.
func WeightGrams(label string) int {
	s := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.HasSuffix(s, "kg"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "kg"), 64)
		if err != nil {
			return 0
		}
		return int(n * 1000)
	case strings.HasSuffix(s, "g"):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "g"))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
