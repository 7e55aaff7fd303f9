package services

import "errors"

var (
	// ErrExceedsStock means the requested variant quantity would push the
	// line's total weight past the product's available stock.
	ErrExceedsStock = errors.New("requested quantity exceeds available stock")

	// ErrVariantNotSold means the product has no price for the requested
	// weight label.
	ErrVariantNotSold = errors.New("product is not sold at this weight")

	// ErrCouponNotFound is the "invalid code" outcome: the code resolved
	// to no coupon document. Distinct from a lookup failure.
	ErrCouponNotFound = errors.New("invalid coupon code")

	// ErrCouponMinimumNotMet means the coupon exists but the cart
	// subtotal is below its minimum order amount.
	ErrCouponMinimumNotMet = errors.New("minimum order amount not met")

	// ErrCouponRequestSuperseded marks a coupon lookup whose response
	// arrived after a newer request for the same user began. The stale
	// result is discarded, never applied.
	ErrCouponRequestSuperseded = errors.New("coupon request superseded by a newer one")

	// ErrNoAddress means the checkout has no stored delivery address yet.
	ErrNoAddress = errors.New("no delivery address selected")

	// ErrNoPricing means no pricing snapshot has been built for this
	// checkout session, or it expired.
	ErrNoPricing = errors.New("no checkout pricing snapshot")

	// ErrEmptyCart blocks checkout on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)
