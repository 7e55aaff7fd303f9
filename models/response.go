package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// CartSummary is the payload every cart read and mutation returns: the
// lines plus derived totals and the applied-coupon state. Money fields
// are rendered to two decimals here, at the presentation boundary.
type CartSummary struct {
	Items          []CartLine     `json:"items"`
	ItemCount      int            `json:"itemCount"`
	Subtotal       string         `json:"subtotal"`
	Coupon         *AppliedCoupon `json:"coupon,omitempty"`
	CouponDiscount string         `json:"couponDiscount"`
	CouponRemoved  bool           `json:"couponRemoved,omitempty"`
	Notice         string         `json:"notice,omitempty"`
}

type GuestSessionResponse struct {
	GuestID   string `json:"guest_id"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
