package models

// Address is the delivery address the user selected on the address step.
// State drives the delivery-charge lookup.
type Address struct {
	FullName     string `json:"fullName" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required"`
}

// PricingSnapshot is the artifact handed off to the payment page: the
// totals frozen at checkout time. It lives in the session store, not the
// durable cart store, and expires with the checkout session.
type PricingSnapshot struct {
	ID             string `json:"id"`
	CartTotal      string `json:"cartTotal"`
	CouponDiscount string `json:"couponDiscount"`
	DeliveryCharge string `json:"deliveryCharge"`
	FinalAmount    string `json:"finalAmount"`
	CreatedAt      string `json:"createdAt"`
}

// CheckoutView is what the payment page reads back: the stashed address
// plus the frozen pricing.
type CheckoutView struct {
	Address *Address         `json:"address"`
	Pricing *PricingSnapshot `json:"pricing"`
}
