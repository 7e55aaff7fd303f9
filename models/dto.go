package models

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Weight    string `json:"weight" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type UpdateCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Weight    string `json:"weight" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type UpsertCouponRequest struct {
	Code          string  `json:"code" binding:"required"`
	DiscountPrice float64 `json:"discountPrice" binding:"required,gte=0"`
	MinimumOrder  float64 `json:"minimumOrder" binding:"gte=0"`
}

type SetDeliveryChargeRequest struct {
	State  string  `json:"state" binding:"required"`
	Charge float64 `json:"charge" binding:"gte=0"`
}
