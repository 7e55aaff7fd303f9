package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"mkr-foods/models"
	"mkr-foods/repositories"
	"mkr-foods/services"
)

type AdminController struct {
	coupons  *repositories.CouponRepository
	delivery *repositories.DeliveryRepository
}

func NewAdminController(coupons *repositories.CouponRepository, delivery *repositories.DeliveryRepository) *AdminController {
	return &AdminController{coupons: coupons, delivery: delivery}
}

// @Summary Create or update a coupon
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpsertCouponRequest true "Coupon"
// @Success 200 {object} models.Response
// @Router /admin/coupons [post]
func (ctrl *AdminController) UpsertCoupon(c *gin.Context) {
	var req models.UpsertCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	coupon := &models.Coupon{
		Code:          req.Code,
		DiscountPrice: decimal.NewFromFloat(req.DiscountPrice),
		MinimumOrder:  decimal.NewFromFloat(req.MinimumOrder),
	}
	if err := ctrl.coupons.Upsert(c.Request.Context(), coupon); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save coupon",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Coupon saved",
	})
}

// @Summary Set a region's delivery charge
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SetDeliveryChargeRequest true "Region charge"
// @Success 200 {object} models.Response
// @Router /admin/delivery-charges [put]
func (ctrl *AdminController) SetDeliveryCharge(c *gin.Context) {
	var req models.SetDeliveryChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	region := services.StripWhitespace(req.State)
	if err := ctrl.delivery.SetCharge(c.Request.Context(), region, req.Charge); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save delivery charge",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Delivery charge saved",
	})
}
