package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mkr-foods/models"
	"mkr-foods/services"
)

type CouponController struct {
	coupons *services.CouponService
}

func NewCouponController(coupons *services.CouponService) *CouponController {
	return &CouponController{coupons: coupons}
}

// @Summary Apply a coupon code
// @Description Look the code up and apply it if the cart meets the minimum order
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /cart/coupon [post]
func (ctrl *CouponController) ApplyCoupon(c *gin.Context) {
	var req models.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	summary, err := ctrl.coupons.Apply(c.Request.Context(), c.GetString("user_id"), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Invalid coupon code",
			})
		case errors.Is(err, services.ErrCouponMinimumNotMet):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Success: false,
				Message: "Order total does not meet the coupon minimum",
			})
		case errors.Is(err, services.ErrCouponRequestSuperseded):
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Success: false,
				Message: "A newer coupon request replaced this one",
			})
		default:
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Success: false,
				Message: "Coupon lookup failed, please try again",
				Error:   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Coupon applied",
		Data:    summary,
	})
}

// @Summary Remove the applied coupon
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/coupon [delete]
func (ctrl *CouponController) RemoveCoupon(c *gin.Context) {
	summary := ctrl.coupons.Remove(c.Request.Context(), c.GetString("user_id"))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Coupon removed",
		Data:    summary,
	})
}
