package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mkr-foods/models"
	"mkr-foods/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Save the delivery address
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.Address true "Delivery address"
// @Success 200 {object} models.Response
// @Router /checkout/address [post]
func (ctrl *CheckoutController) SaveAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid address",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.checkout.SaveAddress(c.Request.Context(), c.GetString("user_id"), &addr); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save address",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Address saved",
	})
}

// @Summary Build the checkout pricing snapshot
// @Description Freeze subtotal, coupon discount, delivery charge and final amount for payment
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/summary [post]
func (ctrl *CheckoutController) BuildSummary(c *gin.Context) {
	view, err := ctrl.checkout.BuildSummary(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		ctrl.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout summary ready",
		Data:    view,
	})
}

// @Summary Read the checkout handoff
// @Description Address and frozen pricing for the payment page
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [get]
func (ctrl *CheckoutController) GetHandoff(c *gin.Context) {
	view, err := ctrl.checkout.Handoff(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		ctrl.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout retrieved",
		Data:    view,
	})
}

func (ctrl *CheckoutController) respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoAddress):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "Please select an address first",
		})
	case errors.Is(err, services.ErrNoPricing):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "Checkout session expired, rebuild the summary",
		})
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "Cart is empty",
		})
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Checkout failed, please try again",
			Error:   err.Error(),
		})
	}
}
