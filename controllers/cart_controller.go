package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mkr-foods/models"
	"mkr-foods/repositories"
	"mkr-foods/services"
)

type CartController struct {
	carts    *services.CartService
	products *repositories.ProductRepository
}

func NewCartController(carts *services.CartService, products *repositories.ProductRepository) *CartController {
	return &CartController{carts: carts, products: products}
}

// @Summary Get cart
// @Description Current cart lines, totals and applied coupon
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	summary := ctrl.carts.Summary(c.Request.Context(), c.GetString("user_id"))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    summary,
	})
}

// @Summary Add or update a cart item
// @Description Upsert a product variant; the quantity replaces any existing one
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.products.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to validate product",
		})
		return
	}
	if product == nil || !product.IsActive {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Product does not exist",
		})
		return
	}

	summary, err := ctrl.carts.AddItem(c.Request.Context(), c.GetString("user_id"), product, req.Weight, req.Quantity)
	if err != nil {
		ctrl.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    summary,
	})
}

// @Summary Set a variant's quantity
// @Description Quantity ≤ 0 removes the variant
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Router /cart/items [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	summary, err := ctrl.carts.SetQuantity(c.Request.Context(), c.GetString("user_id"), req.ProductID, req.Weight, req.Quantity)
	if err != nil {
		ctrl.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    summary,
	})
}

// @Summary Remove a variant
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Param weight path string true "Weight label"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId}/{weight} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	summary := ctrl.carts.RemoveItem(c.Request.Context(), c.GetString("user_id"), c.Param("productId"), c.Param("weight"))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed",
		Data:    summary,
	})
}

// @Summary Clear the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	summary := ctrl.carts.Clear(c.Request.Context(), c.GetString("user_id"))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
		Data:    summary,
	})
}

func (ctrl *CartController) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrVariantNotSold):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Product is not sold at this weight",
		})
	case errors.Is(err, services.ErrExceedsStock):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Success: false,
			Message: "Requested quantity exceeds available stock",
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update cart",
			Error:   err.Error(),
		})
	}
}
