package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mkr-foods/models"
	"mkr-foods/repositories"
)

type CatalogController struct {
	products *repositories.ProductRepository
}

func NewCatalogController(products *repositories.ProductRepository) *CatalogController {
	return &CatalogController{products: products}
}

// @Summary Get all products
// @Description List active catalog products with per-weight prices
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *CatalogController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.products.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get products",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
	})
}

// @Summary Get product by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	product, err := ctrl.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get product",
		})
		return
	}
	if product == nil || !product.IsActive {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}
