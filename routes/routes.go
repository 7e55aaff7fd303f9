package routes

import (
	"github.com/gin-gonic/gin"

	"mkr-foods/controllers"
	"mkr-foods/middleware"
	"mkr-foods/repositories"
	"mkr-foods/services"
)

func SetupRoutes(router *gin.Engine) {
	cartRepo := repositories.NewCartRepository()
	sessionRepo := repositories.NewSessionRepository()
	couponRepo := repositories.NewCouponRepository()
	deliveryRepo := repositories.NewDeliveryRepository()
	productRepo := repositories.NewProductRepository()
	orderRepo := repositories.NewOrderRepository()

	cartSvc := services.NewCartService(cartRepo)
	couponSvc := services.NewCouponService(cartSvc, couponRepo)
	checkoutSvc := services.NewCheckoutService(cartSvc, deliveryRepo, sessionRepo)

	authCtrl := controllers.NewAuthController()
	catalogCtrl := controllers.NewCatalogController(productRepo)
	cartCtrl := controllers.NewCartController(cartSvc, productRepo)
	couponCtrl := controllers.NewCouponController(couponSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderRepo)
	adminCtrl := controllers.NewAdminController(couponRepo, deliveryRepo)

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/guest", authCtrl.GuestSession)
	router.GET("/products", catalogCtrl.GetAllProducts)
	router.GET("/products/:id", catalogCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:productId/:weight", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/cart/coupon", couponCtrl.ApplyCoupon)
		auth.DELETE("/cart/coupon", couponCtrl.RemoveCoupon)

		auth.POST("/checkout/address", checkoutCtrl.SaveAddress)
		auth.POST("/checkout/summary", checkoutCtrl.BuildSummary)
		auth.GET("/checkout", checkoutCtrl.GetHandoff)

		auth.GET("/orders", middleware.RegisteredOnlyMiddleware(), orderCtrl.GetMyOrders)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/coupons", adminCtrl.UpsertCoupon)
		admin.PUT("/delivery-charges", adminCtrl.SetDeliveryCharge)
	}
}
