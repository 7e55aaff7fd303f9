package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mkr-foods/config"
	"mkr-foods/models"
	"mkr-foods/utils"
)

// AuthMiddleware accepts either a Firebase ID token or a guest session
// token in the Authorization header. Firebase is tried first; anything
// it rejects is retried as a guest token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}
		rawToken := tokenParts[1]

		if config.AuthClient != nil {
			if token, err := config.AuthClient.VerifyIDToken(c.Request.Context(), rawToken); err == nil {
				c.Set("user_id", token.UID)
				c.Set("is_guest", false)
				if admin, ok := token.Claims["admin"].(bool); ok && admin {
					c.Set("is_admin", true)
				}
				c.Next()
				return
			}
		}

		guestID, err := utils.ValidateGuestToken(rawToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", guestID)
		c.Set("is_guest", true)
		c.Next()
	}
}

// AdminMiddleware requires the Firebase "admin" custom claim.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists || isAdmin != true {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RegisteredOnlyMiddleware blocks guest sessions from endpoints that only
// make sense for signed-in users, like order history.
func RegisteredOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isGuest, _ := c.Get("is_guest"); isGuest == true {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Sign in to access this resource",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
