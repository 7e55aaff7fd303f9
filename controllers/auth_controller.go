package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mkr-foods/models"
	"mkr-foods/utils"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// @Summary Create guest session
// @Description Issue a short-lived token so an anonymous visitor can hold a cart
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/guest [post]
func (ctrl *AuthController) GuestSession(c *gin.Context) {
	guestID := utils.GenerateGuestID()

	token, expiresAt, err := utils.IssueGuestToken(guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Token generation failed",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Guest session created",
		Data: models.GuestSessionResponse{
			GuestID:   guestID,
			Token:     token,
			ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		},
	})
}
