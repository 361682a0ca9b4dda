package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neuroad-server/middleware"
	"neuroad-server/pkg/logger"
	"neuroad-server/services"
)

const sessionCookieMaxAge = 365 * 24 * 60 * 60

type AuthController struct {
	sessionService *services.SessionService
}

func NewAuthController() *AuthController {
	return &AuthController{
		sessionService: services.NewSessionService(),
	}
}

// @Summary Create demo session
// @Description Open an anonymous demo session and set the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/auth/session [post]
func (c *AuthController) CreateSession(ctx *gin.Context) {
	user, session, err := c.sessionService.CreateDemoSession()
	if err != nil {
		logger.Errorf("Failed to create demo session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.SetSameSite(http.SameSiteNoneMode)
	ctx.SetCookie(middleware.SessionCookieName, session.SessionToken,
		sessionCookieMaxAge, "/", "", true, true)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// @Summary Get current user
// @Description Return the user bound to the active session
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, ok := middleware.GetUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// @Summary Logout
// @Description Delete the active session and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token := middleware.SessionToken(ctx); token != "" {
		if err := c.sessionService.Logout(token); err != nil {
			logger.Warnf("Failed to delete session: %v", err)
		}
	}

	ctx.SetSameSite(http.SameSiteNoneMode)
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
