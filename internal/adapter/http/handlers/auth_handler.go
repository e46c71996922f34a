package handlers

import (
	"net/http"
	"time"

	request "eventpilot/internal/adapter/http/dto/request"
	response "eventpilot/internal/adapter/http/dto/response"
	"eventpilot/internal/adapter/http/middleware"
	"eventpilot/internal/config"
	"eventpilot/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues operator access tokens. There is a single operator
// account configured through the environment.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payload.Email != h.cfg.Auth.OperatorEmail ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.Auth.OperatorPasswordKey), []byte(payload.Password)) != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	expiry := time.Duration(h.cfg.Auth.AccessTokenMinutes) * time.Minute
	token, err := middleware.GenerateToken(payload.Email, h.cfg.Auth.JWTSecret, expiry)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(expiry.Seconds()),
	})
}
