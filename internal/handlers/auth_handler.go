package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"employee-portal/internal/auth"
	"employee-portal/internal/middleware"
	"employee-portal/internal/models"
)

type AuthHandler struct {
	verifier auth.Verifier
	tokens   *auth.TokenIssuer
	log      logrus.FieldLogger
}

func NewAuthHandler(verifier auth.Verifier, tokens *auth.TokenIssuer, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{verifier: verifier, tokens: tokens, log: log}
}

// Login authenticates user and returns JWT token
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	user, err := h.verifier.Verify(c.Request.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	case errors.Is(err, auth.ErrInactive):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is deactivated"})
		return
	case err != nil:
		middleware.Logger(c, h.log).WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// GetProfile returns the identity carried by the caller's token
// GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":          c.GetString(middleware.ContextUserID),
		"email":       c.GetString(middleware.ContextEmail),
		"role":        c.GetString(middleware.ContextRole),
		"employee_id": c.GetString(middleware.ContextEmployeeID),
	})
}
