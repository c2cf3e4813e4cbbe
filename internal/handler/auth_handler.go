package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"commerce_api/internal/middleware"
	"commerce_api/internal/model"
	"commerce_api/internal/service"
	"commerce_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	service      service.AuthService
	cookieTTL    time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: s, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			utils.RespondError(c, http.StatusBadRequest, "User already exists!")
			return
		}
		log.Printf("Error during registration: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "An error occurred while processing your request.")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "User registered successfully.", gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.RespondError(c, http.StatusUnauthorized, "User doesn't exist!")
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials.")
		default:
			log.Printf("Error during login: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "An error occurred while processing your request.")
		}
		return
	}

	c.SetCookie(middleware.AuthCookieName, "Bearer "+token,
		int(h.cookieTTL.Seconds()), "/", "", h.secureCookie, true)

	utils.RespondSuccess(c, http.StatusOK, "Login successful!", gin.H{"user": user, "token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetAuthClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims.UserID); err != nil {
		log.Printf("Error during logout: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "An error occurred while logging out.")
		return
	}

	// Clearing the cookie ends the browser session; the token itself stays
	// valid until its expiry
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.secureCookie, true)

	utils.RespondSuccess(c, http.StatusOK, "Logout successful.", nil)
}
