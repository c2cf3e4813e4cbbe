package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"commerce_api/internal/model"
	"commerce_api/internal/service"
	"commerce_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user management requests
type UserHandler struct {
	auth    *AuthHandler
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(auth *AuthHandler, s service.UserService) *UserHandler {
	return &UserHandler{auth: auth, service: s}
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.RespondError(c, http.StatusNotFound, "User not found!")
			return
		}
		log.Printf("Error getting user by ID: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "An error occurred while processing your request.")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "User found.", gin.H{"user": user})
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "An error occurred while processing your request.")
		return
	}
	if len(users) == 0 {
		utils.RespondError(c, http.StatusNotFound, "No users found.")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Users found.", gin.H{"users": users})
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req model.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := h.service.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.RespondError(c, http.StatusNotFound, "User not found!")
			return
		}
		log.Printf("Error updating user role: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "An error occurred while processing your request.")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "User role updated successfully.", gin.H{"user": user})
}

func (h *UserHandler) Modify(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req model.ModifyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := h.service.Modify(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.RespondError(c, http.StatusNotFound, "User not found!")
		case errors.Is(err, service.ErrEmailTaken):
			utils.RespondError(c, http.StatusBadRequest, "Email already in use.")
		default:
			log.Printf("Error modifying user: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "An error occurred while processing your request.")
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "User updated successfully.", gin.H{"user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.RespondError(c, http.StatusNotFound, "User not found!")
			return
		}
		log.Printf("Error deleting user: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "An error occurred while processing your request.")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "User deleted successfully.", nil)
}

// RegisterUserRoutes registers the auth and user-management routes.
// loginMW is the rate limiter applied only to login.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW, adminMW, loginMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("/register", h.auth.Register)
		users.POST("/login", loginMW, h.auth.Login)
		users.POST("/logout", authMW, h.auth.Logout)

		users.GET("", authMW, adminMW, h.GetAll)
		users.GET("/:id", authMW, h.GetByID)
		users.PUT("/:id", authMW, h.Modify)
		users.PUT("/:id/role", authMW, adminMW, h.UpdateRole)
		users.DELETE("/:id", authMW, adminMW, h.Delete)
	}
}
