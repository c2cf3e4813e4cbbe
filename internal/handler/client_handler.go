package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"commerce_api/internal/model"
	"commerce_api/internal/service"
	"commerce_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles client requests
type ClientHandler struct {
	service service.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

func clientIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client ID")
		return 0, false
	}
	return id, true
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req model.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	client, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrClientEmailExists) {
			utils.RespondError(c, http.StatusBadRequest, "Client with this email already exists.")
			return
		}
		log.Printf("Error creating client: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error creating client")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Client created successfully", gin.H{"client": client})
}

func (h *ClientHandler) GetActive(c *gin.Context) {
	clients, err := h.service.GetActive(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching active clients: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching clients")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Clients retrieved successfully", gin.H{"clients": clients})
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	client, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Client not found")
			return
		}
		log.Printf("Error fetching client: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching client")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Client retrieved successfully", gin.H{"client": client})
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	client, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			utils.RespondError(c, http.StatusNotFound, "Client not found")
		case errors.Is(err, service.ErrClientEmailExists):
			utils.RespondError(c, http.StatusBadRequest, "Client with this email already exists.")
		default:
			log.Printf("Error updating client: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "Error updating client")
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Client updated successfully", gin.H{"client": client})
}

func (h *ClientHandler) ToggleStatus(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	client, err := h.service.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Client not found")
			return
		}
		log.Printf("Error toggling client status: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error updating client status")
		return
	}

	status := "inactive"
	if client.Active {
		status = "active"
	}
	utils.RespondSuccess(c, http.StatusOK, fmt.Sprintf("Client status updated to %s", status), gin.H{"client": client})
}

func (h *ClientHandler) AddOrder(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req model.PurchaseHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	client, err := h.service.AddOrderToHistory(c.Request.Context(), id, req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			utils.RespondError(c, http.StatusNotFound, "Client not found")
		case errors.Is(err, service.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, "Order not found")
		default:
			log.Printf("Error adding order to history: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "Error adding order to history")
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Order added to purchase history", gin.H{"client": client})
}

func (h *ClientHandler) RemoveOrder(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req model.PurchaseHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	client, err := h.service.RemoveOrderFromHistory(c.Request.Context(), id, req.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Client not found")
			return
		}
		log.Printf("Error removing order from history: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error removing order from history")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Order removed from purchase history", gin.H{"client": client})
}

// RegisterClientRoutes registers client routes. Creation is open, reads and
// history edits are admin-only, detail updates need any authenticated user.
func (h *ClientHandler) RegisterClientRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	clients := rg.Group("/clients")
	{
		clients.POST("", h.Create)
		clients.GET("/active", authMW, adminMW, h.GetActive)
		clients.GET("/:id", authMW, adminMW, h.GetByID)
		clients.PUT("/:id", authMW, h.Update)
		clients.PUT("/:id/status", authMW, adminMW, h.ToggleStatus)
		clients.POST("/:id/orders", authMW, adminMW, h.AddOrder)
		clients.DELETE("/:id/orders", authMW, adminMW, h.RemoveOrder)
	}
}
