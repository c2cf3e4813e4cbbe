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

// OrderHandler handles order requests
type OrderHandler struct {
	service service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order ID")
		return 0, false
	}
	return id, true
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Client not found")
			return
		}
		log.Printf("Error creating order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error creating order")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Order created successfully", gin.H{"order": order})
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("Error fetching order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching order")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Order retrieved successfully", gin.H{"order": order})
}

func (h *OrderHandler) GetAll(c *gin.Context) {
	orders, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Orders retrieved successfully", gin.H{"orders": orders})
}

func (h *OrderHandler) GetByClient(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("clientId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	orders, err := h.service.GetByClient(c.Request.Context(), clientID)
	if err != nil {
		log.Printf("Error fetching orders for client: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching orders for client")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Orders retrieved successfully", gin.H{"orders": orders})
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	order, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("Error updating order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error updating order")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Order updated successfully", gin.H{"order": order})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("Error deleting order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error deleting order")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Order deleted successfully", nil)
}

func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req model.ChangeOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	order, err := h.service.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			utils.RespondError(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, service.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, "Order not found")
		default:
			log.Printf("Error changing order status: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "Error updating order status")
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, fmt.Sprintf("Order status updated to %s", order.Status), gin.H{"order": order})
}

// RegisterOrderRoutes registers order routes
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	orders := rg.Group("/orders")
	orders.Use(authMW)
	{
		orders.POST("", h.Create)
		orders.GET("", adminMW, h.GetAll)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", adminMW, h.Delete)
		orders.GET("/client/:clientId", h.GetByClient)
		orders.PUT("/:id/status", adminMW, h.ChangeStatus)
	}
}
