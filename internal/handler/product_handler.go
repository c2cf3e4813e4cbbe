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

// ProductHandler handles product catalog requests
type ProductHandler struct {
	service service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error creating product")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Product created successfully", gin.H{"product": product})
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("Error fetching product: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching product")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Product retrieved successfully", gin.H{"product": product})
}

func (h *ProductHandler) GetAll(c *gin.Context) {
	products, total, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching products")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Products retrieved successfully", gin.H{
		"total_products": total,
		"products":       products,
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("Error updating product: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error updating product")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Product updated successfully", gin.H{"product": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	var req model.DeleteProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please provide a valid product ID or an array of product IDs to delete")
		return
	}

	deleted, err := h.service.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			utils.RespondError(c, http.StatusNotFound, "No products found to delete")
			return
		}
		log.Printf("Error deleting products: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error deleting product(s)")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, fmt.Sprintf("%d product(s) deleted successfully", deleted), nil)
}

// RegisterProductRoutes registers product routes; reads are public, writes
// are admin-only
func (h *ProductHandler) RegisterProductRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	products := rg.Group("/products")
	{
		products.GET("", h.GetAll)
		products.GET("/:id", h.GetByID)
		products.POST("", authMW, adminMW, h.Create)
		products.PUT("/:id", authMW, adminMW, h.Update)
		products.DELETE("", authMW, adminMW, h.Delete)
	}
}
