package model

import "time"

// Product represents a stocked catalog item. Price is stored in cents.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PriceCents  int64     `json:"-"` // Outward responses carry the formatted unit price instead
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FormattedProduct is the outward product shape: raw price replaced by a
// locale-formatted unit price string
type FormattedProduct struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	UnitPrice   string    `json:"unit_price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest is used for creating a new product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	PriceCents  int64   `json:"price_cents" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Category    string  `json:"category" binding:"required"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty" binding:"omitempty,gt=0"`
	Stock       *int    `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Category    *string `json:"category,omitempty"`
}

// DeleteProductsRequest deletes one or more products by ID
type DeleteProductsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// StockLevel is a single row of the dashboard stock report
type StockLevel struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}
