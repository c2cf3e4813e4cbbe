package model

import "time"

// Client represents a commerce customer
type Client struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Active          bool      `json:"active"`
	PurchaseHistory []int64   `json:"purchase_history"` // Order IDs
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateClientRequest is used for creating a new client
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
}

// UpdateClientRequest updates client details; the active flag has its own endpoint
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
}

// PurchaseHistoryRequest adds or removes an order from a client's history
type PurchaseHistoryRequest struct {
	OrderID int64 `json:"order_id" binding:"required"`
}
