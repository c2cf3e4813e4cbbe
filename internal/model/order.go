package model

import "time"

const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCanceled  = "Canceled"
)

// ValidOrderStatus reports whether s is one of the known order states
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// OrderItem is a single product line within an order
type OrderItem struct {
	ProductID      int64 `json:"product_id"`
	Quantity       int   `json:"quantity"`
	UnitPriceCents int64 `json:"unit_price_cents"`
}

// Order represents a client purchase. TotalCents is always recomputed
// server-side from the items.
type Order struct {
	ID             int64       `json:"id"`
	Reference      string      `json:"reference"`
	ClientID       int         `json:"client_id"`
	Items          []OrderItem `json:"items"`
	TotalCents     int64       `json:"total_cents"`
	FormattedTotal string      `json:"formatted_total,omitempty"`
	Currency       string      `json:"currency"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// OrderItemRequest is one line of a create/update order body
type OrderItemRequest struct {
	ProductID      int64 `json:"product_id" binding:"required"`
	Quantity       int   `json:"quantity" binding:"required,gt=0"`
	UnitPriceCents int64 `json:"unit_price_cents" binding:"required,gt=0"`
}

// CreateOrderRequest is used for creating a new order
type CreateOrderRequest struct {
	ClientID int                `json:"client_id" binding:"required"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Currency string             `json:"currency"`
	Status   string             `json:"status" binding:"omitempty,oneof=Pending Shipped Delivered Canceled"`
}

type UpdateOrderRequest struct {
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Currency *string            `json:"currency,omitempty"`
	Status   *string            `json:"status,omitempty" binding:"omitempty,oneof=Pending Shipped Delivered Canceled"`
}

// ChangeOrderStatusRequest is the body of PUT /orders/:id/status
type ChangeOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
