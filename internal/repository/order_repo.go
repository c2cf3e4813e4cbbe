package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"commerce_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// OrderRepository defines operations for order data
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByClient(ctx context.Context, clientID int) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error)
	RevenueSince(ctx context.Context, since time.Time) (int64, error)
}

type orderRepository struct {
	db DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts an order and its items in one transaction
func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql := `INSERT INTO orders (reference, client_id, total_cents, currency, status)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, sql, o.Reference, o.ClientID, o.TotalCents, o.Currency, o.Status).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := insertItems(ctx, tx, o.ID, o.Items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []model.OrderItem) error {
	sql := `INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents)
            VALUES ($1, $2, $3, $4)`
	for _, item := range items {
		if _, err := tx.Exec(ctx, sql, orderID, item.ProductID, item.Quantity, item.UnitPriceCents); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	return nil
}

// FindByID retrieves an order and its items
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	o := &model.Order{}
	sql := `SELECT id, reference, client_id, total_cents, currency, status, created_at, updated_at
            FROM orders WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&o.ID, &o.Reference, &o.ClientID, &o.TotalCents,
		&o.Currency, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *orderRepository) itemsFor(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	sql := `SELECT product_id, quantity, unit_price_cents FROM order_items
            WHERE order_id = $1 ORDER BY product_id`
	rows, err := r.db.Query(ctx, sql, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order item rows: %w", err)
	}
	return items, nil
}

func (r *orderRepository) findWhere(ctx context.Context, where string, args ...any) ([]model.Order, error) {
	sql := `SELECT id, reference, client_id, total_cents, currency, status, created_at, updated_at
            FROM orders` + where + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.Reference, &o.ClientID, &o.TotalCents,
			&o.Currency, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	for i := range orders {
		items, err := r.itemsFor(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// FindAll retrieves every order with its items
func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	return r.findWhere(ctx, "")
}

// FindByClient retrieves all orders placed by one client
func (r *orderRepository) FindByClient(ctx context.Context, clientID int) ([]model.Order, error) {
	return r.findWhere(ctx, " WHERE client_id = $1", clientID)
}

// Update rewrites an order's mutable fields and replaces its items
func (r *orderRepository) Update(ctx context.Context, o *model.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql := `UPDATE orders SET total_cents = $1, currency = $2, status = $3
            WHERE id = $4 RETURNING updated_at`
	err = tx.QueryRow(ctx, sql, o.TotalCents, o.Currency, o.Status, o.ID).Scan(&o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgx.ErrNoRows
		}
		return fmt.Errorf("failed to update order: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("failed to clear order items: %w", err)
	}
	if err := insertItems(ctx, tx, o.ID, o.Items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order update: %w", err)
	}
	return nil
}

// Delete removes an order; items follow via ON DELETE CASCADE
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateStatus changes only the order status and returns the updated order
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	o := &model.Order{}
	sql := `UPDATE orders SET status = $1 WHERE id = $2
            RETURNING id, reference, client_id, total_cents, currency, status, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, status, id).Scan(
		&o.ID, &o.Reference, &o.ClientID, &o.TotalCents,
		&o.Currency, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// RevenueSince sums the totals of non-canceled orders created at or after
// the given time
func (r *orderRepository) RevenueSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	sql := `SELECT COALESCE(SUM(total_cents), 0) FROM orders
            WHERE status <> $1 AND created_at >= $2`
	if err := r.db.QueryRow(ctx, sql, model.OrderStatusCanceled, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to compute revenue: %w", err)
	}
	return total, nil
}
