package repository

import (
	"context"
	"errors"
	"fmt"

	"commerce_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// ClientRepository defines operations for client data
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	FindByID(ctx context.Context, id int) (*model.Client, error)
	FindActive(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, client *model.Client) error
	SetActive(ctx context.Context, id int, active bool) error
	AddOrderToHistory(ctx context.Context, clientID int, orderID int64) error
	RemoveOrderFromHistory(ctx context.Context, clientID int, orderID int64) error
}

type clientRepository struct {
	db DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create inserts a new client into the database
func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	sql := `INSERT INTO clients (name, address, email, phone, active)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, client.Name, client.Address, client.Email, client.Phone, client.Active).
		Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// FindByID retrieves a client and its purchase history
func (r *clientRepository) FindByID(ctx context.Context, id int) (*model.Client, error) {
	client := &model.Client{}
	sql := `SELECT id, name, address, email, phone, active, created_at, updated_at
            FROM clients WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&client.ID, &client.Name, &client.Address, &client.Email,
		&client.Phone, &client.Active, &client.CreatedAt, &client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}

	history, err := r.purchaseHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	client.PurchaseHistory = history
	return client, nil
}

func (r *clientRepository) purchaseHistory(ctx context.Context, clientID int) ([]int64, error) {
	sql := `SELECT order_id FROM client_orders WHERE client_id = $1 ORDER BY order_id`
	rows, err := r.db.Query(ctx, sql, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase history: %w", err)
	}
	defer rows.Close()

	history := []int64{}
	for rows.Next() {
		var orderID int64
		if err := rows.Scan(&orderID); err != nil {
			return nil, fmt.Errorf("failed to scan purchase history row: %w", err)
		}
		history = append(history, orderID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase history rows: %w", err)
	}
	return history, nil
}

// FindActive retrieves all clients whose active flag is set
func (r *clientRepository) FindActive(ctx context.Context) ([]model.Client, error) {
	sql := `SELECT id, name, address, email, phone, active, created_at, updated_at
            FROM clients WHERE active = TRUE ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query active clients: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Address, &c.Email,
			&c.Phone, &c.Active, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

// Update writes client contact details. The active flag is managed
// separately via SetActive.
func (r *clientRepository) Update(ctx context.Context, client *model.Client) error {
	sql := `UPDATE clients SET name = $1, address = $2, email = $3, phone = $4
            WHERE id = $5 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, client.Name, client.Address, client.Email, client.Phone, client.ID).
		Scan(&client.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgx.ErrNoRows
		}
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// SetActive flips the client's active flag
func (r *clientRepository) SetActive(ctx context.Context, id int, active bool) error {
	sql := `UPDATE clients SET active = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, sql, active, id)
	if err != nil {
		return fmt.Errorf("failed to set client active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AddOrderToHistory links an order to a client's purchase history.
// Re-adding an existing link is a no-op.
func (r *clientRepository) AddOrderToHistory(ctx context.Context, clientID int, orderID int64) error {
	sql := `INSERT INTO client_orders (client_id, order_id) VALUES ($1, $2)
            ON CONFLICT DO NOTHING`
	if _, err := r.db.Exec(ctx, sql, clientID, orderID); err != nil {
		return fmt.Errorf("failed to add order to purchase history: %w", err)
	}
	return nil
}

// RemoveOrderFromHistory unlinks an order from a client's purchase history
func (r *clientRepository) RemoveOrderFromHistory(ctx context.Context, clientID int, orderID int64) error {
	sql := `DELETE FROM client_orders WHERE client_id = $1 AND order_id = $2`
	if _, err := r.db.Exec(ctx, sql, clientID, orderID); err != nil {
		return fmt.Errorf("failed to remove order from purchase history: %w", err)
	}
	return nil
}
