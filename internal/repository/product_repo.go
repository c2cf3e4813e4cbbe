package repository

import (
	"context"
	"errors"
	"fmt"

	"commerce_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines operations for product data
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, product *model.Product) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	StockReport(ctx context.Context) ([]model.StockLevel, error)
}

type productRepository struct {
	db DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product into the database
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `INSERT INTO products (name, description, price_cents, stock, category)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, p.Name, p.Description, p.PriceCents, p.Stock, p.Category).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its ID
func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	p := &model.Product{}
	sql := `SELECT id, name, description, price_cents, stock, category, created_at, updated_at
            FROM products WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.PriceCents,
		&p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return p, nil
}

// FindAll retrieves every product
func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	sql := `SELECT id, name, description, price_cents, stock, category, created_at, updated_at
            FROM products ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.PriceCents,
			&p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// Count returns the total number of products
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// Update modifies an existing product
func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	sql := `UPDATE products SET name = $1, description = $2, price_cents = $3, stock = $4, category = $5
            WHERE id = $6 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, p.Name, p.Description, p.PriceCents, p.Stock, p.Category, p.ID).
		Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgx.ErrNoRows
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// DeleteMany removes products by ID and returns how many rows were deleted
func (r *productRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	sql := `DELETE FROM products WHERE id = ANY($1)`
	tag, err := r.db.Exec(ctx, sql, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// StockReport returns name and stock level for every product
func (r *productRepository) StockReport(ctx context.Context) ([]model.StockLevel, error) {
	rows, err := r.db.Query(ctx, `SELECT name, stock FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock report: %w", err)
	}
	defer rows.Close()

	var report []model.StockLevel
	for rows.Next() {
		var s model.StockLevel
		if err := rows.Scan(&s.Name, &s.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		report = append(report, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock rows: %w", err)
	}
	return report, nil
}
