package service

import (
	"context"
	"errors"
	"fmt"

	"commerce_api/internal/model"
	"commerce_api/internal/repository"
	"commerce_api/internal/utils"

	"github.com/jackc/pgx/v5"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService provides catalog operations. Outward product shapes carry
// a formatted unit price instead of the raw cents value.
type ProductService interface {
	Create(ctx context.Context, req model.CreateProductRequest) (*model.FormattedProduct, error)
	GetByID(ctx context.Context, id int64) (*model.FormattedProduct, error)
	GetAll(ctx context.Context) ([]model.FormattedProduct, int64, error)
	Update(ctx context.Context, id int64, req model.UpdateProductRequest) (*model.FormattedProduct, error)
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func formatProduct(p *model.Product) *model.FormattedProduct {
	return &model.FormattedProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   utils.FormatCurrency(p.PriceCents, utils.DefaultCurrency),
		Stock:       p.Stock,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (s *productService) Create(ctx context.Context, req model.CreateProductRequest) (*model.FormattedProduct, error) {
	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		Category:    req.Category,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return formatProduct(product), nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*model.FormattedProduct, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return formatProduct(product), nil
}

func (s *productService) GetAll(ctx context.Context) ([]model.FormattedProduct, int64, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	formatted := make([]model.FormattedProduct, 0, len(products))
	for i := range products {
		formatted = append(formatted, *formatProduct(&products[i]))
	}
	return formatted, total, nil
}

func (s *productService) Update(ctx context.Context, id int64, req model.UpdateProductRequest) (*model.FormattedProduct, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.PriceCents != nil {
		existing.PriceCents = *req.PriceCents
	}
	if req.Stock != nil {
		existing.Stock = *req.Stock
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return formatProduct(existing), nil
}

// DeleteMany removes products by ID; ErrProductNotFound when nothing matched
func (s *productService) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	deleted, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	if deleted == 0 {
		return 0, ErrProductNotFound
	}
	return deleted, nil
}
