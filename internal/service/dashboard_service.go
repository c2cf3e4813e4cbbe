package service

import (
	"context"
	"fmt"
	"time"

	"commerce_api/internal/model"
	"commerce_api/internal/repository"
	"commerce_api/internal/utils"
)

// RevenueReport is the monthly revenue figure, raw and formatted
type RevenueReport struct {
	MonthlyRevenueCents int64  `json:"monthly_revenue_cents"`
	FormattedRevenue    string `json:"formatted_revenue"`
}

// DashboardService computes the aggregate reports
type DashboardService interface {
	StockReport(ctx context.Context) ([]model.StockLevel, error)
	MonthlyRevenue(ctx context.Context) (*RevenueReport, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	now         func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		now:         time.Now,
	}
}

func (s *dashboardService) StockReport(ctx context.Context) ([]model.StockLevel, error) {
	report, err := s.productRepo.StockReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build stock report: %w", err)
	}
	return report, nil
}

// MonthlyRevenue sums non-canceled order totals since the start of the
// current month
func (s *dashboardService) MonthlyRevenue(ctx context.Context) (*RevenueReport, error) {
	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	total, err := s.orderRepo.RevenueSince(ctx, startOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly revenue: %w", err)
	}

	return &RevenueReport{
		MonthlyRevenueCents: total,
		FormattedRevenue:    utils.FormatCurrency(total, utils.DefaultCurrency),
	}, nil
}
