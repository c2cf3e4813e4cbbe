package service

import (
	"context"
	"testing"
	"time"

	"commerce_api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo is an in-memory ProductRepository for service tests
type fakeProductRepo struct {
	products map[int64]*model.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*model.Product{}, nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) DeleteMany(_ context.Context, ids []int64) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := f.products[id]; ok {
			delete(f.products, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeProductRepo) StockReport(_ context.Context) ([]model.StockLevel, error) {
	var report []model.StockLevel
	for _, p := range f.products {
		report = append(report, model.StockLevel{Name: p.Name, Stock: p.Stock})
	}
	return report, nil
}

func TestDashboardService_MonthlyRevenue(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()

	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	addOrder := func(total int64, status string, createdAt time.Time) {
		o := &model.Order{ClientID: 1, TotalCents: total, Currency: "EUR", Status: status}
		require.NoError(t, orderRepo.Create(context.Background(), o))
		o.CreatedAt = createdAt
		orderRepo.orders[o.ID] = o
	}

	addOrder(1000, model.OrderStatusDelivered, startOfMonth.Add(24*time.Hour))
	addOrder(500, model.OrderStatusPending, startOfMonth.Add(48*time.Hour))
	// Canceled orders never count
	addOrder(9999, model.OrderStatusCanceled, startOfMonth.Add(24*time.Hour))
	// Orders from before the current month never count
	addOrder(7777, model.OrderStatusDelivered, startOfMonth.Add(-24*time.Hour))

	svc := &dashboardService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		now:         func() time.Time { return now },
	}

	report, err := svc.MonthlyRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1500), report.MonthlyRevenueCents)
	assert.NotEmpty(t, report.FormattedRevenue)
}

func TestDashboardService_StockReport(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.Create(context.Background(), &model.Product{Name: "Widget", PriceCents: 100, Stock: 7})
	productRepo.Create(context.Background(), &model.Product{Name: "Gadget", PriceCents: 200, Stock: 0})

	svc := NewDashboardService(productRepo, newFakeOrderRepo())

	report, err := svc.StockReport(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 2)

	byName := map[string]int{}
	for _, row := range report {
		byName[row.Name] = row.Stock
	}
	assert.Equal(t, 7, byName["Widget"])
	assert.Equal(t, 0, byName["Gadget"])
}
