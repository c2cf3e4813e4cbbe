package service

import (
	"context"
	"errors"
	"fmt"

	"commerce_api/internal/model"
	"commerce_api/internal/repository"
	"commerce_api/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// OrderService provides order operations. The total is always recomputed
// server-side from the item lines; a client-supplied total is ignored.
type OrderService interface {
	Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetAll(ctx context.Context) ([]model.Order, error)
	GetByClient(ctx context.Context, clientID int) ([]model.Order, error)
	Update(ctx context.Context, id int64, req model.UpdateOrderRequest) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
	ChangeStatus(ctx context.Context, id int64, status string) (*model.Order, error)
}

type orderService struct {
	orderRepo  repository.OrderRepository
	clientRepo repository.ClientRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, clientRepo repository.ClientRepository) OrderService {
	return &orderService{orderRepo: orderRepo, clientRepo: clientRepo}
}

func itemsFromRequest(reqItems []model.OrderItemRequest) ([]model.OrderItem, int64) {
	items := make([]model.OrderItem, 0, len(reqItems))
	var total int64
	for _, it := range reqItems {
		items = append(items, model.OrderItem{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		})
		total += int64(it.Quantity) * it.UnitPriceCents
	}
	return items, total
}

func withFormattedTotal(o *model.Order) *model.Order {
	o.FormattedTotal = utils.FormatCurrency(o.TotalCents, o.Currency)
	return o
}

func (s *orderService) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	currency := req.Currency
	if currency == "" {
		currency = utils.DefaultCurrency
	}
	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	items, total := itemsFromRequest(req.Items)
	order := &model.Order{
		Reference:  uuid.NewString(),
		ClientID:   req.ClientID,
		Items:      items,
		TotalCents: total,
		Currency:   currency,
		Status:     status,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Record the purchase on the client's history as well
	if err := s.clientRepo.AddOrderToHistory(ctx, order.ClientID, order.ID); err != nil {
		return nil, fmt.Errorf("failed to record order in purchase history: %w", err)
	}

	return withFormattedTotal(order), nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return withFormattedTotal(order), nil
}

func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	for i := range orders {
		withFormattedTotal(&orders[i])
	}
	return orders, nil
}

func (s *orderService) GetByClient(ctx context.Context, clientID int) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for client: %w", err)
	}
	for i := range orders {
		withFormattedTotal(&orders[i])
	}
	return orders, nil
}

func (s *orderService) Update(ctx context.Context, id int64, req model.UpdateOrderRequest) (*model.Order, error) {
	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find order for update: %w", err)
	}
	if existing == nil {
		return nil, ErrOrderNotFound
	}

	items, total := itemsFromRequest(req.Items)
	existing.Items = items
	existing.TotalCents = total
	if req.Currency != nil {
		existing.Currency = *req.Currency
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}

	if err := s.orderRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return withFormattedTotal(existing), nil
}

func (s *orderService) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (s *orderService) ChangeStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to change order status: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return withFormattedTotal(order), nil
}
