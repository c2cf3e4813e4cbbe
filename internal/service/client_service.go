package service

import (
	"context"
	"errors"
	"fmt"

	"commerce_api/internal/model"
	"commerce_api/internal/repository"

	"github.com/jackc/pgx/v5"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrClientEmailExists = errors.New("client with this email already exists")
	ErrOrderNotFound     = errors.New("order not found")
)

// ClientService provides operations on clients and their purchase history
type ClientService interface {
	Create(ctx context.Context, req model.CreateClientRequest) (*model.Client, error)
	GetByID(ctx context.Context, id int) (*model.Client, error)
	GetActive(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, id int, req model.UpdateClientRequest) (*model.Client, error)
	ToggleActive(ctx context.Context, id int) (*model.Client, error)
	AddOrderToHistory(ctx context.Context, clientID int, orderID int64) (*model.Client, error)
	RemoveOrderFromHistory(ctx context.Context, clientID int, orderID int64) (*model.Client, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
	orderRepo  repository.OrderRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo repository.ClientRepository, orderRepo repository.OrderRepository) ClientService {
	return &clientService{clientRepo: clientRepo, orderRepo: orderRepo}
}

func (s *clientService) Create(ctx context.Context, req model.CreateClientRequest) (*model.Client, error) {
	client := &model.Client{
		Name:            req.Name,
		Address:         req.Address,
		Email:           req.Email,
		Phone:           req.Phone,
		Active:          true,
		PurchaseHistory: []int64{},
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrClientEmailExists
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id int) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func (s *clientService) GetActive(ctx context.Context) ([]model.Client, error) {
	clients, err := s.clientRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) Update(ctx context.Context, id int, req model.UpdateClientRequest) (*model.Client, error) {
	existing, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}
	if existing == nil {
		return nil, ErrClientNotFound
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}

	if err := s.clientRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrClientEmailExists
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return existing, nil
}

// ToggleActive flips the client's active flag and returns the updated record
func (s *clientService) ToggleActive(ctx context.Context, id int) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	client.Active = !client.Active
	if err := s.clientRepo.SetActive(ctx, id, client.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to toggle client status: %w", err)
	}
	return client, nil
}

func (s *clientService) AddOrderToHistory(ctx context.Context, clientID int, orderID int64) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.clientRepo.AddOrderToHistory(ctx, clientID, orderID); err != nil {
		return nil, fmt.Errorf("failed to add order to history: %w", err)
	}
	return s.GetByID(ctx, clientID)
}

func (s *clientService) RemoveOrderFromHistory(ctx context.Context, clientID int, orderID int64) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	if err := s.clientRepo.RemoveOrderFromHistory(ctx, clientID, orderID); err != nil {
		return nil, fmt.Errorf("failed to remove order from history: %w", err)
	}
	return s.GetByID(ctx, clientID)
}
