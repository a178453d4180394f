package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
	"github.com/pageturnapp/pageturn-server/internal/validation"
)

// CustomerService orchestrates customer operations.
type CustomerService struct {
	store     *sqlite.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(store *sqlite.Store, validator *validation.Validator, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CustomerRequest contains the customer fields accepted on create and update.
type CustomerRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty" validate:"max=50"`
}

// CreateCustomer registers a new customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, req CustomerRequest) (*domain.Customer, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	id, err := s.store.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	customer.ID = id

	s.logger.Info("customer created", "customer_id", id, "name", customer.Name)
	return customer, nil
}

// GetCustomer retrieves a single customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.store.GetCustomer(ctx, id)
}

// ListCustomers returns all customers.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.store.ListCustomers(ctx)
}

// SearchCustomers returns customers whose name, email, or phone matches the query.
func (s *CustomerService) SearchCustomers(ctx context.Context, query string) ([]*domain.Customer, error) {
	if query == "" {
		return s.store.ListCustomers(ctx)
	}
	return s.store.SearchCustomers(ctx, query)
}

// UpdateCustomer replaces a customer's fields.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, req CustomerRequest) (*domain.Customer, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.store.UpdateCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.logger.Info("customer updated", "customer_id", id)
	return customer, nil
}

// DeleteCustomer removes a customer together with all of their orders
// and order items in a single transaction.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	s.logger.Info("customer deleted with orders", "customer_id", id)
	return nil
}
