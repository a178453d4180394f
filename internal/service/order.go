package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	domainerrors "github.com/pageturnapp/pageturn-server/internal/errors"
	"github.com/pageturnapp/pageturn-server/internal/store"
	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
	"github.com/pageturnapp/pageturn-server/internal/validation"
)

// OrderService orchestrates order composition and persistence. The order
// total is always computed from the line items, never taken from the
// caller, so a stored order's total matches the sum of its subtotals.
type OrderService struct {
	store     *sqlite.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(store *sqlite.Store, validator *validation.Validator, logger *slog.Logger) *OrderService {
	return &OrderService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// OrderLineRequest is one composed line of an order. The unit price is
// the price the client captured when the line was added, so later catalog
// price changes do not silently reprice the order.
type OrderLineRequest struct {
	BookTitle string  `json:"book_title" validate:"required"`
	Quantity  int     `json:"quantity" validate:"min=1,max=100"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// CreateOrderRequest contains a full order to persist. The customer and
// every book are referenced by name and resolved against the catalog.
type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"required"`
	OrderDate    string             `json:"order_date" validate:"required,datetime=2006-01-02"`
	Lines        []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateOrderRequest contains the replacement date and line set for an
// existing order. The order's customer is not changed on update.
type UpdateOrderRequest struct {
	OrderDate string             `json:"order_date" validate:"required,datetime=2006-01-02"`
	Lines     []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// CreateOrder resolves all names against the catalog, computes the total
// from the lines, and persists the order with its items atomically.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	customerID, err := s.resolveCustomer(ctx, req.CustomerName)
	if err != nil {
		return nil, err
	}
	items, total, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		CustomerID:  customerID,
		OrderDate:   req.OrderDate,
		TotalAmount: total,
		Items:       items,
	}
	id, err := s.store.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		"order_id", id,
		"customer", req.CustomerName,
		"lines", len(items),
		"total", total,
	)
	return s.store.GetOrder(ctx, id)
}

// GetOrder retrieves an order with its line items.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// ListOrders returns all orders, items included.
func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.store.ListOrders(ctx)
}

// SearchOrders returns orders whose customer, date, or total matches the query.
func (s *OrderService) SearchOrders(ctx context.Context, query string) ([]*domain.Order, error) {
	if query == "" {
		return s.store.ListOrders(ctx)
	}
	return s.store.SearchOrders(ctx, query)
}

// UpdateOrder replaces an order's date and full line set. The total is
// recomputed from the new lines.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, req UpdateOrderRequest) (*domain.Order, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	items, total, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:          id,
		OrderDate:   req.OrderDate,
		TotalAmount: total,
		Items:       items,
	}
	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.logger.Info("order updated", "order_id", id, "lines", len(items), "total", total)
	return s.store.GetOrder(ctx, id)
}

// DeleteOrder removes an order and its items. Deleting an order that no
// longer exists is not an error.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	n, err := s.store.DeleteOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if n == 0 {
		s.logger.Info("order already absent", "order_id", id)
		return nil
	}

	s.logger.Info("order deleted", "order_id", id)
	return nil
}

func (s *OrderService) resolveCustomer(ctx context.Context, name string) (int64, error) {
	id, err := s.store.FindCustomerIDByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, domainerrors.Validationf("customer %q not found", name)
		}
		return 0, fmt.Errorf("resolve customer: %w", err)
	}
	return id, nil
}

// resolveLines maps every line's book title to its catalog ID before
// anything is written, so an unknown title fails the whole request up
// front. Returns the items alongside the computed order total.
func (s *OrderService) resolveLines(ctx context.Context, lines []OrderLineRequest) ([]domain.OrderItem, float64, error) {
	items := make([]domain.OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		bookID, err := s.store.FindBookIDByTitle(ctx, line.BookTitle)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, 0, domainerrors.Validationf("book %q not found", line.BookTitle)
			}
			return nil, 0, fmt.Errorf("resolve book: %w", err)
		}
		item := domain.OrderItem{
			BookID:    bookID,
			BookTitle: line.BookTitle,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
		items = append(items, item)
		total += item.Subtotal()
	}
	return items, domain.Round2(total), nil
}
