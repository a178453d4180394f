package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/service"
)

func (s *Server) registerOrderRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listOrders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "List orders",
		Description: "Returns all orders with their items, optionally filtered by customer, date, or total",
		Tags:        []string{"Orders"},
	}, s.handleListOrders)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createOrder",
		Method:        http.MethodPost,
		Path:          "/api/v1/orders",
		Summary:       "Create order",
		Description:   "Persists a composed order. The total is computed from the lines.",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"Orders"},
	}, s.handleCreateOrder)

	huma.Register(s.api, huma.Operation{
		OperationID: "getOrder",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{id}",
		Summary:     "Get order",
		Tags:        []string{"Orders"},
	}, s.handleGetOrder)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateOrder",
		Method:      http.MethodPut,
		Path:        "/api/v1/orders/{id}",
		Summary:     "Update order",
		Description: "Replaces the order's date and full line set. The customer is unchanged.",
		Tags:        []string{"Orders"},
	}, s.handleUpdateOrder)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteOrder",
		Method:        http.MethodDelete,
		Path:          "/api/v1/orders/{id}",
		Summary:       "Delete order",
		Description:   "Deletes an order and its items. Deleting a missing order succeeds.",
		DefaultStatus: http.StatusNoContent,
		Tags:          []string{"Orders"},
	}, s.handleDeleteOrder)
}

// === Request/response types ===

type OrderItemResponse struct {
	BookTitle string  `json:"book_title" doc:"Book title"`
	Quantity  int     `json:"quantity" doc:"Quantity ordered"`
	UnitPrice float64 `json:"unit_price" doc:"Price per copy at order time"`
	Subtotal  float64 `json:"subtotal" doc:"Quantity times unit price"`
}

type OrderResponse struct {
	ID           int64               `json:"id" doc:"Order ID"`
	CustomerName string              `json:"customer_name" doc:"Customer name"`
	OrderDate    string              `json:"order_date" doc:"Order date (YYYY-MM-DD)"`
	TotalAmount  float64             `json:"total_amount" doc:"Sum of line subtotals"`
	Items        []OrderItemResponse `json:"items" doc:"Order line items"`
}

type ListOrdersInput struct {
	Query string `query:"q" doc:"Search by customer, date, or total"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders" doc:"List of orders"`
}

type ListOrdersOutput struct {
	Body ListOrdersResponse
}

type OrderLineBody struct {
	BookTitle string  `json:"book_title" doc:"Book title, must exist in the catalog"`
	Quantity  int     `json:"quantity" doc:"Quantity, 1 to 100"`
	UnitPrice float64 `json:"unit_price" doc:"Price per copy captured when the line was added"`
}

type CreateOrderBody struct {
	CustomerName string          `json:"customer_name" doc:"Customer name, must exist"`
	OrderDate    string          `json:"order_date" doc:"Order date (YYYY-MM-DD)"`
	Lines        []OrderLineBody `json:"lines" doc:"Order lines, at least one"`
}

type CreateOrderInput struct {
	Body CreateOrderBody
}

type OrderOutput struct {
	Body OrderResponse
}

type GetOrderInput struct {
	ID int64 `path:"id" doc:"Order ID"`
}

type UpdateOrderBody struct {
	OrderDate string          `json:"order_date" doc:"Order date (YYYY-MM-DD)"`
	Lines     []OrderLineBody `json:"lines" doc:"Replacement order lines, at least one"`
}

type UpdateOrderInput struct {
	ID   int64 `path:"id" doc:"Order ID"`
	Body UpdateOrderBody
}

type DeleteOrderInput struct {
	ID int64 `path:"id" doc:"Order ID"`
}

// === Handlers ===

func (s *Server) handleListOrders(ctx context.Context, input *ListOrdersInput) (*ListOrdersOutput, error) {
	orders, err := s.services.Order.SearchOrders(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	resp := make([]OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = mapOrderResponse(o)
	}
	return &ListOrdersOutput{Body: ListOrdersResponse{Orders: resp}}, nil
}

func (s *Server) handleCreateOrder(ctx context.Context, input *CreateOrderInput) (*OrderOutput, error) {
	o, err := s.services.Order.CreateOrder(ctx, service.CreateOrderRequest{
		CustomerName: input.Body.CustomerName,
		OrderDate:    input.Body.OrderDate,
		Lines:        orderLinesFromBody(input.Body.Lines),
	})
	if err != nil {
		return nil, err
	}
	return &OrderOutput{Body: mapOrderResponse(o)}, nil
}

func (s *Server) handleGetOrder(ctx context.Context, input *GetOrderInput) (*OrderOutput, error) {
	o, err := s.services.Order.GetOrder(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &OrderOutput{Body: mapOrderResponse(o)}, nil
}

func (s *Server) handleUpdateOrder(ctx context.Context, input *UpdateOrderInput) (*OrderOutput, error) {
	o, err := s.services.Order.UpdateOrder(ctx, input.ID, service.UpdateOrderRequest{
		OrderDate: input.Body.OrderDate,
		Lines:     orderLinesFromBody(input.Body.Lines),
	})
	if err != nil {
		return nil, err
	}
	return &OrderOutput{Body: mapOrderResponse(o)}, nil
}

func (s *Server) handleDeleteOrder(ctx context.Context, input *DeleteOrderInput) (*DeleteOutput, error) {
	if err := s.services.Order.DeleteOrder(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func orderLinesFromBody(lines []OrderLineBody) []service.OrderLineRequest {
	out := make([]service.OrderLineRequest, len(lines))
	for i, l := range lines {
		out[i] = service.OrderLineRequest{
			BookTitle: l.BookTitle,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	return out
}

func mapOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			BookTitle: it.BookTitle,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal(),
		}
	}
	return OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		OrderDate:    o.OrderDate,
		TotalAmount:  o.TotalAmount,
		Items:        items,
	}
}
