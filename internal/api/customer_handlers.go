package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/service"
)

func (s *Server) registerCustomerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCustomers",
		Method:      http.MethodGet,
		Path:        "/api/v1/customers",
		Summary:     "List customers",
		Description: "Returns all customers, optionally filtered by name, email, or phone",
		Tags:        []string{"Customers"},
	}, s.handleListCustomers)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createCustomer",
		Method:        http.MethodPost,
		Path:          "/api/v1/customers",
		Summary:       "Create customer",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"Customers"},
	}, s.handleCreateCustomer)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCustomer",
		Method:      http.MethodGet,
		Path:        "/api/v1/customers/{id}",
		Summary:     "Get customer",
		Tags:        []string{"Customers"},
	}, s.handleGetCustomer)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCustomer",
		Method:      http.MethodPut,
		Path:        "/api/v1/customers/{id}",
		Summary:     "Update customer",
		Tags:        []string{"Customers"},
	}, s.handleUpdateCustomer)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteCustomer",
		Method:        http.MethodDelete,
		Path:          "/api/v1/customers/{id}",
		Summary:       "Delete customer",
		Description:   "Deletes a customer together with all of their orders.",
		DefaultStatus: http.StatusNoContent,
		Tags:          []string{"Customers"},
	}, s.handleDeleteCustomer)
}

// === Request/response types ===

type CustomerResponse struct {
	ID    int64  `json:"id" doc:"Customer ID"`
	Name  string `json:"name" doc:"Customer name"`
	Email string `json:"email,omitempty" doc:"Email address"`
	Phone string `json:"phone,omitempty" doc:"Phone number"`
}

type ListCustomersInput struct {
	Query string `query:"q" doc:"Search by name, email, or phone"`
}

type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers" doc:"List of customers"`
}

type ListCustomersOutput struct {
	Body ListCustomersResponse
}

type CustomerRequestBody struct {
	Name  string `json:"name" doc:"Customer name"`
	Email string `json:"email,omitempty" doc:"Email address"`
	Phone string `json:"phone,omitempty" doc:"Phone number"`
}

type CreateCustomerInput struct {
	Body CustomerRequestBody
}

type CustomerOutput struct {
	Body CustomerResponse
}

type GetCustomerInput struct {
	ID int64 `path:"id" doc:"Customer ID"`
}

type UpdateCustomerInput struct {
	ID   int64 `path:"id" doc:"Customer ID"`
	Body CustomerRequestBody
}

type DeleteCustomerInput struct {
	ID int64 `path:"id" doc:"Customer ID"`
}

// === Handlers ===

func (s *Server) handleListCustomers(ctx context.Context, input *ListCustomersInput) (*ListCustomersOutput, error) {
	customers, err := s.services.Customer.SearchCustomers(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	resp := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		resp[i] = mapCustomerResponse(c)
	}
	return &ListCustomersOutput{Body: ListCustomersResponse{Customers: resp}}, nil
}

func (s *Server) handleCreateCustomer(ctx context.Context, input *CreateCustomerInput) (*CustomerOutput, error) {
	c, err := s.services.Customer.CreateCustomer(ctx, service.CustomerRequest{
		Name:  input.Body.Name,
		Email: input.Body.Email,
		Phone: input.Body.Phone,
	})
	if err != nil {
		return nil, err
	}
	return &CustomerOutput{Body: mapCustomerResponse(c)}, nil
}

func (s *Server) handleGetCustomer(ctx context.Context, input *GetCustomerInput) (*CustomerOutput, error) {
	c, err := s.services.Customer.GetCustomer(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &CustomerOutput{Body: mapCustomerResponse(c)}, nil
}

func (s *Server) handleUpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*CustomerOutput, error) {
	c, err := s.services.Customer.UpdateCustomer(ctx, input.ID, service.CustomerRequest{
		Name:  input.Body.Name,
		Email: input.Body.Email,
		Phone: input.Body.Phone,
	})
	if err != nil {
		return nil, err
	}
	return &CustomerOutput{Body: mapCustomerResponse(c)}, nil
}

func (s *Server) handleDeleteCustomer(ctx context.Context, input *DeleteCustomerInput) (*DeleteOutput, error) {
	if err := s.services.Customer.DeleteCustomer(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func mapCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}
