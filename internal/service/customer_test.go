package service

import (
	"context"
	"errors"
	"testing"

	domainerrors "github.com/pageturnapp/pageturn-server/internal/errors"
	"github.com/pageturnapp/pageturn-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCRUD(t *testing.T) {
	_, svc := setupTestServices(t)
	ctx := context.Background()

	created, err := svc.customers.CreateCustomer(ctx, CustomerRequest{
		Name:  "Duncan Idaho",
		Email: "duncan@ginaz.example",
		Phone: "555-0101",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.customers.GetCustomer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Duncan Idaho", got.Name)

	updated, err := svc.customers.UpdateCustomer(ctx, created.ID, CustomerRequest{
		Name:  "Duncan Idaho",
		Email: "duncan@atreides.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "duncan@atreides.example", updated.Email)

	require.NoError(t, svc.customers.DeleteCustomer(ctx, created.ID))

	_, err = svc.customers.GetCustomer(ctx, created.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound), "expected not found, got %v", err)
}

func TestCreateCustomer_Invalid(t *testing.T) {
	_, svc := setupTestServices(t)

	_, err := svc.customers.CreateCustomer(context.Background(), CustomerRequest{
		Name:  "",
		Email: "not-an-email",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation), "expected validation error, got %v", err)
}

// Deleting a customer takes their orders along.
func TestDeleteCustomer_RemovesOrders(t *testing.T) {
	_, svc := setupTestServices(t)
	seedCatalog(t, svc)
	ctx := context.Background()

	created, err := svc.orders.CreateOrder(ctx, CreateOrderRequest{
		CustomerName: "Paul Atreides",
		OrderDate:    "2026-01-15",
		Lines:        []OrderLineRequest{{BookTitle: "Dune", Quantity: 1, UnitPrice: 10.00}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.customers.DeleteCustomer(ctx, created.CustomerID))

	_, err = svc.orders.GetOrder(ctx, created.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound), "expected not found, got %v", err)
}
