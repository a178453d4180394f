package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_API(t *testing.T) {
	ts := setupTestServer(t)
	ts.seedTestCatalog(t)

	resp := ts.api.Post("/api/v1/orders", map[string]any{
		"customer_name": "Paul Atreides",
		"order_date":    "2026-01-15",
		"lines": []map[string]any{
			{"book_title": "Dune", "quantity": 2, "unit_price": 10.00},
			{"book_title": "Dune Messiah", "quantity": 2, "unit_price": 5.00},
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var order OrderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &order))

	assert.Equal(t, "Paul Atreides", order.CustomerName)
	assert.Equal(t, 30.00, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 20.00, order.Items[0].Subtotal)

	// Round trip.
	resp = ts.api.Get("/api/v1/orders/" + itoa(order.ID))
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestCreateOrder_API_UnknownBook(t *testing.T) {
	ts := setupTestServer(t)
	ts.seedTestCatalog(t)

	resp := ts.api.Post("/api/v1/orders", map[string]any{
		"customer_name": "Paul Atreides",
		"order_date":    "2026-01-15",
		"lines": []map[string]any{
			{"book_title": "No Such Book", "quantity": 1, "unit_price": 10.00},
		},
	})
	require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), "No Such Book")
}

func TestCreateOrder_API_BadQuantity(t *testing.T) {
	ts := setupTestServer(t)
	ts.seedTestCatalog(t)

	for _, qty := range []int{0, -1, 101} {
		resp := ts.api.Post("/api/v1/orders", map[string]any{
			"customer_name": "Paul Atreides",
			"order_date":    "2026-01-15",
			"lines": []map[string]any{
				{"book_title": "Dune", "quantity": qty, "unit_price": 10.00},
			},
		})
		require.Equal(t, http.StatusBadRequest, resp.Code, "quantity %d: %s", qty, resp.Body.String())
	}
}

func TestUpdateOrder_API(t *testing.T) {
	ts := setupTestServer(t)
	ts.seedTestCatalog(t)

	resp := ts.api.Post("/api/v1/orders", map[string]any{
		"customer_name": "Paul Atreides",
		"order_date":    "2026-01-15",
		"lines": []map[string]any{
			{"book_title": "Dune", "quantity": 2, "unit_price": 10.00},
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created OrderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	resp = ts.api.Put("/api/v1/orders/"+itoa(created.ID), map[string]any{
		"order_date": "2026-01-16",
		"lines": []map[string]any{
			{"book_title": "Dune Messiah", "quantity": 3, "unit_price": 5.00},
		},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated OrderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, 15.00, updated.TotalAmount)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Dune Messiah", updated.Items[0].BookTitle)
	assert.Equal(t, "Paul Atreides", updated.CustomerName)
}

func TestDeleteOrder_API_Idempotent(t *testing.T) {
	ts := setupTestServer(t)
	ts.seedTestCatalog(t)

	resp := ts.api.Post("/api/v1/orders", map[string]any{
		"customer_name": "Paul Atreides",
		"order_date":    "2026-01-15",
		"lines": []map[string]any{
			{"book_title": "Dune", "quantity": 1, "unit_price": 10.00},
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created OrderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	resp = ts.api.Delete("/api/v1/orders/" + itoa(created.ID))
	require.Equal(t, http.StatusNoContent, resp.Code)

	// Deleting again still succeeds.
	resp = ts.api.Delete("/api/v1/orders/" + itoa(created.ID))
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = ts.api.Get("/api/v1/orders/" + itoa(created.ID))
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteCustomer_API_CascadesOrders(t *testing.T) {
	ts := setupTestServer(t)
	ts.seedTestCatalog(t)

	resp := ts.api.Post("/api/v1/orders", map[string]any{
		"customer_name": "Paul Atreides",
		"order_date":    "2026-01-15",
		"lines": []map[string]any{
			{"book_title": "Dune", "quantity": 1, "unit_price": 10.00},
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created OrderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	var customers ListCustomersResponse
	resp = ts.api.Get("/api/v1/customers")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &customers))
	require.Len(t, customers.Customers, 1)

	resp = ts.api.Delete("/api/v1/customers/" + itoa(customers.Customers[0].ID))
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = ts.api.Get("/api/v1/orders/" + itoa(created.ID))
	require.Equal(t, http.StatusNotFound, resp.Code)
}
