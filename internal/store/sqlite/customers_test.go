package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/store"
)

func TestCreateAndGetCustomer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateCustomer(ctx, &domain.Customer{
		Name:  "Paul Atreides",
		Email: "paul@arrakis.example",
		Phone: "555-0100",
	})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	got, err := s.GetCustomer(ctx, id)
	if err != nil {
		t.Fatalf("GetCustomer: %v", err)
	}
	if got.Name != "Paul Atreides" {
		t.Errorf("Name: got %q, want %q", got.Name, "Paul Atreides")
	}
	if got.Email != "paul@arrakis.example" {
		t.Errorf("Email: got %q", got.Email)
	}
}

func TestUpdateCustomer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := insertTestCustomer(t, s, "Paul")

	err := s.UpdateCustomer(ctx, &domain.Customer{
		ID:    id,
		Name:  "Paul Atreides",
		Email: "muaddib@arrakis.example",
	})
	if err != nil {
		t.Fatalf("UpdateCustomer: %v", err)
	}

	got, err := s.GetCustomer(ctx, id)
	if err != nil {
		t.Fatalf("GetCustomer: %v", err)
	}
	if got.Email != "muaddib@arrakis.example" {
		t.Errorf("Email: got %q", got.Email)
	}

	err = s.UpdateCustomer(ctx, &domain.Customer{ID: 9999, Name: "Ghost"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("update missing customer: got %v, want ErrNotFound", err)
	}
}

// Deleting a customer removes their orders and every item on those
// orders in the same transaction, while other customers' data is
// untouched.
func TestDeleteCustomer_Cascade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	authorID := insertTestAuthor(t, s, "Frank Herbert")
	bookID := insertTestBook(t, s, "Dune", authorID, 15.00)

	doomed := insertTestCustomer(t, s, "Doomed Customer")
	keeper := insertTestCustomer(t, s, "Kept Customer")

	mkOrder := func(customerID int64) int64 {
		t.Helper()
		id, err := s.CreateOrder(ctx, &domain.Order{
			CustomerID:  customerID,
			OrderDate:   "2026-02-01",
			TotalAmount: 30.00,
			Items: []domain.OrderItem{
				{BookID: bookID, Quantity: 2, UnitPrice: 15.00},
			},
		})
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		return id
	}

	doomedOrder1 := mkOrder(doomed)
	doomedOrder2 := mkOrder(doomed)
	keptOrder := mkOrder(keeper)

	if err := s.DeleteCustomer(ctx, doomed); err != nil {
		t.Fatalf("DeleteCustomer: %v", err)
	}

	if _, err := s.GetCustomer(ctx, doomed); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("customer still present after delete: %v", err)
	}
	for _, orderID := range []int64{doomedOrder1, doomedOrder2} {
		if _, err := s.GetOrder(ctx, orderID); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("order %d survived cascade delete: %v", orderID, err)
		}
	}

	var orphans int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM order_items oi LEFT JOIN orders o ON oi.order_id = o.order_id WHERE o.order_id IS NULL",
	).Scan(&orphans)
	if err != nil {
		t.Fatalf("count orphan items: %v", err)
	}
	if orphans != 0 {
		t.Errorf("found %d orphaned order items after cascade delete", orphans)
	}

	// The other customer's order is intact.
	kept, err := s.GetOrder(ctx, keptOrder)
	if err != nil {
		t.Fatalf("GetOrder kept order: %v", err)
	}
	if len(kept.Items) != 1 {
		t.Errorf("kept order items: got %d, want 1", len(kept.Items))
	}
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteCustomer(context.Background(), 9999)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchCustomers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateCustomer(ctx, &domain.Customer{Name: "Paul Atreides", Email: "paul@arrakis.example"}); err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if _, err := s.CreateCustomer(ctx, &domain.Customer{Name: "Duncan Idaho", Email: "duncan@ginaz.example"}); err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	byName, err := s.SearchCustomers(ctx, "atreides")
	if err != nil {
		t.Fatalf("SearchCustomers: %v", err)
	}
	if len(byName) != 1 {
		t.Errorf("search by name: got %d rows, want 1", len(byName))
	}

	byEmail, err := s.SearchCustomers(ctx, "ginaz")
	if err != nil {
		t.Fatalf("SearchCustomers by email: %v", err)
	}
	if len(byEmail) != 1 {
		t.Errorf("search by email: got %d rows, want 1", len(byEmail))
	}
}
