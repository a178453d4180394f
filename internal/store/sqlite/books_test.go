package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/store"
)

func TestCreateAndGetBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	authorID := insertTestAuthor(t, s, "Frank Herbert")
	id, err := s.CreateBook(ctx, &domain.Book{
		Title:           "Dune",
		AuthorID:        authorID,
		Genre:           "Science Fiction",
		Price:           15.99,
		PublicationDate: "1965-08-01",
	})
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	got, err := s.GetBook(ctx, id)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.Title != "Dune" {
		t.Errorf("Title: got %q, want %q", got.Title, "Dune")
	}
	if got.AuthorName != "Frank Herbert" {
		t.Errorf("AuthorName: got %q, want %q", got.AuthorName, "Frank Herbert")
	}
	if got.Price != 15.99 {
		t.Errorf("Price: got %v, want 15.99", got.Price)
	}
}

func TestGetBook_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetBook(context.Background(), 9999)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	authorID := insertTestAuthor(t, s, "Frank Herbert")
	id := insertTestBook(t, s, "Dune", authorID, 15.99)

	err := s.UpdateBook(ctx, &domain.Book{
		ID:       id,
		Title:    "Dune Messiah",
		AuthorID: authorID,
		Genre:    "Science Fiction",
		Price:    12.50,
	})
	if err != nil {
		t.Fatalf("UpdateBook: %v", err)
	}

	got, err := s.GetBook(ctx, id)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.Title != "Dune Messiah" {
		t.Errorf("Title: got %q, want %q", got.Title, "Dune Messiah")
	}
	if got.Price != 12.50 {
		t.Errorf("Price: got %v, want 12.50", got.Price)
	}

	err = s.UpdateBook(ctx, &domain.Book{ID: 9999, Title: "Ghost", AuthorID: authorID})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("update missing book: got %v, want ErrNotFound", err)
	}
}

func TestDeleteBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	authorID := insertTestAuthor(t, s, "Frank Herbert")
	id := insertTestBook(t, s, "Dune", authorID, 15.99)

	if err := s.DeleteBook(ctx, id); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
	if _, err := s.GetBook(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("book still present after delete: %v", err)
	}

	if err := s.DeleteBook(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("delete missing book: got %v, want ErrNotFound", err)
	}
}

func TestDeleteBook_OnOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	authorID := insertTestAuthor(t, s, "Frank Herbert")
	bookID := insertTestBook(t, s, "Dune", authorID, 15.00)
	customerID := insertTestCustomer(t, s, "Paul Atreides")

	_, err := s.CreateOrder(ctx, &domain.Order{
		CustomerID:  customerID,
		OrderDate:   "2026-01-15",
		TotalAmount: 15.00,
		Items: []domain.OrderItem{
			{BookID: bookID, Quantity: 1, UnitPrice: 15.00},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if err := s.DeleteBook(ctx, bookID); !errors.Is(err, store.ErrReferenced) {
		t.Fatalf("expected ErrReferenced, got %v", err)
	}
	if _, err := s.GetBook(ctx, bookID); err != nil {
		t.Errorf("GetBook after refused delete: %v", err)
	}
}

func TestSearchBooks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	herbert := insertTestAuthor(t, s, "Frank Herbert")
	leguin := insertTestAuthor(t, s, "Ursula K. Le Guin")
	insertTestBook(t, s, "Dune", herbert, 15.99)
	insertTestBook(t, s, "Dune Messiah", herbert, 12.50)
	insertTestBook(t, s, "The Dispossessed", leguin, 10.00)

	byTitle, err := s.SearchBooks(ctx, "dune")
	if err != nil {
		t.Fatalf("SearchBooks by title: %v", err)
	}
	if len(byTitle) != 2 {
		t.Errorf("search by title: got %d rows, want 2", len(byTitle))
	}

	byAuthor, err := s.SearchBooks(ctx, "le guin")
	if err != nil {
		t.Fatalf("SearchBooks by author: %v", err)
	}
	if len(byAuthor) != 1 {
		t.Errorf("search by author: got %d rows, want 1", len(byAuthor))
	}
}
