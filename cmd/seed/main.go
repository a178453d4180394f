// Package main provides a tool to seed the database with sample bookstore data.
//
// It creates a handful of authors, books, customers, and orders through the
// service layer so the catalog and reports have something to show.
//
// Usage:
//
//	DB_PATH=~/PageTurn/bookstore.db go run ./cmd/seed
package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/pageturnapp/pageturn-server/internal/service"
	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
	"github.com/pageturnapp/pageturn-server/internal/validation"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/PageTurn/bookstore.db")
	}

	log.Printf("Opening database at: %s", dbPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := sqlite.Open(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	v := validation.New()
	authors := service.NewAuthorService(st, v, logger)
	books := service.NewBookService(st, v, logger)
	customers := service.NewCustomerService(st, v, logger)
	orders := service.NewOrderService(st, v, logger)

	ctx := context.Background()

	for _, a := range []service.AuthorRequest{
		{Name: "Frank Herbert", BirthDate: "1920-10-08"},
		{Name: "Ursula K. Le Guin", BirthDate: "1929-10-21"},
		{Name: "Octavia E. Butler", BirthDate: "1947-06-22"},
	} {
		if _, err := authors.CreateAuthor(ctx, a); err != nil {
			log.Fatalf("Failed to create author %q: %v", a.Name, err)
		}
	}
	log.Println("Created 3 authors")

	for _, b := range []service.BookRequest{
		{Title: "Dune", AuthorName: "Frank Herbert", Genre: "Science Fiction", Price: 15.99, PublicationDate: "1965-08-01"},
		{Title: "Dune Messiah", AuthorName: "Frank Herbert", Genre: "Science Fiction", Price: 12.50, PublicationDate: "1969-10-15"},
		{Title: "The Left Hand of Darkness", AuthorName: "Ursula K. Le Guin", Genre: "Science Fiction", Price: 11.00, PublicationDate: "1969-03-01"},
		{Title: "The Dispossessed", AuthorName: "Ursula K. Le Guin", Genre: "Utopian", Price: 10.00, PublicationDate: "1974-05-01"},
		{Title: "Kindred", AuthorName: "Octavia E. Butler", Genre: "Historical Fiction", Price: 13.25, PublicationDate: "1979-06-01"},
	} {
		if _, err := books.CreateBook(ctx, b); err != nil {
			log.Fatalf("Failed to create book %q: %v", b.Title, err)
		}
	}
	log.Println("Created 5 books")

	for _, c := range []service.CustomerRequest{
		{Name: "Paul Atreides", Email: "paul@arrakis.example", Phone: "555-0100"},
		{Name: "Duncan Idaho", Email: "duncan@ginaz.example", Phone: "555-0101"},
		{Name: "Shevek Anarres", Email: "shevek@abbenay.example"},
	} {
		if _, err := customers.CreateCustomer(ctx, c); err != nil {
			log.Fatalf("Failed to create customer %q: %v", c.Name, err)
		}
	}
	log.Println("Created 3 customers")

	for _, o := range []service.CreateOrderRequest{
		{
			CustomerName: "Paul Atreides",
			OrderDate:    "2026-08-01",
			Lines: []service.OrderLineRequest{
				{BookTitle: "Dune", Quantity: 2, UnitPrice: 15.99},
				{BookTitle: "Dune Messiah", Quantity: 1, UnitPrice: 12.50},
			},
		},
		{
			CustomerName: "Duncan Idaho",
			OrderDate:    "2026-08-15",
			Lines: []service.OrderLineRequest{
				{BookTitle: "The Left Hand of Darkness", Quantity: 1, UnitPrice: 11.00},
			},
		},
		{
			CustomerName: "Shevek Anarres",
			OrderDate:    "2026-08-20",
			Lines: []service.OrderLineRequest{
				{BookTitle: "The Dispossessed", Quantity: 3, UnitPrice: 10.00},
				{BookTitle: "Kindred", Quantity: 1, UnitPrice: 13.25},
			},
		},
	} {
		order, err := orders.CreateOrder(ctx, o)
		if err != nil {
			log.Fatalf("Failed to create order for %q: %v", o.CustomerName, err)
		}
		log.Printf("Created order %d for %s, total %.2f", order.ID, order.CustomerName, order.TotalAmount)
	}

	log.Println("Seed complete")
}
