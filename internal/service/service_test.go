package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
	"github.com/pageturnapp/pageturn-server/internal/validation"
	"github.com/stretchr/testify/require"
)

// setupTestServices opens a fresh store on a temp database and wires
// every service against it.
func setupTestServices(t *testing.T) (*sqlite.Store, *testServices) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := sqlite.Open(dbPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	v := validation.New()
	return st, &testServices{
		authors:   NewAuthorService(st, v, logger),
		books:     NewBookService(st, v, logger),
		customers: NewCustomerService(st, v, logger),
		orders:    NewOrderService(st, v, logger),
		catalog:   NewCatalogService(st, logger),
		reports:   NewReportService(st, logger),
		exports:   NewExportService(st, logger),
	}
}

type testServices struct {
	authors   *AuthorService
	books     *BookService
	customers *CustomerService
	orders    *OrderService
	catalog   *CatalogService
	reports   *ReportService
	exports   *ExportService
}

// seedCatalog creates one author, two books, and one customer that the
// order and export tests compose against.
func seedCatalog(t *testing.T, svc *testServices) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.authors.CreateAuthor(ctx, AuthorRequest{Name: "Frank Herbert", BirthDate: "1920-10-08"})
	require.NoError(t, err)

	_, err = svc.books.CreateBook(ctx, BookRequest{
		Title: "Dune", AuthorName: "Frank Herbert", Genre: "Science Fiction", Price: 10.00,
	})
	require.NoError(t, err)
	_, err = svc.books.CreateBook(ctx, BookRequest{
		Title: "Dune Messiah", AuthorName: "Frank Herbert", Genre: "Science Fiction", Price: 5.00,
	})
	require.NoError(t, err)

	_, err = svc.customers.CreateCustomer(ctx, CustomerRequest{
		Name: "Paul Atreides", Email: "paul@arrakis.example",
	})
	require.NoError(t, err)
}
