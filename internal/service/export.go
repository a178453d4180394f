package service

import (
	"context"
	"fmt"
	"log/slog"

	domainerrors "github.com/pageturnapp/pageturn-server/internal/errors"
	"github.com/pageturnapp/pageturn-server/internal/export"
	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
)

// Dataset names accepted by ExportService.Table.
const (
	DatasetAuthors          = "authors"
	DatasetBooks            = "books"
	DatasetCustomers        = "customers"
	DatasetOrders           = "orders"
	DatasetSalesByGenre     = "sales-by-genre"
	DatasetTopSellers       = "top-sellers"
	DatasetCustomerSpending = "customer-spending"
)

// ExportService turns catalog lists and reports into tables for CSV
// download.
type ExportService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewExportService creates a new export service.
func NewExportService(store *sqlite.Store, logger *slog.Logger) *ExportService {
	return &ExportService{
		store:  store,
		logger: logger,
	}
}

// Table builds the export table for a named dataset. Unknown names are
// a validation error.
func (s *ExportService) Table(ctx context.Context, dataset string) (export.Table, error) {
	var (
		t   export.Table
		err error
	)
	switch dataset {
	case DatasetAuthors:
		t, err = s.authorsTable(ctx)
	case DatasetBooks:
		t, err = s.booksTable(ctx)
	case DatasetCustomers:
		t, err = s.customersTable(ctx)
	case DatasetOrders:
		t, err = s.ordersTable(ctx)
	case DatasetSalesByGenre:
		t, err = s.salesByGenreTable(ctx)
	case DatasetTopSellers:
		t, err = s.topSellersTable(ctx)
	case DatasetCustomerSpending:
		t, err = s.customerSpendingTable(ctx)
	default:
		return export.Table{}, domainerrors.Validationf("unknown dataset %q", dataset)
	}
	if err != nil {
		return export.Table{}, fmt.Errorf("export %s: %w", dataset, err)
	}

	s.logger.Info("dataset exported", "dataset", dataset, "rows", len(t.Rows))
	return t, nil
}

func (s *ExportService) authorsTable(ctx context.Context) (export.Table, error) {
	authors, err := s.store.ListAuthors(ctx)
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{Headers: []string{"ID", "Name", "Birth Date"}}
	for _, a := range authors {
		t.Rows = append(t.Rows, []any{a.ID, a.Name, a.BirthDate})
	}
	return t, nil
}

func (s *ExportService) booksTable(ctx context.Context) (export.Table, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{Headers: []string{"ID", "Title", "Author", "Genre", "Price", "Publication Date"}}
	for _, b := range books {
		t.Rows = append(t.Rows, []any{b.ID, b.Title, b.AuthorName, b.Genre, b.Price, b.PublicationDate})
	}
	return t, nil
}

func (s *ExportService) customersTable(ctx context.Context) (export.Table, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{Headers: []string{"ID", "Name", "Email", "Phone"}}
	for _, c := range customers {
		t.Rows = append(t.Rows, []any{c.ID, c.Name, c.Email, c.Phone})
	}
	return t, nil
}

// ordersTable flattens orders to one row per line item, the way the
// order list reads on screen.
func (s *ExportService) ordersTable(ctx context.Context) (export.Table, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{Headers: []string{"Order ID", "Customer", "Date", "Book", "Quantity", "Unit Price", "Subtotal", "Order Total"}}
	for _, o := range orders {
		for _, it := range o.Items {
			t.Rows = append(t.Rows, []any{
				o.ID, o.CustomerName, o.OrderDate,
				it.BookTitle, it.Quantity, it.UnitPrice, it.Subtotal(),
				o.TotalAmount,
			})
		}
	}
	return t, nil
}

func (s *ExportService) salesByGenreTable(ctx context.Context) (export.Table, error) {
	rows, err := s.store.SalesByGenre(ctx)
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{Headers: []string{"Genre", "Quantity Sold"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Genre, r.QuantitySold})
	}
	return t, nil
}

func (s *ExportService) topSellersTable(ctx context.Context) (export.Table, error) {
	rows, err := s.store.TopSellingBooks(ctx)
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{Headers: []string{"Title", "Author", "Quantity Sold"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Title, r.AuthorName, r.QuantitySold})
	}
	return t, nil
}

func (s *ExportService) customerSpendingTable(ctx context.Context) (export.Table, error) {
	rows, err := s.store.CustomerSpending(ctx)
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{Headers: []string{"Customer", "Total Spent"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.CustomerName, r.TotalSpent})
	}
	return t, nil
}
