package service

import (
	"context"
	"log/slog"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
)

// ReportService runs the read-only sales aggregations.
type ReportService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewReportService creates a new report service.
func NewReportService(store *sqlite.Store, logger *slog.Logger) *ReportService {
	return &ReportService{
		store:  store,
		logger: logger,
	}
}

// SalesByGenre returns total quantities sold per genre, best first.
func (s *ReportService) SalesByGenre(ctx context.Context) ([]domain.GenreSales, error) {
	return s.store.SalesByGenre(ctx)
}

// TopSellingBooks returns the ten best-selling titles.
func (s *ReportService) TopSellingBooks(ctx context.Context) ([]domain.BookSales, error) {
	return s.store.TopSellingBooks(ctx)
}

// CustomerSpending returns each customer's lifetime order total, biggest first.
func (s *ReportService) CustomerSpending(ctx context.Context) ([]domain.CustomerSpend, error) {
	return s.store.CustomerSpending(ctx)
}
