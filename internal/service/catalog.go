package service

import (
	"context"
	"log/slog"

	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
)

// CatalogService answers the lookups behind order composition:
// autocomplete name searches and the current price of a title.
type CatalogService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewCatalogService creates a new catalog lookup service.
func NewCatalogService(store *sqlite.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// SearchAuthorNames returns author names containing the query,
// case-insensitively, in alphabetical order.
func (s *CatalogService) SearchAuthorNames(ctx context.Context, query string) ([]string, error) {
	return s.store.SearchAuthorNames(ctx, query)
}

// SearchCustomerNames returns customer names containing the query,
// case-insensitively, in alphabetical order.
func (s *CatalogService) SearchCustomerNames(ctx context.Context, query string) ([]string, error) {
	return s.store.SearchCustomerNames(ctx, query)
}

// SearchBookTitles returns book titles containing the query,
// case-insensitively, in alphabetical order.
func (s *CatalogService) SearchBookTitles(ctx context.Context, query string) ([]string, error) {
	return s.store.SearchBookTitles(ctx, query)
}

// BookPrice returns the current catalog price for an exact title. This
// is the price a client captures when adding a line to an order draft.
func (s *CatalogService) BookPrice(ctx context.Context, title string) (float64, error) {
	return s.store.GetBookPriceByTitle(ctx, title)
}
