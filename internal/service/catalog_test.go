package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pageturnapp/pageturn-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBookTitles_Alphabetical(t *testing.T) {
	_, svc := setupTestServices(t)
	seedCatalog(t, svc)
	ctx := context.Background()

	titles, err := svc.catalog.SearchBookTitles(ctx, "DUNE")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune", "Dune Messiah"}, titles)

	none, err := svc.catalog.SearchBookTitles(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchCustomerNames(t *testing.T) {
	_, svc := setupTestServices(t)
	seedCatalog(t, svc)

	names, err := svc.catalog.SearchCustomerNames(context.Background(), "atre")
	require.NoError(t, err)
	assert.Equal(t, []string{"Paul Atreides"}, names)
}

func TestBookPrice(t *testing.T) {
	_, svc := setupTestServices(t)
	seedCatalog(t, svc)
	ctx := context.Background()

	price, err := svc.catalog.BookPrice(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, 10.00, price)

	_, err = svc.catalog.BookPrice(ctx, "No Such Book")
	assert.True(t, errors.Is(err, store.ErrNotFound), "expected not found, got %v", err)
}
