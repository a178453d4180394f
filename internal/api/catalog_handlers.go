package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Catalog lookup routes back order composition in clients: name
// autocompletion and price capture when a line is added.
func (s *Server) registerCatalogRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchAuthorNames",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/authors",
		Summary:     "Search author names",
		Description: "Returns author names containing the query, alphabetically",
		Tags:        []string{"Catalog"},
	}, s.handleSearchAuthorNames)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchCustomerNames",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/customers",
		Summary:     "Search customer names",
		Description: "Returns customer names containing the query, alphabetically",
		Tags:        []string{"Catalog"},
	}, s.handleSearchCustomerNames)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchBookTitles",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/books",
		Summary:     "Search book titles",
		Description: "Returns book titles containing the query, alphabetically",
		Tags:        []string{"Catalog"},
	}, s.handleSearchBookTitles)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBookPrice",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/books/price",
		Summary:     "Get book price",
		Description: "Returns the current catalog price for an exact title",
		Tags:        []string{"Catalog"},
	}, s.handleGetBookPrice)
}

// === Request/response types ===

type NameSearchInput struct {
	Query string `query:"q" doc:"Case-insensitive substring to match"`
}

type NamesResponse struct {
	Names []string `json:"names" doc:"Matching names, alphabetical"`
}

type NamesOutput struct {
	Body NamesResponse
}

type BookPriceInput struct {
	Title string `query:"title" required:"true" doc:"Exact book title"`
}

type BookPriceResponse struct {
	Title string  `json:"title" doc:"Book title"`
	Price float64 `json:"price" doc:"Current catalog price"`
}

type BookPriceOutput struct {
	Body BookPriceResponse
}

// === Handlers ===

func (s *Server) handleSearchAuthorNames(ctx context.Context, input *NameSearchInput) (*NamesOutput, error) {
	names, err := s.services.Catalog.SearchAuthorNames(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return &NamesOutput{Body: NamesResponse{Names: names}}, nil
}

func (s *Server) handleSearchCustomerNames(ctx context.Context, input *NameSearchInput) (*NamesOutput, error) {
	names, err := s.services.Catalog.SearchCustomerNames(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return &NamesOutput{Body: NamesResponse{Names: names}}, nil
}

func (s *Server) handleSearchBookTitles(ctx context.Context, input *NameSearchInput) (*NamesOutput, error) {
	titles, err := s.services.Catalog.SearchBookTitles(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return &NamesOutput{Body: NamesResponse{Names: titles}}, nil
}

func (s *Server) handleGetBookPrice(ctx context.Context, input *BookPriceInput) (*BookPriceOutput, error) {
	price, err := s.services.Catalog.BookPrice(ctx, input.Title)
	if err != nil {
		return nil, err
	}
	return &BookPriceOutput{Body: BookPriceResponse{Title: input.Title, Price: price}}, nil
}
