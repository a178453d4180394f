package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerReportRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "salesByGenre",
		Method:      http.MethodGet,
		Path:        "/api/v1/reports/sales-by-genre",
		Summary:     "Sales by genre",
		Description: "Returns total quantities sold per genre, best first",
		Tags:        []string{"Reports"},
	}, s.handleSalesByGenre)

	huma.Register(s.api, huma.Operation{
		OperationID: "topSellingBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/reports/top-sellers",
		Summary:     "Top selling books",
		Description: "Returns the ten best-selling titles",
		Tags:        []string{"Reports"},
	}, s.handleTopSellingBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "customerSpending",
		Method:      http.MethodGet,
		Path:        "/api/v1/reports/customer-spending",
		Summary:     "Customer spending",
		Description: "Returns each customer's lifetime order total, biggest first",
		Tags:        []string{"Reports"},
	}, s.handleCustomerSpending)
}

// === Response types ===

type GenreSalesResponse struct {
	Genre        string `json:"genre" doc:"Genre"`
	QuantitySold int    `json:"quantity_sold" doc:"Copies sold"`
}

type SalesByGenreOutput struct {
	Body struct {
		Rows []GenreSalesResponse `json:"rows" doc:"Report rows, best first"`
	}
}

type BookSalesResponse struct {
	Title        string `json:"title" doc:"Book title"`
	AuthorName   string `json:"author_name" doc:"Author name"`
	QuantitySold int    `json:"quantity_sold" doc:"Copies sold"`
}

type TopSellersOutput struct {
	Body struct {
		Rows []BookSalesResponse `json:"rows" doc:"Report rows, best first"`
	}
}

type CustomerSpendResponse struct {
	CustomerName string  `json:"customer_name" doc:"Customer name"`
	TotalSpent   float64 `json:"total_spent" doc:"Lifetime order total"`
}

type CustomerSpendingOutput struct {
	Body struct {
		Rows []CustomerSpendResponse `json:"rows" doc:"Report rows, biggest first"`
	}
}

// === Handlers ===

func (s *Server) handleSalesByGenre(ctx context.Context, _ *struct{}) (*SalesByGenreOutput, error) {
	rows, err := s.services.Report.SalesByGenre(ctx)
	if err != nil {
		return nil, err
	}

	out := &SalesByGenreOutput{}
	out.Body.Rows = make([]GenreSalesResponse, len(rows))
	for i, r := range rows {
		out.Body.Rows[i] = GenreSalesResponse{Genre: r.Genre, QuantitySold: r.QuantitySold}
	}
	return out, nil
}

func (s *Server) handleTopSellingBooks(ctx context.Context, _ *struct{}) (*TopSellersOutput, error) {
	rows, err := s.services.Report.TopSellingBooks(ctx)
	if err != nil {
		return nil, err
	}

	out := &TopSellersOutput{}
	out.Body.Rows = make([]BookSalesResponse, len(rows))
	for i, r := range rows {
		out.Body.Rows[i] = BookSalesResponse{Title: r.Title, AuthorName: r.AuthorName, QuantitySold: r.QuantitySold}
	}
	return out, nil
}

func (s *Server) handleCustomerSpending(ctx context.Context, _ *struct{}) (*CustomerSpendingOutput, error) {
	rows, err := s.services.Report.CustomerSpending(ctx)
	if err != nil {
		return nil, err
	}

	out := &CustomerSpendingOutput{}
	out.Body.Rows = make([]CustomerSpendResponse, len(rows))
	for i, r := range rows {
		out.Body.Rows[i] = CustomerSpendResponse{CustomerName: r.CustomerName, TotalSpent: r.TotalSpent}
	}
	return out, nil
}
