package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pageturnapp/pageturn-server/internal/export"
)

func (s *Server) registerExportRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "exportDataset",
		Method:      http.MethodGet,
		Path:        "/api/v1/exports/{dataset}",
		Summary:     "Export dataset as CSV",
		Description: "Downloads a catalog list or report as a CSV file. " +
			"Datasets: authors, books, customers, orders, sales-by-genre, top-sellers, customer-spending.",
		Tags: []string{"Exports"},
	}, s.handleExportDataset)
}

type ExportDatasetInput struct {
	Dataset string `path:"dataset" doc:"Dataset name"`
}

type ExportDatasetOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func (s *Server) handleExportDataset(ctx context.Context, input *ExportDatasetInput) (*ExportDatasetOutput, error) {
	table, err := s.services.Export.Table(ctx, input.Dataset)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, table); err != nil {
		return nil, err
	}

	return &ExportDatasetOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", input.Dataset+".csv"),
		Body:               buf.Bytes(),
	}, nil
}
