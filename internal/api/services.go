package api

import (
	"github.com/pageturnapp/pageturn-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Author   *service.AuthorService
	Book     *service.BookService
	Customer *service.CustomerService
	Order    *service.OrderService
	Catalog  *service.CatalogService
	Report   *service.ReportService
	Export   *service.ExportService
}
