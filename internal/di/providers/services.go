package providers

import (
	"github.com/samber/do/v2"

	"github.com/pageturnapp/pageturn-server/internal/logger"
	"github.com/pageturnapp/pageturn-server/internal/service"
	"github.com/pageturnapp/pageturn-server/internal/validation"
)

// ProvideAuthorService provides the author catalog service.
func ProvideAuthorService(i do.Injector) (*service.AuthorService, error) {
	store := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthorService(store.Store, v, log.Logger), nil
}

// ProvideBookService provides the book catalog service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	store := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(store.Store, v, log.Logger), nil
}

// ProvideCustomerService provides the customer service.
func ProvideCustomerService(i do.Injector) (*service.CustomerService, error) {
	store := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCustomerService(store.Store, v, log.Logger), nil
}

// ProvideOrderService provides the order service.
func ProvideOrderService(i do.Injector) (*service.OrderService, error) {
	store := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewOrderService(store.Store, v, log.Logger), nil
}

// ProvideCatalogService provides the catalog lookup service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	store := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(store.Store, log.Logger), nil
}

// ProvideReportService provides the report service.
func ProvideReportService(i do.Injector) (*service.ReportService, error) {
	store := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReportService(store.Store, log.Logger), nil
}

// ProvideExportService provides the CSV export service.
func ProvideExportService(i do.Injector) (*service.ExportService, error) {
	store := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewExportService(store.Store, log.Logger), nil
}
