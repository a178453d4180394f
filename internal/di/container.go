// Package di provides dependency injection configuration for the PageTurn server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/pageturnapp/pageturn-server/internal/config"
	"github.com/pageturnapp/pageturn-server/internal/di/providers"
	"github.com/pageturnapp/pageturn-server/internal/logger"
	"github.com/pageturnapp/pageturn-server/internal/service"
	"github.com/pageturnapp/pageturn-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideAuthorService)
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideCustomerService)
	do.Provide(injector, providers.ProvideOrderService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideReportService)
	do.Provide(injector, providers.ProvideExportService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns the container ready for
// serving. This triggers lazy initialization of every provider.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*validation.Validator](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}

	for _, invoke := range []func() error{
		func() error { _, err := do.Invoke[*service.AuthorService](injector); return err },
		func() error { _, err := do.Invoke[*service.BookService](injector); return err },
		func() error { _, err := do.Invoke[*service.CustomerService](injector); return err },
		func() error { _, err := do.Invoke[*service.OrderService](injector); return err },
		func() error { _, err := do.Invoke[*service.CatalogService](injector); return err },
		func() error { _, err := do.Invoke[*service.ReportService](injector); return err },
		func() error { _, err := do.Invoke[*service.ExportService](injector); return err },
	} {
		if err := invoke(); err != nil {
			return err
		}
	}

	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
