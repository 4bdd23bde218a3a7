// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/khatiyan/backend/config"
	"github.com/khatiyan/backend/internal/application/usecase/calculation"
	"github.com/khatiyan/backend/internal/application/usecase/conversion"
	"github.com/khatiyan/backend/internal/infra/server/router"
	"github.com/khatiyan/backend/internal/integration/adapters"
	"github.com/khatiyan/backend/internal/integration/entrypoint/controller"
	"github.com/khatiyan/backend/internal/integration/report"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config) (*Injector, error) {
	// Create adapters/services
	formatter, err := adapters.NewNumberFormatter(cfg.Calculator.NumberLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to create number formatter: %w", err)
	}
	renderer, err := report.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create report renderer: %w", err)
	}

	// Create calculation use cases
	calculateUseCase := calculation.NewCalculateSharesUseCase(formatter, calculation.Options{
		DefaultLocale:     cfg.Calculator.Locale,
		DefaultHazariMode: cfg.Calculator.DefaultHazariMode,
		MaxOwners:         cfg.Calculator.MaxOwners,
	})
	reportUseCase := calculation.NewRenderReportUseCase(calculateUseCase, renderer)

	// Create conversion use cases
	toTilUseCase := conversion.NewConvertToTilUseCase(cfg.Calculator.Locale)
	fromTilUseCase := conversion.NewConvertFromTilUseCase(cfg.Calculator.Locale)

	// Create controllers
	healthController := controller.NewHealthController(formatter.Locale())
	calculationController := controller.NewCalculationController(calculateUseCase, reportUseCase, cfg.Calculator.Locale)
	unitController := controller.NewUnitController(toTilUseCase, fromTilUseCase, cfg.Calculator.Locale)

	// Create router
	r := router.NewRouter(healthController, calculationController, unitController, cfg.Server.MaxBodyBytes)

	return &Injector{
		Config: cfg,
		Router: r,
	}, nil
}
