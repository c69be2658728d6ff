package mcp

import (
	"context"
	"fmt"

	"github.com/honeycarbs/vacancy-atlas/internal/config"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/internal/mcp/tools"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
	"github.com/honeycarbs/vacancy-atlas/pkg/vacancyapi"
)

// HealthChecker checks the upstream vacancy API
type HealthChecker interface {
	Health(ctx context.Context) (vacancyapi.Health, error)
}

// Resources holds everything the tools and views are built from
type Resources struct {
	Catalog  catalog.Source
	Resolver *vacancy.DetailResolver
	// nil when no Google credentials are configured
	Sheets tools.SheetsClient
	Health HealthChecker
}

func newResources(
	source catalog.Source,
	resolver *vacancy.DetailResolver,
	sheetsClient tools.SheetsClient,
	health HealthChecker,
) *Resources {
	return &Resources{
		Catalog:  source,
		Resolver: resolver,
		Sheets:   sheetsClient,
		Health:   health,
	}
}

// LoadResources wires the resources for cfg
func LoadResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	res, err := InitializeResources(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize resources: %w", err)
	}

	logger.Info("catalog initialized",
		"source", res.Catalog.Name(),
		"api", cfg.API.BaseURL,
		"boundaries", cfg.Map.BoundariesSource,
	)
	if res.Sheets == nil {
		logger.Info("Google Sheets export disabled (GOOGLE_SHEETS_CREDENTIALS_PATH not set)")
	}

	return res, nil
}
