//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/vacancy-atlas/internal/config"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
	"github.com/honeycarbs/vacancy-atlas/pkg/vacancyapi"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - vacancy API
		provideAPIConfig,
		vacancyapi.NewClient,
		wire.Bind(new(HealthChecker), new(*vacancyapi.Client)),

		// Infrastructure - boundary dataset
		provideBoundaryLoader,

		// Catalog and detail resolution
		provideCatalog,
		provideDetailResolver,

		// Export
		provideSheetsClient,

		newResources,
	)

	return &Resources{}, nil
}
