package mcp

import (
	"context"
	"strings"

	"github.com/honeycarbs/vacancy-atlas/internal/config"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog/providers/api"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog/providers/static"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/internal/ingest"
	"github.com/honeycarbs/vacancy-atlas/internal/mcp/tools"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
	sheetsclient "github.com/honeycarbs/vacancy-atlas/pkg/sheets"
	"github.com/honeycarbs/vacancy-atlas/pkg/vacancyapi"
)

// provideAPIConfig extracts vacancy API config from main config
func provideAPIConfig(cfg config.Config) vacancyapi.Config {
	return vacancyapi.Config{BaseURL: cfg.API.BaseURL}
}

func provideBoundaryLoader(cfg config.Config) (*ingest.BoundaryLoader, error) {
	return ingest.NewBoundaryLoader(cfg.Map.BoundariesSource, nil)
}

// provideCatalog creates the catalog source selected by CATALOG_SOURCE.
// "static" serves the built-in sample catalog and never calls the API.
func provideCatalog(cfg config.Config, client *vacancyapi.Client, loader *ingest.BoundaryLoader, logger *logging.Logger) (catalog.Source, error) {
	if strings.EqualFold(cfg.Catalog.Source, "static") {
		logger.Warn("serving the built-in sample catalog", "catalog_source", cfg.Catalog.Source)
		return static.Sample(), nil
	}

	p, err := api.NewProvider(client, loader, logger)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func provideDetailResolver(source catalog.Source, logger *logging.Logger) (*vacancy.DetailResolver, error) {
	return vacancy.NewDetailResolver(source, logger)
}

// provideSheetsClient returns nil when no credentials are configured
func provideSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (tools.SheetsClient, error) {
	if cfg.Sheets.CredentialsPath == "" {
		return nil, nil
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		return nil, err
	}
	return newSheetsClientAdapter(client, logger), nil
}
