package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-atlas/internal/config"
	"github.com/honeycarbs/vacancy-atlas/internal/ingest"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
	"github.com/honeycarbs/vacancy-atlas/pkg/vacancyapi"
)

func TestProvideCatalogSelectsSource(t *testing.T) {
	client, err := vacancyapi.NewClient(vacancyapi.Config{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	loader, err := ingest.NewBoundaryLoader("testdata/unused.geojson", nil)
	require.NoError(t, err)

	var cfg config.Config
	cfg.Catalog.Source = "static"
	source, err := provideCatalog(cfg, client, loader, logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, "static", source.Name())

	vs, err := source.Vacancies(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, vs, "sample catalog is served without the API")

	cfg.Catalog.Source = "api"
	source, err = provideCatalog(cfg, client, loader, logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, "api", source.Name())
}
