package view

import (
	"context"
	"fmt"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// Viewport is the initial map camera
type Viewport struct {
	Center domain.Coordinates `json:"center"`
	Zoom   int                `json:"zoom"`
}

// TileLayer is the base map the client draws under the regions
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// DefaultViewport frames the whole of the Netherlands
var DefaultViewport = Viewport{
	Center: domain.Coordinates{Latitude: 52.1326, Longitude: 5.2913},
	Zoom:   8,
}

// DefaultTiles is the OpenStreetMap tile layer
var DefaultTiles = TileLayer{
	URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
}

// MapParams selects the drawing strategy
type MapParams struct {
	Strategy vacancy.StrategyName
}

// MapData is the render-ready map view
type MapData struct {
	Strategy vacancy.StrategyName `json:"strategy"`
	Regions  []vacancy.Region     `json:"regions"`
	Summary  vacancy.Summary      `json:"summary"`
	Viewport Viewport             `json:"viewport"`
	Tiles    TileLayer            `json:"tiles"`
	// Notice is set when there is nothing to draw
	Notice string `json:"notice,omitempty"`
}

// LoadMap fetches municipalities, vacancies and, for the choropleth, the
// boundary dataset concurrently, then aggregates per region
func LoadMap(source catalog.Source, log *logging.Logger) LoadFunc[MapParams, MapData] {
	if log == nil {
		log = logging.Nop()
	}
	log = log.Named("view.map")

	return func(ctx context.Context, params MapParams) (MapData, error) {
		name := params.Strategy
		if name == "" {
			name = vacancy.StrategyChoropleth
		}

		cols, err := fetchAll(ctx, source, name.NeedsBoundaries(), log)
		if err != nil {
			return MapData{}, err
		}

		strategy, err := newStrategy(name, cols)
		if err != nil {
			return MapData{}, err
		}

		regions := strategy.Regions(cols.vacancies)
		data := MapData{
			Strategy: strategy.Name(),
			Regions:  regions,
			Summary:  vacancy.Summarize(regions),
			Viewport: DefaultViewport,
			Tiles:    DefaultTiles,
		}
		if len(regions) == 0 {
			data.Notice = domain.NoMapData
		}

		log.Debug("map aggregated",
			"strategy", data.Strategy,
			"regions", data.Summary.Regions,
			"regions_with_vacancy", data.Summary.RegionsWithVacancy,
		)
		return data, nil
	}
}

func newStrategy(name vacancy.StrategyName, cols collections) (vacancy.MapStrategy, error) {
	switch name {
	case vacancy.StrategyChoropleth:
		return vacancy.ChoroplethStrategy{Features: cols.boundaries}, nil
	case vacancy.StrategyMarkers:
		return vacancy.MarkerStrategy{Municipalities: cols.municipalities}, nil
	default:
		return nil, fmt.Errorf("view map: unknown strategy %q", name)
	}
}

// NewMapView builds the map view controller
func NewMapView(source catalog.Source, log *logging.Logger) *Controller[MapParams, MapData] {
	return NewController("map", LoadMap(source, log), log)
}
