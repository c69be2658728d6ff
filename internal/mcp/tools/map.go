package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/internal/view"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// VacancyMapParams defines the arguments for the vacancy_map tool
type VacancyMapParams struct {
	Strategy string `json:"strategy,omitempty" jsonschema:"choropleth (municipality boundaries) or markers (municipality points), default from server config"`
}

// RegionSummary is a map region without its geometry
type RegionSummary struct {
	Key          string              `json:"key"`
	Name         string              `json:"name"`
	Count        int                 `json:"count"`
	CountLabel   string              `json:"count_label"`
	HasVacancies bool                `json:"has_vacancies"`
	FillColor    string              `json:"fill_color"`
	Preview      []vacancy.Link      `json:"preview"`
	Coords       *domain.Coordinates `json:"coords,omitempty"`
}

// VacancyMapResult is the aggregated map view
type VacancyMapResult struct {
	Strategy string          `json:"strategy"`
	Summary  vacancy.Summary `json:"summary"`
	Regions  []RegionSummary `json:"regions"`
	Viewport view.Viewport   `json:"viewport"`
	Notice   string          `json:"notice,omitempty"`
}

type vacancyMapTool struct {
	source   catalog.Source
	fallback vacancy.StrategyName
	logger   *logging.Logger
}

// WithVacancyMap registers the vacancy_map tool. fallback is used when the
// caller does not pick a strategy.
func WithVacancyMap(source catalog.Source, fallback vacancy.StrategyName) Option {
	return func(reg *registry) {
		t := vacancyMapTool{source: source, fallback: fallback, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_map",
			Description: "Aggregate vacancies per municipality for the map view: count, highlight and up to three vacancy links per region",
		}, t.handle)
		reg.add("vacancy_map")
	}
}

func (t vacancyMapTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params VacancyMapParams) (*sdkmcp.CallToolResult, VacancyMapResult, error) {
	name := t.fallback
	if params.Strategy != "" {
		parsed, err := vacancy.ParseStrategy(params.Strategy)
		if err != nil {
			return nil, VacancyMapResult{}, err
		}
		name = parsed
	}

	data, err := load(ctx, view.NewMapView(t.source, t.logger), view.MapParams{Strategy: name})
	if err != nil {
		return nil, VacancyMapResult{}, err
	}

	out := VacancyMapResult{
		Strategy: string(data.Strategy),
		Summary:  data.Summary,
		Regions:  make([]RegionSummary, 0, len(data.Regions)),
		Viewport: data.Viewport,
		Notice:   data.Notice,
	}
	for _, r := range data.Regions {
		out.Regions = append(out.Regions, RegionSummary{
			Key:          r.Key.String(),
			Name:         r.Name,
			Count:        r.Count,
			CountLabel:   r.CountLabel(),
			HasVacancies: r.HasVacancies,
			FillColor:    r.Style.Base.FillColor,
			Preview:      r.Preview,
			Coords:       r.Coords,
		})
	}

	return textResult(renderMap(out)), out, nil
}

func renderMap(m VacancyMapResult) string {
	if m.Notice != "" {
		return m.Notice
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d van %d gemeenten met vacatures (%d vacatures)\n",
		m.Strategy, m.Summary.RegionsWithVacancy, m.Summary.Regions, m.Summary.Vacancies)
	for _, r := range m.Regions {
		if !r.HasVacancies {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", r.Name, r.CountLabel)
	}
	return strings.TrimRight(b.String(), "\n")
}
