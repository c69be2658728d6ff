package vacancy

import (
	"fmt"
	"strings"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
)

// StrategyName selects how the map view draws municipalities
type StrategyName string

const (
	StrategyChoropleth StrategyName = "choropleth"
	StrategyMarkers    StrategyName = "markers"
)

// ParseStrategy defaults to the choropleth
func ParseStrategy(s string) (StrategyName, error) {
	switch StrategyName(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyChoropleth:
		return StrategyChoropleth, nil
	case StrategyMarkers:
		return StrategyMarkers, nil
	default:
		return "", fmt.Errorf("unknown map strategy %q", s)
	}
}

// NeedsBoundaries reports whether the strategy draws boundary polygons
func (s StrategyName) NeedsBoundaries() bool {
	return s == StrategyChoropleth
}

// MapStrategy turns the vacancy collection into map regions
type MapStrategy interface {
	Name() StrategyName
	Regions(vacancies []domain.Vacancy) []Region
}

// ChoroplethStrategy colours each boundary polygon
type ChoroplethStrategy struct {
	Features []domain.BoundaryFeature
}

func (ChoroplethStrategy) Name() StrategyName { return StrategyChoropleth }

// Regions keeps the boundary dataset order
func (s ChoroplethStrategy) Regions(vacancies []domain.Vacancy) []Region {
	out := make([]Region, 0, len(s.Features))
	for _, f := range s.Features {
		r := newRegion(f.Key, f.Name, vacancies)
		r.Geometry = f.Geometry
		out = append(out, r)
	}
	return out
}

// MarkerStrategy places one marker per municipality that has coordinates
type MarkerStrategy struct {
	Municipalities []domain.Municipality
}

func (MarkerStrategy) Name() StrategyName { return StrategyMarkers }

// Regions keeps the municipality fetch order and skips those without a location
func (s MarkerStrategy) Regions(vacancies []domain.Vacancy) []Region {
	out := make([]Region, 0, len(s.Municipalities))
	for _, m := range s.Municipalities {
		if m.Coords == nil {
			continue
		}
		r := newRegion(m.Key, m.Name, vacancies)
		c := *m.Coords
		r.Coords = &c
		out = append(out, r)
	}
	return out
}

// Summary is the map legend: how many regions have vacancies
type Summary struct {
	Regions            int `json:"regions"`
	RegionsWithVacancy int `json:"regions_with_vacancy"`
	Vacancies          int `json:"vacancies"`
}

// Summarize counts over already built regions
func Summarize(regions []Region) Summary {
	s := Summary{Regions: len(regions)}
	for _, r := range regions {
		if r.HasVacancies {
			s.RegionsWithVacancy++
		}
		s.Vacancies += r.Count
	}
	return s
}
