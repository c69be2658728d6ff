package vacancy

import (
	"encoding/json"
	"fmt"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
)

// PreviewLimit caps the vacancies linked from one map region
const PreviewLimit = 3

// Classification is the per-municipality vacancy summary shown on the map
type Classification struct {
	Count        int
	Preview      []domain.Vacancy
	HasVacancies bool
}

// Classify counts the vacancies of a municipality and keeps the first
// PreviewLimit of them in fetch order
func Classify(key domain.MunicipalityKey, vacancies []domain.Vacancy) Classification {
	matched := VacanciesFor(key, vacancies)
	preview := matched
	if len(preview) > PreviewLimit {
		preview = preview[:PreviewLimit:PreviewLimit]
	}
	return Classification{
		Count:        len(matched),
		Preview:      preview,
		HasVacancies: len(matched) > 0,
	}
}

// Link points at a vacancy detail page
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// DetailHref is the route of a vacancy detail page
func DetailHref(id domain.VacancyID) string {
	return fmt.Sprintf("/vacancy/%d", id)
}

// LinkTo labels a detail link with the vacancy title
func LinkTo(v domain.Vacancy) Link {
	return Link{Label: v.Title, Href: DetailHref(v.ID)}
}

// PathStyle is the drawing style of a boundary or marker
type PathStyle struct {
	FillColor   string  `json:"fill_color"`
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fill_opacity"`
}

// Style pairs the resting look of a region with the look while a pointer
// hovers it. Hover state itself lives in the client.
type Style struct {
	Base       PathStyle `json:"base"`
	Emphasized PathStyle `json:"emphasized"`
}

const (
	fillWithVacancies = "#4CAF50"
	fillEmpty         = "#ccc"
	outlineColor      = "#666"
)

// StyleFor is the binary classification: highlighted when hasVacancies
func StyleFor(hasVacancies bool) Style {
	fill := fillEmpty
	if hasVacancies {
		fill = fillWithVacancies
	}

	base := PathStyle{
		FillColor:   fill,
		Color:       outlineColor,
		Weight:      1,
		Opacity:     1,
		FillOpacity: 0.7,
	}
	emphasized := base
	emphasized.Weight = 2
	emphasized.FillOpacity = 0.9

	return Style{Base: base, Emphasized: emphasized}
}

// Region is one clickable area or marker of the map view
type Region struct {
	Key          domain.MunicipalityKey `json:"key"`
	Name         string                 `json:"name"`
	Count        int                    `json:"count"`
	Preview      []Link                 `json:"preview"`
	HasVacancies bool                   `json:"has_vacancies"`
	Style        Style                  `json:"style"`
	Geometry     json.RawMessage        `json:"geometry,omitempty"`
	Coords       *domain.Coordinates    `json:"coords,omitempty"`
}

// CountLabel is the count line of the region popup
func (r Region) CountLabel() string {
	return fmt.Sprintf("Aantal vacatures: %d", r.Count)
}

func newRegion(key domain.MunicipalityKey, name string, vacancies []domain.Vacancy) Region {
	c := Classify(key, vacancies)
	links := make([]Link, 0, len(c.Preview))
	for _, v := range c.Preview {
		links = append(links, LinkTo(v))
	}
	return Region{
		Key:          key,
		Name:         name,
		Count:        c.Count,
		Preview:      links,
		HasVacancies: c.HasVacancies,
		Style:        StyleFor(c.HasVacancies),
	}
}
