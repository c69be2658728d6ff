package view

import (
	"context"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// SnippetLength is the number of description characters shown on a list card
const SnippetLength = 150

// NoParams is the parameter type of views that take none
type NoParams struct{}

// ListData holds the collections of a ready list view. Filtering is
// recomputed from it without fetching again.
type ListData struct {
	Vacancies      []domain.Vacancy
	Municipalities []domain.Municipality

	index  vacancy.Index
	facets vacancy.Facets
}

// NewListData precomputes the municipality index and facet options
func NewListData(vacancies []domain.Vacancy, municipalities []domain.Municipality) ListData {
	return ListData{
		Vacancies:      vacancies,
		Municipalities: municipalities,
		index:          vacancy.NewIndex(municipalities),
		facets:         vacancy.FacetsOf(vacancies),
	}
}

// ListItem is one vacancy card
type ListItem struct {
	ID                domain.VacancyID `json:"id"`
	Title             string           `json:"title"`
	Municipality      string           `json:"municipality"`
	MunicipalityKnown bool             `json:"municipality_known"`
	Snippet           string           `json:"snippet"`
	Category          string           `json:"function_category"`
	EducationLevel    string           `json:"education_level"`
	Href              string           `json:"href"`
}

// FacetOption is one entry of a filter select control
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ListPage is the render-ready list view
type ListPage struct {
	Items           []ListItem       `json:"items"`
	Total           int              `json:"total"`
	Matched         int              `json:"matched"`
	Criteria        vacancy.Criteria `json:"criteria"`
	Categories      []FacetOption    `json:"categories"`
	EducationLevels []FacetOption    `json:"education_levels"`
}

// Page filters the loaded vacancies and joins their municipality names
func (d ListData) Page(c vacancy.Criteria) ListPage {
	matched := vacancy.Filter(d.Vacancies, c)

	items := make([]ListItem, 0, len(matched))
	for _, v := range matched {
		_, known := d.index.For(v)
		items = append(items, ListItem{
			ID:                v.ID,
			Title:             v.Title,
			Municipality:      d.index.NameFor(v),
			MunicipalityKnown: known,
			Snippet:           Snippet(v.Description),
			Category:          v.FunctionCategory.Label(),
			EducationLevel:    v.EducationLevel.Label(),
			Href:              vacancy.DetailHref(v.ID),
		})
	}

	return ListPage{
		Items:           items,
		Total:           len(d.Vacancies),
		Matched:         len(matched),
		Criteria:        c,
		Categories:      options(domain.AllCategories, d.facets.Categories),
		EducationLevels: options(domain.AllEducationLevels, d.facets.EducationLevels),
	}
}

// Facets returns the filter options derived from the unfiltered vacancies
func (d ListData) Facets() vacancy.Facets {
	return d.facets
}

// Filtered returns the vacancies matching c, in fetch order
func (d ListData) Filtered(c vacancy.Criteria) []domain.Vacancy {
	return vacancy.Filter(d.Vacancies, c)
}

// MunicipalityName joins one vacancy with the fallback label
func (d ListData) MunicipalityName(v domain.Vacancy) string {
	return d.index.NameFor(v)
}

// options prepends the "no filter" entry to the facet values
func options(allLabel string, values []domain.Facet) []FacetOption {
	out := make([]FacetOption, 0, len(values)+1)
	out = append(out, FacetOption{Value: "", Label: allLabel})
	for _, v := range values {
		out = append(out, FacetOption{Value: string(v), Label: v.Label()})
	}
	return out
}

// Snippet shortens a description to SnippetLength characters
func Snippet(description string) string {
	runes := []rune(description)
	if len(runes) <= SnippetLength {
		return description
	}
	return string(runes[:SnippetLength]) + "..."
}

// LoadList fetches vacancies and municipalities concurrently
func LoadList(source catalog.Source, log *logging.Logger) LoadFunc[NoParams, ListData] {
	if log == nil {
		log = logging.Nop()
	}
	log = log.Named("view.list")

	return func(ctx context.Context, _ NoParams) (ListData, error) {
		cols, err := fetchAll(ctx, source, false, log)
		if err != nil {
			return ListData{}, err
		}

		data := NewListData(cols.vacancies, cols.municipalities)
		if gaps := data.index.Gaps(data.Vacancies); gaps > 0 {
			log.Info("vacancies without a known municipality", "count", gaps)
		}
		return data, nil
	}
}

// NewListView builds the list view controller
func NewListView(source catalog.Source, log *logging.Logger) *Controller[NoParams, ListData] {
	return NewController("list", LoadList(source, log), log)
}
