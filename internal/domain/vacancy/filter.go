package vacancy

import (
	"strings"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
)

// Criteria is the compound list filter. Empty fields do not constrain.
type Criteria struct {
	SearchTerm     string       `json:"search_term,omitempty"`
	Category       domain.Facet `json:"category,omitempty"`
	EducationLevel domain.Facet `json:"education_level,omitempty"`
}

// NewCriteria builds criteria from raw user input, trimming each field so
// every surface filters the same way.
func NewCriteria(search, category, education string) Criteria {
	return Criteria{
		SearchTerm:     strings.TrimSpace(search),
		Category:       domain.Facet(strings.TrimSpace(category)),
		EducationLevel: domain.Facet(strings.TrimSpace(education)),
	}
}

// IsZero reports whether no filter is set
func (c Criteria) IsZero() bool {
	return c.SearchTerm == "" && !c.Category.Specified() && !c.EducationLevel.Specified()
}

// Matches evaluates the text, category and education predicates; all three must pass
func Matches(v domain.Vacancy, c Criteria) bool {
	return matchesText(v, c.SearchTerm) &&
		matchesFacet(v.FunctionCategory, c.Category) &&
		matchesFacet(v.EducationLevel, c.EducationLevel)
}

func matchesText(v domain.Vacancy, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(v.Title), needle) ||
		strings.Contains(strings.ToLower(v.Description), needle)
}

// Facet equality is exact and case-sensitive
func matchesFacet(value, want domain.Facet) bool {
	return !want.Specified() || value == want
}

// Filter returns the matching vacancies in input order
func Filter(vacancies []domain.Vacancy, c Criteria) []domain.Vacancy {
	out := make([]domain.Vacancy, 0, len(vacancies))
	for _, v := range vacancies {
		if Matches(v, c) {
			out = append(out, v)
		}
	}
	return out
}

// Field selects a facetable vacancy attribute
type Field int

const (
	FieldFunctionCategory Field = iota
	FieldEducationLevel
)

func (f Field) String() string {
	switch f {
	case FieldFunctionCategory:
		return "function_category"
	case FieldEducationLevel:
		return "education_level"
	default:
		return "unknown"
	}
}

func (f Field) value(v domain.Vacancy) domain.Facet {
	switch f {
	case FieldFunctionCategory:
		return v.FunctionCategory
	case FieldEducationLevel:
		return v.EducationLevel
	default:
		return domain.Unspecified
	}
}

// FacetValues lists the distinct specified values of field in order of
// first occurrence. Unspecified values never produce an option.
func FacetValues(vacancies []domain.Vacancy, field Field) []domain.Facet {
	seen := make(map[domain.Facet]struct{})
	out := make([]domain.Facet, 0)
	for _, v := range vacancies {
		val := field.value(v)
		if !val.Specified() {
			continue
		}
		if _, ok := seen[val]; ok {
			continue
		}
		seen[val] = struct{}{}
		out = append(out, val)
	}
	return out
}

// Facets are the options offered by the list filter controls
type Facets struct {
	Categories      []domain.Facet `json:"categories"`
	EducationLevels []domain.Facet `json:"education_levels"`
}

// FacetsOf derives both facet option lists from the unfiltered collection
func FacetsOf(vacancies []domain.Vacancy) Facets {
	return Facets{
		Categories:      FacetValues(vacancies, FieldFunctionCategory),
		EducationLevels: FacetValues(vacancies, FieldEducationLevel),
	}
}
