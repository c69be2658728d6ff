// Package vacancy holds the pure join, filter and aggregation logic that
// turns the fetched collections into render-ready view data.
package vacancy

import "github.com/honeycarbs/vacancy-atlas/internal/domain"

// VacanciesFor returns the vacancies referencing key, in fetch order.
// The zero key matches nothing.
func VacanciesFor(key domain.MunicipalityKey, vacancies []domain.Vacancy) []domain.Vacancy {
	out := make([]domain.Vacancy, 0)
	if key == "" {
		return out
	}
	for _, v := range vacancies {
		if v.MunicipalityKey == key {
			out = append(out, v)
		}
	}
	return out
}

// MunicipalityFor looks up the municipality a vacancy belongs to.
// A referential gap is reported with ok == false, never as an error.
func MunicipalityFor(v domain.Vacancy, municipalities []domain.Municipality) (domain.Municipality, bool) {
	if v.MunicipalityKey == "" {
		return domain.Municipality{}, false
	}
	for _, m := range municipalities {
		if m.Key == v.MunicipalityKey {
			return m, true
		}
	}
	return domain.Municipality{}, false
}

// Index is a keyed view over a municipality collection for repeated lookups.
// When the API returns duplicate keys the first one wins, matching MunicipalityFor.
type Index struct {
	byKey map[domain.MunicipalityKey]domain.Municipality
}

// NewIndex builds an Index
func NewIndex(municipalities []domain.Municipality) Index {
	byKey := make(map[domain.MunicipalityKey]domain.Municipality, len(municipalities))
	for _, m := range municipalities {
		if _, dup := byKey[m.Key]; dup || m.Key == "" {
			continue
		}
		byKey[m.Key] = m
	}
	return Index{byKey: byKey}
}

// Lookup returns the municipality for key
func (ix Index) Lookup(key domain.MunicipalityKey) (domain.Municipality, bool) {
	m, ok := ix.byKey[key]
	return m, ok
}

// For returns the municipality a vacancy belongs to
func (ix Index) For(v domain.Vacancy) (domain.Municipality, bool) {
	return ix.Lookup(v.MunicipalityKey)
}

// NameFor returns the display name of a vacancy's municipality, or the
// unknown-municipality label on a referential gap
func (ix Index) NameFor(v domain.Vacancy) string {
	if m, ok := ix.For(v); ok && m.Name != "" {
		return m.Name
	}
	return domain.UnknownMunicipality
}

// Len is the number of distinct municipalities indexed
func (ix Index) Len() int {
	return len(ix.byKey)
}

// Gaps counts vacancies whose municipality reference does not resolve
func (ix Index) Gaps(vacancies []domain.Vacancy) int {
	n := 0
	for _, v := range vacancies {
		if _, ok := ix.For(v); !ok {
			n++
		}
	}
	return n
}
