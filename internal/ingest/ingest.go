// Package ingest validates raw API and GeoJSON payloads and normalises them
// into domain records. It is the only place that knows the wire formats.
package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
)

// Report describes records dropped or degraded while decoding a collection
type Report struct {
	Total    int
	Skipped  int
	Degraded int
	Problems []string
}

func (r *Report) skip(i int, err error) {
	r.Skipped++
	r.Problems = append(r.Problems, fmt.Sprintf("item %d: %v", i, err))
}

func (r *Report) degrade(i int, err error) {
	r.Degraded++
	r.Problems = append(r.Problems, fmt.Sprintf("item %d: %v", i, err))
}

type wireVacancy struct {
	ID               int64           `json:"id"`
	Title            *string         `json:"title"`
	MunicipalityID   json.RawMessage `json:"municipality_id"`
	Description      *string         `json:"description"`
	FunctionCategory *string         `json:"function_category"`
	EducationLevel   *string         `json:"education_level"`
}

type wireMunicipality struct {
	ID        json.RawMessage `json:"id"`
	Name      string          `json:"name"`
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
}

// Vacancies decodes GET /api/vacancies. A payload that is not an array is a
// *domain.FormatError; invalid elements are skipped and reported.
func Vacancies(raw json.RawMessage) ([]domain.Vacancy, Report, error) {
	items, err := splitArray("vacancies", raw)
	if err != nil {
		return nil, Report{}, err
	}

	report := Report{Total: len(items)}
	out := make([]domain.Vacancy, 0, len(items))
	for i, item := range items {
		w, err := decodeVacancy(item)
		if err != nil {
			report.skip(i, err)
			continue
		}
		v, gap := w.toDomain()
		if gap != nil {
			report.degrade(i, gap)
		}
		out = append(out, v)
	}

	return out, report, nil
}

// Vacancy decodes GET /api/vacancies/{id}. An unusable municipality
// reference degrades the vacancy like in Vacancies and is counted in the
// returned Report.
func Vacancy(raw json.RawMessage) (domain.Vacancy, Report, error) {
	if !isObject(raw) {
		return domain.Vacancy{}, Report{}, &domain.FormatError{Resource: "vacancy", Err: fmt.Errorf("payload is not an object")}
	}

	w, err := decodeVacancy(raw)
	if err != nil {
		return domain.Vacancy{}, Report{}, &domain.FormatError{Resource: "vacancy", Err: err}
	}

	report := Report{Total: 1}
	v, gap := w.toDomain()
	if gap != nil {
		report.degrade(0, gap)
	}
	return v, report, nil
}

// Municipalities decodes GET /api/municipalities
func Municipalities(raw json.RawMessage) ([]domain.Municipality, Report, error) {
	items, err := splitArray("municipalities", raw)
	if err != nil {
		return nil, Report{}, err
	}

	report := Report{Total: len(items)}
	out := make([]domain.Municipality, 0, len(items))
	for i, item := range items {
		m, err := decodeMunicipality(item)
		if err != nil {
			report.skip(i, err)
			continue
		}
		out = append(out, m)
	}

	return out, report, nil
}

// Municipality decodes GET /api/municipalities/{id}
func Municipality(raw json.RawMessage) (domain.Municipality, error) {
	if !isObject(raw) {
		return domain.Municipality{}, &domain.FormatError{Resource: "municipality", Err: fmt.Errorf("payload is not an object")}
	}

	m, err := decodeMunicipality(raw)
	if err != nil {
		return domain.Municipality{}, &domain.FormatError{Resource: "municipality", Err: err}
	}
	return m, nil
}

func decodeVacancy(item json.RawMessage) (wireVacancy, error) {
	var w wireVacancy
	if err := validate("vacancy", item); err != nil {
		return w, err
	}
	err := json.Unmarshal(item, &w)
	return w, err
}

// toDomain always yields a usable vacancy. The returned error reports a
// municipality reference that could not be canonicalised; such a vacancy keeps
// the zero key and joins to nothing.
func (w wireVacancy) toDomain() (domain.Vacancy, error) {
	v := domain.Vacancy{
		ID:               domain.VacancyID(w.ID),
		Title:            text(w.Title),
		Description:      text(w.Description),
		FunctionCategory: facet(w.FunctionCategory),
		EducationLevel:   facet(w.EducationLevel),
	}

	ref, key, err := domain.ParseMunicipalityRefJSON(w.MunicipalityID)
	if err != nil {
		return v, err
	}
	v.MunicipalityKey = key
	v.MunicipalityRef = ref
	return v, nil
}

func decodeMunicipality(item json.RawMessage) (domain.Municipality, error) {
	if err := validate("municipality", item); err != nil {
		return domain.Municipality{}, err
	}

	var w wireMunicipality
	if err := json.Unmarshal(item, &w); err != nil {
		return domain.Municipality{}, err
	}

	ref, key, err := domain.ParseMunicipalityRefJSON(w.ID)
	if err != nil {
		return domain.Municipality{}, err
	}

	m := domain.Municipality{
		Key:  key,
		Ref:  ref,
		Name: strings.TrimSpace(w.Name),
	}
	if w.Latitude != nil && w.Longitude != nil {
		m.Coords = &domain.Coordinates{Latitude: *w.Latitude, Longitude: *w.Longitude}
	}
	return m, nil
}

func splitArray(resource string, raw json.RawMessage) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if !isArray(raw) {
		return nil, &domain.FormatError{Resource: resource, Err: fmt.Errorf("payload is not an array")}
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &domain.FormatError{Resource: resource, Err: err}
	}
	return items, nil
}

func isArray(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return strings.HasPrefix(s, "[")
}

func isObject(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return strings.HasPrefix(s, "{")
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func facet(s *string) domain.Facet {
	if s == nil {
		return domain.Unspecified
	}
	return domain.Facet(strings.TrimSpace(*s))
}
