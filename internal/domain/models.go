package domain

import "encoding/json"

// Display labels. The UI is Dutch only.
const (
	UnknownMunicipality = "Onbekende gemeente"
	UnspecifiedLabel    = "Niet gespecificeerd"
	VacancyNotFound     = "Vacature niet gevonden"
	GenericFailure      = "Er is een fout opgetreden"
	AllCategories       = "Alle categorieën"
	AllEducationLevels  = "Alle niveaus"
	NoMapData           = "Geen kaartdata gevonden"
)

// VacancyID identifies a vacancy in the upstream API
type VacancyID int64

// Facet is a categorical vacancy attribute such as the function category.
// The zero value means the source left it unspecified.
type Facet string

// Unspecified is the normalised form of an absent or blank facet value
const Unspecified Facet = ""

// Specified reports whether the source supplied a value
func (f Facet) Specified() bool {
	return f != Unspecified
}

// Label is the text shown to users, with the sentinel for unspecified values
func (f Facet) Label() string {
	if !f.Specified() {
		return UnspecifiedLabel
	}
	return string(f)
}

// Vacancy is a read-only job posting owned by the upstream API
type Vacancy struct {
	ID               VacancyID       `json:"id"`
	Title            string          `json:"title"`
	MunicipalityKey  MunicipalityKey `json:"municipality_key,omitempty"`
	MunicipalityRef  MunicipalityRef `json:"-"`
	Description      string          `json:"description"`
	FunctionCategory Facet           `json:"function_category,omitempty"`
	EducationLevel   Facet           `json:"education_level,omitempty"`
}

// MunicipalityAddress is the id the vacancy's municipality is requested by:
// the upstream spelling when known, otherwise the canonical key
func (v Vacancy) MunicipalityAddress() MunicipalityRef {
	if v.MunicipalityRef != "" {
		return v.MunicipalityRef
	}
	return MunicipalityRef(v.MunicipalityKey)
}

// Coordinates is a WGS84 point
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Municipality is a Dutch gemeente
type Municipality struct {
	Key    MunicipalityKey
	Ref    MunicipalityRef // upstream spelling of the id
	Name   string
	Coords *Coordinates // nil when the API has no location
}

// BoundaryFeature is one polygon of the municipality boundary dataset
type BoundaryFeature struct {
	Key      MunicipalityKey
	Name     string
	Geometry json.RawMessage
}
