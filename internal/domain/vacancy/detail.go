package vacancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// DetailSource is the subset of the catalog the detail page needs
type DetailSource interface {
	Vacancy(ctx context.Context, id domain.VacancyID) (domain.Vacancy, error)
	Municipality(ctx context.Context, ref domain.MunicipalityRef) (domain.Municipality, error)
}

// Detail is a single vacancy merged with its municipality
type Detail struct {
	Vacancy           domain.Vacancy `json:"vacancy"`
	MunicipalityName  string         `json:"municipality"`
	MunicipalityKnown bool           `json:"municipality_known"`
	CategoryLabel     string         `json:"function_category"`
	EducationLabel    string         `json:"education_level"`
	Breadcrumb        []Link         `json:"breadcrumb"`
	BackHref          string         `json:"back_href"`
}

// HomeHref is the list/map overview route
const HomeHref = "/"

// DetailResolver loads a vacancy and then, sequentially, its municipality
type DetailResolver struct {
	source DetailSource
	log    *logging.Logger
}

// NewDetailResolver builds a resolver
func NewDetailResolver(source DetailSource, log *logging.Logger) (*DetailResolver, error) {
	if source == nil {
		return nil, fmt.Errorf("vacancy.DetailResolver: source is required")
	}
	if log == nil {
		log = logging.Nop()
	}
	return &DetailResolver{source: source, log: log}, nil
}

// Resolve fails only when the vacancy itself cannot be loaded; an absent or
// failing municipality degrades to the unknown-municipality label.
// A missing vacancy yields an error wrapping domain.ErrNotFound.
func (r *DetailResolver) Resolve(ctx context.Context, id domain.VacancyID) (Detail, error) {
	v, err := r.source.Vacancy(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Detail{}, fmt.Errorf("vacancy %d: %w", id, domain.ErrNotFound)
		}
		return Detail{}, err
	}

	d := Detail{
		Vacancy:          v,
		MunicipalityName: domain.UnknownMunicipality,
		CategoryLabel:    v.FunctionCategory.Label(),
		EducationLabel:   v.EducationLevel.Label(),
		Breadcrumb: []Link{
			{Label: "Vacatures", Href: HomeHref},
			{Label: v.Title, Href: DetailHref(v.ID)},
		},
		BackHref: HomeHref,
	}

	if v.MunicipalityKey == "" {
		r.log.Debug("vacancy has no usable municipality reference", "vacancy_id", v.ID)
		return d, nil
	}

	m, err := r.source.Municipality(ctx, v.MunicipalityAddress())
	switch {
	case err == nil && m.Name != "":
		d.MunicipalityName = m.Name
		d.MunicipalityKnown = true
	case err == nil:
		r.log.Debug("municipality has no name", "vacancy_id", v.ID, "municipality", v.MunicipalityKey)
	case ctx.Err() != nil:
		return Detail{}, ctx.Err()
	case errors.Is(err, domain.ErrNotFound):
		r.log.Info("municipality reference does not resolve", "vacancy_id", v.ID, "municipality", v.MunicipalityKey)
	default:
		r.log.Warn("municipality fetch failed", "vacancy_id", v.ID, "municipality", v.MunicipalityKey, "err", err)
	}

	return d, nil
}
