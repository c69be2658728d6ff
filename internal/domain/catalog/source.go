package catalog

import (
	"context"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
)

// Source delivers validated domain records from an external data source.
//
// Collection methods return a *domain.FormatError when the payload is not a
// collection at all; callers decide whether to substitute an empty one.
// Single-entity methods return an error wrapping domain.ErrNotFound on a miss.
type Source interface {
	// e.g. "api"
	Name() string

	Vacancies(ctx context.Context) ([]domain.Vacancy, error)
	Vacancy(ctx context.Context, id domain.VacancyID) (domain.Vacancy, error)
	Municipalities(ctx context.Context) ([]domain.Municipality, error)
	// ref is the upstream spelling of the id, see domain.Vacancy.MunicipalityAddress
	Municipality(ctx context.Context, ref domain.MunicipalityRef) (domain.Municipality, error)
	Boundaries(ctx context.Context) ([]domain.BoundaryFeature, error)
}
