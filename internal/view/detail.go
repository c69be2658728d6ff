package view

import (
	"context"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// DetailParams addresses a detail view by vacancy id
type DetailParams struct {
	ID domain.VacancyID
}

// LoadDetail resolves one vacancy and its municipality
func LoadDetail(resolver *vacancy.DetailResolver) LoadFunc[DetailParams, vacancy.Detail] {
	return func(ctx context.Context, params DetailParams) (vacancy.Detail, error) {
		return resolver.Resolve(ctx, params.ID)
	}
}

// NewDetailView builds the detail view controller
func NewDetailView(resolver *vacancy.DetailResolver, log *logging.Logger) *Controller[DetailParams, vacancy.Detail] {
	return NewController("detail", LoadDetail(resolver), log)
}
