package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

type collections struct {
	vacancies      []domain.Vacancy
	municipalities []domain.Municipality
	boundaries     []domain.BoundaryFeature
}

// fetchAll issues the required collection fetches concurrently and joins
// them. The first transport failure cancels the others and is returned.
// A malformed collection is replaced by an empty one and only logged.
func fetchAll(ctx context.Context, source catalog.Source, withBoundaries bool, log *logging.Logger) (collections, error) {
	var out collections
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		vs, err := source.Vacancies(gctx)
		out.vacancies, err = tolerateFormat("vacancies", vs, err, log)
		return err
	})
	g.Go(func() error {
		ms, err := source.Municipalities(gctx)
		out.municipalities, err = tolerateFormat("municipalities", ms, err, log)
		return err
	})
	if withBoundaries {
		g.Go(func() error {
			bs, err := source.Boundaries(gctx)
			out.boundaries, err = tolerateFormat("boundaries", bs, err, log)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return collections{}, err
	}
	return out, nil
}

func tolerateFormat[T any](resource string, items []T, err error, log *logging.Logger) ([]T, error) {
	if err == nil {
		if items == nil {
			items = []T{}
		}
		return items, nil
	}
	if domain.IsFormat(err) {
		log.Warn("malformed collection treated as empty", "resource", resource, "err", err)
		return []T{}, nil
	}
	return nil, err
}
