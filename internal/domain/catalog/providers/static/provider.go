// Package static serves a fixed in-memory catalog. It backs the tool and
// HTTP handler tests, and the server serves Sample when CATALOG_SOURCE=static.
package static

import (
	"context"
	"fmt"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
)

// Provider implements catalog.Source over fixed collections.
// A non-nil Err is returned from every call.
type Provider struct {
	VacancyList      []domain.Vacancy
	MunicipalityList []domain.Municipality
	BoundaryList     []domain.BoundaryFeature
	Err              error
}

func (p *Provider) Name() string {
	return "static"
}

func (p *Provider) Vacancies(ctx context.Context) ([]domain.Vacancy, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}
	return p.VacancyList, nil
}

func (p *Provider) Vacancy(ctx context.Context, id domain.VacancyID) (domain.Vacancy, error) {
	if err := p.check(ctx); err != nil {
		return domain.Vacancy{}, err
	}
	for _, v := range p.VacancyList {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Vacancy{}, fmt.Errorf("vacancy %d: %w", id, domain.ErrNotFound)
}

func (p *Provider) Municipalities(ctx context.Context) ([]domain.Municipality, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}
	return p.MunicipalityList, nil
}

func (p *Provider) Municipality(ctx context.Context, ref domain.MunicipalityRef) (domain.Municipality, error) {
	if err := p.check(ctx); err != nil {
		return domain.Municipality{}, err
	}
	key, err := ref.Key()
	if err != nil {
		return domain.Municipality{}, fmt.Errorf("municipality %q: %w", ref, domain.ErrNotFound)
	}
	for _, m := range p.MunicipalityList {
		if m.Key == key {
			return m, nil
		}
	}
	return domain.Municipality{}, fmt.Errorf("municipality %s: %w", key, domain.ErrNotFound)
}

func (p *Provider) Boundaries(ctx context.Context) ([]domain.BoundaryFeature, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}
	return p.BoundaryList, nil
}

func (p *Provider) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.Err
}

// Sample is a small catalog covering the join edge cases: a vacancy whose
// municipality is unknown and a municipality without vacancies.
func Sample() *Provider {
	ams := domain.Coordinates{Latitude: 52.3676, Longitude: 4.9041}
	rdam := domain.Coordinates{Latitude: 51.9244, Longitude: 4.4777}

	return &Provider{
		VacancyList: []domain.Vacancy{
			{ID: 1, Title: "Beleidsadviseur", MunicipalityKey: "GM0363", Description: "Adviseren over wonen en ruimte.", FunctionCategory: "Beleid", EducationLevel: "WO"},
			{ID: 2, Title: "Monteur", MunicipalityKey: "GM0599", Description: "Onderhoud aan gemalen.", FunctionCategory: "Techniek", EducationLevel: "MBO"},
			{ID: 3, Title: "Data-analist", MunicipalityKey: "GM0363", Description: "Dashboards voor de raad.", FunctionCategory: "ICT"},
			{ID: 42, Title: "Jurist", MunicipalityKey: "GM9999", Description: "Bezwaar en beroep."},
		},
		MunicipalityList: []domain.Municipality{
			{Key: "GM0363", Name: "Amsterdam", Coords: &ams},
			{Key: "GM0599", Name: "Rotterdam", Coords: &rdam},
			{Key: "GM0344", Name: "Utrecht"},
		},
		BoundaryList: []domain.BoundaryFeature{
			{Key: "GM0363", Name: "Amsterdam", Geometry: []byte(`{"type":"Point","coordinates":[4.9,52.37]}`)},
			{Key: "GM0599", Name: "Rotterdam", Geometry: []byte(`{"type":"Point","coordinates":[4.48,51.92]}`)},
			{Key: "GM0344", Name: "Utrecht", Geometry: []byte(`{"type":"Point","coordinates":[5.12,52.09]}`)},
		},
	}
}
