package view

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
)

// fakeSource serves fixed collections; gate, when set, blocks every
// collection fetch until it is closed or the context ends
type fakeSource struct {
	vacancies      []domain.Vacancy
	municipalities []domain.Municipality
	boundaries     []domain.BoundaryFeature

	vacanciesErr      error
	municipalitiesErr error
	boundariesErr     error

	gate     chan struct{}
	inFlight atomic.Int32
	maxSeen  atomic.Int32

	mu    sync.Mutex
	calls []string
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) enter(ctx context.Context, call string) error {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	if f.gate == nil {
		return nil
	}
	select {
	case <-f.gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeSource) Vacancies(ctx context.Context) ([]domain.Vacancy, error) {
	if err := f.enter(ctx, "vacancies"); err != nil {
		return nil, err
	}
	return f.vacancies, f.vacanciesErr
}

func (f *fakeSource) Vacancy(ctx context.Context, id domain.VacancyID) (domain.Vacancy, error) {
	if err := f.enter(ctx, "vacancy"); err != nil {
		return domain.Vacancy{}, err
	}
	for _, v := range f.vacancies {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Vacancy{}, domain.ErrNotFound
}

func (f *fakeSource) Municipalities(ctx context.Context) ([]domain.Municipality, error) {
	if err := f.enter(ctx, "municipalities"); err != nil {
		return nil, err
	}
	return f.municipalities, f.municipalitiesErr
}

func (f *fakeSource) Municipality(ctx context.Context, ref domain.MunicipalityRef) (domain.Municipality, error) {
	if err := f.enter(ctx, "municipality"); err != nil {
		return domain.Municipality{}, err
	}
	key, err := ref.Key()
	if err != nil {
		return domain.Municipality{}, domain.ErrNotFound
	}
	for _, m := range f.municipalities {
		if m.Key == key {
			return m, nil
		}
	}
	return domain.Municipality{}, domain.ErrNotFound
}

func (f *fakeSource) Boundaries(ctx context.Context) ([]domain.BoundaryFeature, error) {
	if err := f.enter(ctx, "boundaries"); err != nil {
		return nil, err
	}
	return f.boundaries, f.boundariesErr
}

func (f *fakeSource) callCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		vacancies: []domain.Vacancy{
			{ID: 1, Title: "Boekhouder", MunicipalityKey: "GM0363", Description: "Financiële administratie", FunctionCategory: "Finance", EducationLevel: "HBO"},
			{ID: 2, Title: "Loodgieter", MunicipalityKey: "GM0363", FunctionCategory: "Techniek", EducationLevel: "MBO"},
			{ID: 3, Title: "Data-analist", MunicipalityKey: "GM0599", Description: "Dashboards", FunctionCategory: "Data"},
			{ID: 42, Title: "Beleidsmedewerker", MunicipalityKey: "GM9999"},
		},
		municipalities: []domain.Municipality{
			{Key: "GM0363", Name: "Amsterdam", Coords: &domain.Coordinates{Latitude: 52.37, Longitude: 4.89}},
			{Key: "GM0599", Name: "Rotterdam"},
			{Key: "GM0014", Name: "Groningen", Coords: &domain.Coordinates{Latitude: 53.22, Longitude: 6.57}},
		},
		boundaries: []domain.BoundaryFeature{
			{Key: "GM0363", Name: "Amsterdam"},
			{Key: "GM0599", Name: "Rotterdam"},
			{Key: "GM0344", Name: "Utrecht"},
		},
	}
}
