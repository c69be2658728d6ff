package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/internal/ingest"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
	"github.com/honeycarbs/vacancy-atlas/pkg/vacancyapi"
)

// apiClient describes the subset of the vacancy API client used by the provider.
type apiClient interface {
	Vacancies(ctx context.Context, params vacancyapi.ListParams) (json.RawMessage, error)
	Vacancy(ctx context.Context, id int64) (json.RawMessage, error)
	Municipalities(ctx context.Context) (json.RawMessage, error)
	Municipality(ctx context.Context, id string) (json.RawMessage, error)
}

// boundaryLoader describes the static boundary dataset reader.
type boundaryLoader interface {
	Load(ctx context.Context) ([]byte, error)
}

// Provider implements catalog.Source on top of the REST API and the
// boundary dataset
type Provider struct {
	client     apiClient
	boundaries boundaryLoader
	log        *logging.Logger
}

// NewProvider builds an API-backed provider
func NewProvider(client apiClient, boundaries boundaryLoader, log *logging.Logger) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("api provider: client is required")
	}
	if boundaries == nil {
		return nil, fmt.Errorf("api provider: boundary loader is required")
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Provider{client: client, boundaries: boundaries, log: log.Named("catalog.api")}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "api"
}

// Vacancies loads and validates every vacancy
func (p *Provider) Vacancies(ctx context.Context) ([]domain.Vacancy, error) {
	raw, err := p.client.Vacancies(ctx, vacancyapi.ListParams{})
	if err != nil {
		return nil, classify("vacancies", err)
	}

	out, report, err := ingest.Vacancies(raw)
	if err != nil {
		return nil, err
	}
	p.logReport("vacancies", report)
	return out, nil
}

// Vacancy loads one vacancy by id
func (p *Provider) Vacancy(ctx context.Context, id domain.VacancyID) (domain.Vacancy, error) {
	raw, err := p.client.Vacancy(ctx, int64(id))
	if err != nil {
		return domain.Vacancy{}, classify("vacancy", err)
	}

	v, report, err := ingest.Vacancy(raw)
	if err != nil {
		return domain.Vacancy{}, err
	}
	p.logReport("vacancy", report)
	return v, nil
}

// Municipalities loads and validates every municipality
func (p *Provider) Municipalities(ctx context.Context) ([]domain.Municipality, error) {
	raw, err := p.client.Municipalities(ctx)
	if err != nil {
		return nil, classify("municipalities", err)
	}

	out, report, err := ingest.Municipalities(raw)
	if err != nil {
		return nil, err
	}
	p.logReport("municipalities", report)
	return out, nil
}

// Municipality loads one municipality. The request path uses ref as the API
// spelled it, so numeric and GM-coded APIs are both addressed correctly.
func (p *Provider) Municipality(ctx context.Context, ref domain.MunicipalityRef) (domain.Municipality, error) {
	key, err := ref.Key()
	if err != nil {
		return domain.Municipality{}, fmt.Errorf("municipality %q: %w", ref, domain.ErrNotFound)
	}

	raw, err := p.client.Municipality(ctx, string(ref))
	if err != nil {
		return domain.Municipality{}, classify("municipality", err)
	}

	m, err := ingest.Municipality(raw)
	if err != nil {
		return domain.Municipality{}, err
	}
	if m.Key != key {
		p.log.Warn("municipality endpoint answered with another key", "requested", ref, "received", m.Key)
	}
	return m, nil
}

// Boundaries loads the municipality boundary polygons
func (p *Provider) Boundaries(ctx context.Context) ([]domain.BoundaryFeature, error) {
	raw, err := p.boundaries.Load(ctx)
	if err != nil {
		return nil, err
	}

	out, report, err := ingest.Boundaries(raw)
	if err != nil {
		return nil, err
	}
	p.logReport("boundaries", report)
	return out, nil
}

func (p *Provider) logReport(resource string, r ingest.Report) {
	if r.Skipped == 0 && r.Degraded == 0 {
		p.log.Debug("collection ingested", "resource", resource, "total", r.Total)
		return
	}
	p.log.Warn("collection ingested with problems",
		"resource", resource,
		"total", r.Total,
		"skipped", r.Skipped,
		"degraded", r.Degraded,
		"problems", r.Problems,
	)
}

// classify maps client failures onto the domain error taxonomy
func classify(resource string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, vacancyapi.ErrNotFound) {
		return fmt.Errorf("%s: %w", resource, domain.ErrNotFound)
	}

	var se *vacancyapi.SyntaxError
	if errors.As(err, &se) {
		return &domain.FormatError{Resource: resource, Err: err}
	}
	return &domain.TransportError{Resource: resource, Err: err}
}

var _ catalog.Source = (*Provider)(nil)
