package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
	"github.com/honeycarbs/vacancy-atlas/pkg/vacancyapi"
)

type staticBoundaries struct {
	data []byte
	err  error
}

func (s staticBoundaries) Load(context.Context) ([]byte, error) {
	return s.data, s.err
}

const boundariesDoc = `{"type":"FeatureCollection","features":[
	{"type":"Feature","properties":{"statcode":"GM0363","statnaam":"Amsterdam"},"geometry":{"type":"Polygon","coordinates":[]}}
]}`

func newProvider(t *testing.T, routes map[string]string, status map[string]int) *Provider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code, ok := status[r.URL.Path]; ok {
			w.WriteHeader(code)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := vacancyapi.NewClient(vacancyapi.Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)

	p, err := NewProvider(client, staticBoundaries{data: []byte(boundariesDoc)}, logging.Nop())
	require.NoError(t, err)
	return p
}

func TestProviderCollections(t *testing.T) {
	p := newProvider(t, map[string]string{
		"/api/vacancies":      `[{"id":1,"title":"Boekhouder","municipality_id":"GM0363"},{"id":"bad"}]`,
		"/api/municipalities": `[{"id":363,"name":"Amsterdam"}]`,
	}, nil)

	vs, err := p.Vacancies(context.Background())
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, domain.MunicipalityKey("GM0363"), vs[0].MunicipalityKey)

	ms, err := p.Municipalities(context.Background())
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, domain.MunicipalityKey("GM0363"), ms[0].Key)

	bs, err := p.Boundaries(context.Background())
	require.NoError(t, err)
	require.Len(t, bs, 1)
	assert.Equal(t, "Amsterdam", bs[0].Name)
	assert.Equal(t, "api", p.Name())
}

func TestProviderMalformedCollectionIsFormatError(t *testing.T) {
	p := newProvider(t, map[string]string{
		"/api/vacancies":      `{"detail":"unexpected"}`,
		"/api/municipalities": `<html></html>`,
	}, nil)

	_, err := p.Vacancies(context.Background())
	assert.True(t, domain.IsFormat(err))

	_, err = p.Municipalities(context.Background())
	assert.True(t, domain.IsFormat(err))
}

func TestProviderErrorTaxonomy(t *testing.T) {
	p := newProvider(t, map[string]string{
		"/api/vacancies/1": `{"id":1,"title":"Boekhouder","municipality_id":"GM0363"}`,
	}, map[string]int{
		"/api/vacancies": http.StatusInternalServerError,
	})

	_, err := p.Vacancy(context.Background(), 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = p.Vacancies(context.Background())
	var te *domain.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "vacancies", te.Resource)

	v, err := p.Vacancy(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Boekhouder", v.Title)

	_, err = p.Municipality(context.Background(), "GM9999")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = p.Municipality(context.Background(), "")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "zero key is a referential gap, no request is made")
}

func TestProviderNumericMunicipalityIDs(t *testing.T) {
	p := newProvider(t, map[string]string{
		"/api/vacancies/42":     `{"id":42,"title":"Tuinman","municipality_id":2}`,
		"/api/municipalities":   `[{"id":2,"name":"Aalsmeer"}]`,
		"/api/municipalities/2": `{"id":2,"name":"Aalsmeer"}`,
	}, nil)

	v, err := p.Vacancy(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, domain.MunicipalityKey("GM0002"), v.MunicipalityKey)
	assert.Equal(t, domain.MunicipalityRef("2"), v.MunicipalityRef)

	ms, err := p.Municipalities(context.Background())
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, v.MunicipalityKey, ms[0].Key, "list view joins on the canonical key")

	resolver, err := vacancy.NewDetailResolver(p, logging.Nop())
	require.NoError(t, err)
	d, err := resolver.Resolve(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Aalsmeer", d.MunicipalityName, "detail addresses the municipality by its upstream id")
	assert.True(t, d.MunicipalityKnown)

	_, err = p.Municipality(context.Background(), "GM0002")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "the canonical spelling is not a route on a numeric API")
}

func TestProviderPropagatesCancellation(t *testing.T) {
	p := newProvider(t, map[string]string{"/api/vacancies": `[]`}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Vacancies(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewProviderValidation(t *testing.T) {
	_, err := NewProvider(nil, staticBoundaries{}, nil)
	assert.Error(t, err)

	client, err := vacancyapi.NewClient(vacancyapi.Config{})
	require.NoError(t, err)
	_, err = NewProvider(client, nil, nil)
	assert.Error(t, err)
}
