package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
)

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Properties struct {
		StatCode json.RawMessage `json:"statcode"`
		StatNaam string          `json:"statnaam"`
	} `json:"properties"`
	Geometry json.RawMessage `json:"geometry"`
}

// Boundaries decodes a GeoJSON FeatureCollection of municipality polygons.
// Features are matched by their "statcode" property; features whose code is
// not a municipality code are skipped and reported.
func Boundaries(raw []byte) ([]domain.BoundaryFeature, Report, error) {
	if err := validate("boundaries", raw); err != nil {
		return nil, Report{}, &domain.FormatError{Resource: "boundaries", Err: err}
	}

	var fc featureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, Report{}, &domain.FormatError{Resource: "boundaries", Err: err}
	}

	report := Report{Total: len(fc.Features)}
	out := make([]domain.BoundaryFeature, 0, len(fc.Features))
	for i, f := range fc.Features {
		key, err := domain.ParseMunicipalityKeyJSON(f.Properties.StatCode)
		if err != nil {
			report.skip(i, err)
			continue
		}

		name := strings.TrimSpace(f.Properties.StatNaam)
		if name == "" {
			name = key.String()
		}
		out = append(out, domain.BoundaryFeature{
			Key:      key,
			Name:     name,
			Geometry: f.Geometry,
		})
	}

	return out, report, nil
}

// BoundaryLoader reads the static boundary dataset from a file path or an
// http(s) URL
type BoundaryLoader struct {
	source     string
	httpClient *http.Client
}

// NewBoundaryLoader builds a loader; httpClient may be nil
func NewBoundaryLoader(source string, httpClient *http.Client) (*BoundaryLoader, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("ingest: boundary source is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &BoundaryLoader{source: source, httpClient: httpClient}, nil
}

// Source returns the configured path or URL
func (l *BoundaryLoader) Source() string {
	return l.source
}

// Load fetches the raw GeoJSON document
func (l *BoundaryLoader) Load(ctx context.Context) ([]byte, error) {
	if !strings.HasPrefix(l.source, "http://") && !strings.HasPrefix(l.source, "https://") {
		data, err := os.ReadFile(l.source)
		if err != nil {
			return nil, &domain.TransportError{Resource: "boundaries", Err: err}
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("ingest: build boundaries request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Resource: "boundaries", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.TransportError{
			Resource: "boundaries",
			Err:      fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Resource: "boundaries", Err: err}
	}
	return data, nil
}
