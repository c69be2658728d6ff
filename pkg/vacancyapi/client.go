package vacancyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

const (
	defaultBaseURL = "http://localhost:8000"
	maxErrorBody   = 4096
)

// NewClient instantiates a vacancy API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("vacancyapi: parse base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// Vacancies fetches GET /api/vacancies
func (c *Client) Vacancies(ctx context.Context, params ListParams) (json.RawMessage, error) {
	values := url.Values{}
	if params.Municipality != "" {
		values.Set("municipality", params.Municipality)
	}
	if params.FunctionCategory != "" {
		values.Set("function_category", params.FunctionCategory)
	}
	if params.EducationLevel != "" {
		values.Set("education_level", params.EducationLevel)
	}
	if params.Skip > 0 {
		values.Set("skip", strconv.Itoa(params.Skip))
	}
	if params.Limit > 0 {
		values.Set("limit", strconv.Itoa(params.Limit))
	}

	return c.get(ctx, values, "api", "vacancies")
}

// Vacancy fetches GET /api/vacancies/{id}
func (c *Client) Vacancy(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.get(ctx, nil, "api", "vacancies", strconv.FormatInt(id, 10))
}

// Municipalities fetches GET /api/municipalities
func (c *Client) Municipalities(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, nil, "api", "municipalities")
}

// Municipality fetches GET /api/municipalities/{id}
func (c *Client) Municipality(ctx context.Context, id string) (json.RawMessage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("vacancyapi: municipality id is required")
	}
	return c.get(ctx, nil, "api", "municipalities", id)
}

// Health fetches GET /health
func (c *Client) Health(ctx context.Context) (Health, error) {
	raw, err := c.get(ctx, nil, "health")
	if err != nil {
		return Health{}, err
	}

	var h Health
	if err := json.Unmarshal(raw, &h); err != nil {
		return Health{}, fmt.Errorf("vacancyapi: decode health: %w", err)
	}
	return h, nil
}

func (c *Client) get(ctx context.Context, values url.Values, segments ...string) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("vacancyapi: client is nil")
	}

	u, err := c.buildURL(values, segments...)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("vacancyapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vacancyapi: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s", ErrNotFound, req.URL.Path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("vacancyapi: %w", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("vacancyapi: read body: %w", err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("vacancyapi: %w", &SyntaxError{Path: req.URL.Path})
	}

	return json.RawMessage(body), nil
}

func (c *Client) buildURL(values url.Values, segments ...string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("vacancyapi: parse base url: %w", err)
	}

	u.Path = path.Join(append([]string{"/", u.Path}, segments...)...)

	if len(values) > 0 {
		u.RawQuery = values.Encode()
	}
	return u.String(), nil
}
