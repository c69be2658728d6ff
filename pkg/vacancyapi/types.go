package vacancyapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned for a 404 on a single-entity endpoint
var ErrNotFound = errors.New("vacancyapi: not found")

// Config defines vacancy API client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client reads the municipal vacancy REST API.
// Payloads are returned undecoded; validation happens at the ingestion layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ListParams are the optional server-side filters of GET /api/vacancies
type ListParams struct {
	Municipality     string
	FunctionCategory string
	EducationLevel   string
	Skip             int
	Limit            int
}

// StatusError is a non-success HTTP response
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error (%d): %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("API error (%d): %s", e.Code, e.Body)
}

// Health is the body of GET /health
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// SyntaxError is a response body that is not JSON at all
type SyntaxError struct {
	Path string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("response from %s is not valid JSON", e.Path)
}
