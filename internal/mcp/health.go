package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
	"github.com/honeycarbs/vacancy-atlas/pkg/vacancyapi"
)

const healthTimeout = 3 * time.Second

type healthBody struct {
	Status   string             `json:"status"`
	Upstream *vacancyapi.Health `json:"upstream,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// healthz reports ok only when the vacancy API answers its own health check
func healthz(checker HealthChecker, logger *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := healthBody{Status: "ok"}
		code := http.StatusOK

		if checker != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()

			h, err := checker.Health(ctx)
			if err != nil {
				logger.Warn("upstream health check failed", "err", err)
				body = healthBody{Status: "degraded", Error: err.Error()}
				code = http.StatusServiceUnavailable
			} else {
				body.Upstream = &h
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(body)
	}
}
