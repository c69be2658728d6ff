// Package httpview serves the list, map and detail views as JSON for a
// browser front end.
package httpview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/internal/view"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// Envelope is the body of every view response
type Envelope struct {
	Status     string    `json:"status"`
	Activation uuid.UUID `json:"activation"`
	Data       any       `json:"data,omitempty"`
	Message    string    `json:"message,omitempty"`
}

// Handler serves the views. Every request runs its own activation, so a
// client that navigates away cancels only its own fetches.
type Handler struct {
	source   catalog.Source
	resolver *vacancy.DetailResolver
	strategy vacancy.StrategyName
	log      *logging.Logger
}

func NewHandler(source catalog.Source, resolver *vacancy.DetailResolver, strategy vacancy.StrategyName, log *logging.Logger) (*Handler, error) {
	if source == nil {
		return nil, fmt.Errorf("httpview: source is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("httpview: detail resolver is required")
	}
	if strategy == "" {
		strategy = vacancy.StrategyChoropleth
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{source: source, resolver: resolver, strategy: strategy, log: log.Named("httpview")}, nil
}

// Register mounts the view routes on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /views/list", h.list)
	mux.HandleFunc("GET /views/map", h.mapView)
	mux.HandleFunc("GET /views/vacancies/{id}", h.detail)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := vacancy.NewCriteria(q.Get("q"), q.Get("category"), q.Get("education"))

	c := view.NewListView(h.source, h.log)
	defer c.Deactivate()

	state, err := c.Load(r.Context(), view.NoParams{})
	respond(w, h.log, state, err, func(d view.ListData) any {
		return d.Page(criteria)
	})
}

func (h *Handler) mapView(w http.ResponseWriter, r *http.Request) {
	name := h.strategy
	if s := r.URL.Query().Get("strategy"); s != "" {
		parsed, err := vacancy.ParseStrategy(s)
		if err != nil {
			writeJSON(w, h.log, http.StatusBadRequest, Envelope{Status: view.StatusError.String(), Message: err.Error()})
			return
		}
		name = parsed
	}

	c := view.NewMapView(h.source, h.log)
	defer c.Deactivate()

	state, err := c.Load(r.Context(), view.MapParams{Strategy: name})
	respond(w, h.log, state, err, func(d view.MapData) any { return d })
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, h.log, http.StatusBadRequest, Envelope{
			Status:  view.StatusError.String(),
			Message: fmt.Sprintf("invalid vacancy id %q", r.PathValue("id")),
		})
		return
	}

	c := view.NewDetailView(h.resolver, h.log)
	defer c.Deactivate()

	state, err := c.Load(r.Context(), view.DetailParams{ID: domain.VacancyID(id)})
	respond(w, h.log, state, err, func(d vacancy.Detail) any { return d })
}

func respond[T any](w http.ResponseWriter, log *logging.Logger, state view.State[T], err error, render func(T) any) {
	if err != nil {
		// client went away; nothing useful to write
		if errors.Is(err, context.Canceled) {
			return
		}
		writeJSON(w, log, http.StatusGatewayTimeout, Envelope{Status: view.StatusError.String(), Message: err.Error()})
		return
	}

	env := Envelope{Status: state.Status.String(), Activation: state.Activation}
	switch state.Status {
	case view.StatusReady:
		env.Data = render(state.Data)
		writeJSON(w, log, http.StatusOK, env)
	case view.StatusError:
		env.Message = state.Message
		writeJSON(w, log, statusFor(state.Err), env)
	default:
		writeJSON(w, log, http.StatusServiceUnavailable, env)
	}
}

func statusFor(err error) int {
	var te *domain.TransportError
	var fe *domain.FormatError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &te), errors.As(err, &fe):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, log *logging.Logger, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("failed to write view response", "err", err)
	}
}
