// Package view drives the fetch → transform → render lifecycle of the list,
// map and detail views.
package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// Status is the lifecycle stage of a view
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is a snapshot of a view. Data is only set when Status is StatusReady;
// Err and Message only when it is StatusError.
type State[T any] struct {
	Status     Status
	Data       T
	Err        error
	Message    string
	Activation uuid.UUID
}

// LoadFunc fetches and transforms everything one view activation needs
type LoadFunc[P, T any] func(ctx context.Context, params P) (T, error)

// ErrNotActivated is returned by Refresh before the first Activate
var ErrNotActivated = errors.New("view: not activated")

// Controller runs one load task per activation. Activating again, refreshing
// or deactivating cancels the running task, and its result is discarded
// even if it arrives later.
type Controller[P, T any] struct {
	name string
	load LoadFunc[P, T]
	log  *logging.Logger

	mu        sync.Mutex
	state     State[T]
	params    P
	activated bool
	gen       uint64
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewController builds an idle controller
func NewController[P, T any](name string, load LoadFunc[P, T], log *logging.Logger) *Controller[P, T] {
	if log == nil {
		log = logging.Nop()
	}
	return &Controller[P, T]{
		name: name,
		load: load,
		log:  log.Named("view").With("view", name),
	}
}

// Activate moves the view to StatusLoading and starts a load for params
func (c *Controller[P, T]) Activate(ctx context.Context, params P) uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.gen++
	gen := c.gen
	id := uuid.New()

	taskCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.params = params
	c.activated = true
	c.state = State[T]{Status: StatusLoading, Activation: id}

	c.log.Debug("activation started", "activation", id)
	go c.run(taskCtx, gen, id, params, done)

	return id
}

// Refresh re-activates with the most recent params
func (c *Controller[P, T]) Refresh(ctx context.Context) (uuid.UUID, error) {
	c.mu.Lock()
	params, ok := c.params, c.activated
	c.mu.Unlock()

	if !ok {
		return uuid.Nil, ErrNotActivated
	}
	return c.Activate(ctx, params), nil
}

// Deactivate tears the view down and returns it to StatusIdle
func (c *Controller[P, T]) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.gen++
	c.state = State[T]{Status: StatusIdle}
}

// State returns the current snapshot
func (c *Controller[P, T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Wait blocks until the current activation settles or ctx ends
func (c *Controller[P, T]) Wait(ctx context.Context) (State[T], error) {
	for {
		c.mu.Lock()
		state, done := c.state, c.done
		c.mu.Unlock()

		if state.Status != StatusLoading || done == nil {
			return state, nil
		}

		select {
		case <-done:
		case <-ctx.Done():
			return c.State(), ctx.Err()
		}
	}
}

// Load activates and waits: the request/response form used by the servers
func (c *Controller[P, T]) Load(ctx context.Context, params P) (State[T], error) {
	c.Activate(ctx, params)
	return c.Wait(ctx)
}

func (c *Controller[P, T]) stopLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller[P, T]) run(ctx context.Context, gen uint64, id uuid.UUID, params P, done chan struct{}) {
	defer close(done)

	data, err := c.safeLoad(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.log.Debug("discarding superseded result", "activation", id, "err", err)
		return
	}
	c.stopLocked()

	if err != nil {
		c.log.Warn("activation failed", "activation", id, "err", err)
		c.state = State[T]{
			Status:     StatusError,
			Err:        err,
			Message:    domain.UserMessage(err),
			Activation: id,
		}
		return
	}

	c.log.Debug("activation ready", "activation", id)
	c.state = State[T]{Status: StatusReady, Data: data, Activation: id}
}

func (c *Controller[P, T]) safeLoad(ctx context.Context, params P) (data T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("view %s: load panicked: %v", c.name, r)
		}
	}()
	return c.load(ctx, params)
}
