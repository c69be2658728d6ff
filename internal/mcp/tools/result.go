package tools

import (
	"context"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-atlas/internal/view"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// settle turns a finished view activation into its data, or into an error
// carrying the message the view would render
func settle[T any](state view.State[T], err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	switch state.Status {
	case view.StatusReady:
		return state.Data, nil
	case view.StatusError:
		return zero, &viewError{message: state.Message, err: state.Err}
	default:
		return zero, errors.New(state.Status.String())
	}
}

type viewError struct {
	message string
	err     error
}

func (e *viewError) Error() string { return e.message }
func (e *viewError) Unwrap() error { return e.err }

// load runs a throwaway controller for a single tool call
func load[P, T any](ctx context.Context, c *view.Controller[P, T], params P) (T, error) {
	defer c.Deactivate()
	state, err := c.Load(ctx, params)
	return settle(state, err)
}
