// Package tools holds the fixed tool catalog offered to the chat model and
// the dispatcher that routes model-requested invocations to provider calls.
package tools

import (
	"context"
	"encoding/json"

	"github.com/soyeahso/cineco/internal/llm"
	"github.com/soyeahso/cineco/internal/logging"
	"github.com/soyeahso/cineco/internal/media"
)

// Tool is one entry in the catalog.
type Tool interface {
	// Name returns the tool's identifier.
	Name() string

	// Description returns a human-readable description for the model.
	Description() string

	// Parameters returns the JSON Schema for the tool's arguments.
	Parameters() json.RawMessage

	// Execute runs the tool with the given JSON arguments.
	Execute(ctx context.Context, args json.RawMessage) (any, error)
}

// Registry holds the available tools in registration order.
type Registry struct {
	order []string
	tools map[string]Tool
	log   *logging.Logger
}

// NewRegistry creates an empty tool registry.
func NewRegistry(log *logging.Logger) *Registry {
	return &Registry{
		tools: make(map[string]Tool),
		log:   log.Sub("tools"),
	}
}

// Register adds a tool.
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.tools[t.Name()] = t
}

// Definitions returns model-ready definitions for all registered tools,
// in registration order.
func (r *Registry) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, llm.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return defs
}

// Dispatch routes a model-requested invocation to the named tool. Failures
// never surface as errors: unknown names and tool failures both come back as
// an in-band error value that is fed to the model as a normal tool result.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) any {
	t, ok := r.tools[name]
	if !ok {
		r.log.Warn().Str("tool", name).Msg("model requested unknown tool")
		return media.ErrorResult{Error: "Unknown function"}
	}

	r.log.Info().Str("tool", name).Msg("executing tool")
	out, err := t.Execute(ctx, args)
	if err != nil {
		r.log.Error().Err(err).Str("tool", name).Msg("tool execution failed")
		return media.ErrorResult{Error: err.Error()}
	}
	return out
}
