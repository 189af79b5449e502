// Package chat runs the tool-calling conversation loop between the client,
// the model provider, and the media tools.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/soyeahso/cineco/internal/llm"
	"github.com/soyeahso/cineco/internal/logging"
	"github.com/soyeahso/cineco/internal/media"
)

// ErrEmptyMessage is returned when a chat request carries no user message.
var ErrEmptyMessage = errors.New("chat: empty message")

// Dispatcher exposes tool definitions to the model and executes tool calls.
// Execution results are always in-band values, never errors, so failures
// flow back to the model as content it can explain to the user.
type Dispatcher interface {
	Definitions() []llm.ToolDefinition
	Dispatch(ctx context.Context, name string, args json.RawMessage) any
}

// Result is the outcome of one conversational turn.
type Result struct {
	Response string       `json:"response"`
	Data     []media.Item `json:"data"`
}

// Orchestrator drives at most one tool round per turn: an opening completion
// with tools offered, an optional tool dispatch, and a closing completion
// with tools withheld so the model must answer in prose.
type Orchestrator struct {
	client llm.Client
	model  string
	tools  Dispatcher
	log    *logging.Logger
}

// NewOrchestrator builds an orchestrator for the given provider and tool set.
func NewOrchestrator(client llm.Client, model string, tools Dispatcher, log *logging.Logger) *Orchestrator {
	return &Orchestrator{
		client: client,
		model:  model,
		tools:  tools,
		log:    log.Sub("chat"),
	}
}

// Respond handles one user turn. The history already contains the latest
// user message, so it is threaded through verbatim after the system prompt.
func (o *Orchestrator) Respond(ctx context.Context, message string, history []llm.Message) (*Result, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}

	messages := make([]llm.Message, 0, len(history)+3)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)

	resp, err := o.client.Complete(ctx, llm.CompletionRequest{
		Model:      o.model,
		Messages:   messages,
		Tools:      o.tools.Definitions(),
		ToolChoice: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("chat: opening completion: %w", err)
	}

	if len(resp.ToolCalls) == 0 {
		return &Result{Response: resp.Content}, nil
	}

	// Only the first requested call is honored. The closing completion gets
	// no tools, so the model cannot chain further calls within this turn.
	call := resp.ToolCalls[0]
	o.log.Info().
		Str("tool", call.Function.Name).
		Str("call_id", call.ID).
		Msg("dispatching tool call")

	output := o.tools.Dispatch(ctx, call.Function.Name, json.RawMessage(call.Function.Arguments))

	encoded, err := json.Marshal(output)
	if err != nil {
		return nil, fmt.Errorf("chat: encode tool result: %w", err)
	}

	messages = append(messages,
		llm.Message{
			Role:    llm.RoleAssistant,
			Content: resp.Content,
			ToolCalls: []llm.ToolCall{{
				ID:   call.ID,
				Type: "function",
				Function: llm.FunctionCall{
					Name:      call.Function.Name,
					Arguments: call.Function.Arguments,
				},
			}},
		},
		llm.Message{
			Role:       llm.RoleTool,
			ToolCallID: call.ID,
			Content:    string(encoded),
		},
	)

	final, err := o.client.Complete(ctx, llm.CompletionRequest{
		Model:    o.model,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("chat: closing completion: %w", err)
	}

	result := &Result{Response: final.Content}
	if items, ok := output.([]media.Item); ok {
		result.Data = items
	}
	return result, nil
}
