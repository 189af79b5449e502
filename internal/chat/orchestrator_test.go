package chat

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/soyeahso/cineco/internal/llm"
	"github.com/soyeahso/cineco/internal/logging"
	"github.com/soyeahso/cineco/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	defs       []llm.ToolDefinition
	calledName string
	calledArgs string
	output     any
}

func (f *fakeDispatcher) Definitions() []llm.ToolDefinition { return f.defs }

func (f *fakeDispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) any {
	f.calledName = name
	f.calledArgs = string(args)
	return f.output
}

func newTestOrchestrator(client llm.Client, tools Dispatcher) *Orchestrator {
	return NewOrchestrator(client, "gpt-4o-mini", tools, logging.New(nil, "silent"))
}

func TestRespondRejectsEmptyMessage(t *testing.T) {
	o := newTestOrchestrator(&llm.MockClient{}, &fakeDispatcher{})
	_, err := o.Respond(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestRespondWithoutToolCall(t *testing.T) {
	var captured llm.CompletionRequest
	client := &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			captured = req
			return &llm.CompletionResponse{Content: "What kind of mood are you in?"}, nil
		},
	}
	tools := &fakeDispatcher{defs: []llm.ToolDefinition{{Name: "search_archive"}}}
	o := newTestOrchestrator(client, tools)

	history := []llm.Message{{Role: llm.RoleUser, Content: "hi"}}
	res, err := o.Respond(context.Background(), "hi", history)
	require.NoError(t, err)

	assert.Equal(t, "What kind of mood are you in?", res.Response)
	assert.Nil(t, res.Data)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, llm.RoleSystem, captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "Cineco")
	assert.Equal(t, "hi", captured.Messages[1].Content)
	assert.Equal(t, "auto", captured.ToolChoice)
	require.Len(t, captured.Tools, 1)
}

func TestRespondDataIsNullWithoutTool(t *testing.T) {
	o := newTestOrchestrator(&llm.MockClient{}, &fakeDispatcher{})

	res, err := o.Respond(context.Background(), "hello", []llm.Message{{Role: llm.RoleUser, Content: "hello"}})
	require.NoError(t, err)

	encoded, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"response": "mock response", "data": null}`, string(encoded))
}

func TestRespondDispatchesFirstToolCallOnly(t *testing.T) {
	var requests []llm.CompletionRequest
	client := &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			requests = append(requests, req)
			if len(requests) == 1 {
				return &llm.CompletionResponse{
					Content: "",
					ToolCalls: []llm.ToolCall{
						{ID: "call_1", Type: "function", Function: llm.FunctionCall{Name: "search_archive", Arguments: `{"query":"noir"}`}},
						{ID: "call_2", Type: "function", Function: llm.FunctionCall{Name: "search_youtube", Arguments: `{"query":"noir"}`}},
					},
				}, nil
			}
			return &llm.CompletionResponse{Content: "Found some moody noir for you."}, nil
		},
	}
	items := []media.Item{{Identifier: "detour", Title: "Detour"}}
	tools := &fakeDispatcher{defs: []llm.ToolDefinition{{Name: "search_archive"}}, output: items}
	o := newTestOrchestrator(client, tools)

	res, err := o.Respond(context.Background(), "find noir", []llm.Message{{Role: llm.RoleUser, Content: "find noir"}})
	require.NoError(t, err)

	assert.Equal(t, "Found some moody noir for you.", res.Response)
	assert.Equal(t, items, res.Data)

	// Only the first of the two requested calls runs.
	assert.Equal(t, "search_archive", tools.calledName)
	assert.Equal(t, `{"query":"noir"}`, tools.calledArgs)

	require.Len(t, requests, 2)

	// Closing completion carries the tool round but offers no tools.
	second := requests[1]
	assert.Empty(t, second.Tools)
	require.Len(t, second.Messages, 4)

	asst := second.Messages[2]
	assert.Equal(t, llm.RoleAssistant, asst.Role)
	require.Len(t, asst.ToolCalls, 1)
	assert.Equal(t, "call_1", asst.ToolCalls[0].ID)

	toolMsg := second.Messages[3]
	assert.Equal(t, llm.RoleTool, toolMsg.Role)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)

	var decoded []media.Item
	require.NoError(t, json.Unmarshal([]byte(toolMsg.Content), &decoded))
	assert.Equal(t, "detour", decoded[0].Identifier)
}

func TestRespondToolErrorFedBackToModel(t *testing.T) {
	var toolTurn string
	client := &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			if len(req.Tools) > 0 {
				return &llm.CompletionResponse{
					ToolCalls: []llm.ToolCall{
						{ID: "call_1", Type: "function", Function: llm.FunctionCall{Name: "search_archive", Arguments: `{"query":"x"}`}},
					},
				}, nil
			}
			toolTurn = req.Messages[len(req.Messages)-1].Content
			return &llm.CompletionResponse{Content: "Hit a snag searching, try again?"}, nil
		},
	}
	tools := &fakeDispatcher{
		defs:   []llm.ToolDefinition{{Name: "search_archive"}},
		output: media.ErrorResult{Error: "archive timeout"},
	}
	o := newTestOrchestrator(client, tools)

	res, err := o.Respond(context.Background(), "find x", []llm.Message{{Role: llm.RoleUser, Content: "find x"}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"error": "archive timeout"}`, toolTurn)
	assert.Equal(t, "Hit a snag searching, try again?", res.Response)
	assert.Nil(t, res.Data, "error results never populate data")
}

func TestRespondProviderErrorSurfaces(t *testing.T) {
	client := &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			return nil, &llm.ProviderError{Provider: "openai", Message: "rate limited", Code: 429}
		},
	}
	o := newTestOrchestrator(client, &fakeDispatcher{})

	_, err := o.Respond(context.Background(), "hi", []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	require.Error(t, err)

	var perr *llm.ProviderError
	assert.ErrorAs(t, err, &perr)
}
