package model

import (
	"context"
	"fmt"
	"sync"
)

// Message is a single role-tagged chat message sent to a model backend.
// Role is one of "system", "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationOptions carries the sampling parameters forwarded to the backend.
// Backends that do not support a parameter document it as ignored.
type GenerationOptions struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
}

// DefaultGenerationOptions returns the sampling parameters used when a caller
// provides none.
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{Temperature: 0.7, TopP: 1.0}
}

// Request captures the normalized model input produced by agents.
type Request struct {
	Model    string            `json:"model"`
	Messages []Message         `json:"messages"`
	Options  GenerationOptions `json:"options"`
}

// Response is the single text payload returned by a backend call.
type Response struct {
	Content string `json:"content"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required by agents to drive generation.
//
// Generate performs one synchronous request/response round trip. Transport or
// parse failures are returned as errors; callers (agent.Node) convert them
// into failed execution results rather than propagating them further.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
//
// Responses are keyed by the content of the last message in the request; an
// unknown input yields a deterministic echo-style completion. FailNext allows
// scripting transient backend failures to exercise retry paths.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	failures  int
	calls     int
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// FailNext scripts the next n Generate calls to return an error before any
// canned response is considered.
func (m *MockModel) FailNext(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = n
}

// Calls returns the number of Generate invocations observed so far.
func (m *MockModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.failures > 0 {
		m.failures--
		return nil, fmt.Errorf("mock backend failure")
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	input := req.Messages[len(req.Messages)-1].Content
	if canned, ok := m.responses[input]; ok {
		return &Response{Content: canned}, nil
	}
	return &Response{Content: fmt.Sprintf("Mock response to: %s", input)}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
