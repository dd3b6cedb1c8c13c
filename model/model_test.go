package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModel_CannedResponse(t *testing.T) {
	m := NewMockModel("mock-1")
	m.AddResponse("ping", "pong")

	resp, err := m.Generate(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "ping"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Content)
	assert.Equal(t, 1, m.Calls())
}

func TestMockModel_EchoFallback(t *testing.T) {
	m := NewMockModel("mock-1")

	resp, err := m.Generate(context.Background(), Request{
		Messages: []Message{
			{Role: "system", Content: "sys"},
			{Role: "user", Content: "unknown"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: unknown", resp.Content)
}

func TestMockModel_ScriptedFailures(t *testing.T) {
	m := NewMockModel("mock-1")
	m.FailNext(2)

	req := Request{Messages: []Message{{Role: "user", Content: "x"}}}

	_, err := m.Generate(context.Background(), req)
	assert.Error(t, err)
	_, err = m.Generate(context.Background(), req)
	assert.Error(t, err)
	_, err = m.Generate(context.Background(), req)
	assert.NoError(t, err)
}

func TestMockModel_EmptyRequest(t *testing.T) {
	m := NewMockModel("mock-1")
	_, err := m.Generate(context.Background(), Request{})
	assert.Error(t, err)
}

func TestMockModel_Info(t *testing.T) {
	m := NewMockModel("mock-1")
	info := m.Info()
	assert.Equal(t, "mock-1", info.Name)
	assert.Equal(t, "mock", info.Provider)
}

func TestDefaultGenerationOptions(t *testing.T) {
	opts := DefaultGenerationOptions()
	assert.Equal(t, 0.7, opts.Temperature)
	assert.Equal(t, 1.0, opts.TopP)
	assert.Zero(t, opts.FrequencyPenalty)
	assert.Zero(t, opts.PresencePenalty)
}
