package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------- Serialization Tests --------------------

func TestTask_JSONRoundTrip(t *testing.T) {
	tk := New("write docs")
	tk.AgentType = "llm"
	tk.PreTools = []string{"upper"}
	tk.PostTools = []string{"echo"}
	tk.EvalCriteria = "complete and correct"
	tk.AppendHistory("draft one")

	encoded, err := tk.ToJSON()
	require.NoError(t, err)

	decoded, err := FromJSON(encoded)
	require.NoError(t, err)
	assert.Equal(t, tk, decoded)
}

func TestTask_WireKeys(t *testing.T) {
	encoded, err := New("keys").ToJSON()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(encoded), &raw))
	for _, key := range []string{"description", "agent_type", "pre_tools", "post_tools", "eval_criteria", "status", "history"} {
		assert.Contains(t, raw, key)
	}
}

func TestFromJSON_DefaultsStatus(t *testing.T) {
	decoded, err := FromJSON(`{"description":"bare"}`)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, decoded.Status)
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON("{not json")
	assert.Error(t, err)
}

// -------------------- Assignment Tests --------------------

func TestAssign_DefaultsAndKeywords(t *testing.T) {
	tasks := []*Task{
		New("refactor the code module"),
		New("write a poem"),
	}
	tasks[1].AgentType = "poet"

	Assign(tasks, []string{"exec", "echo"})

	assert.Equal(t, DefaultAgentType, tasks[0].AgentType)
	assert.Equal(t, []string{"exec"}, tasks[0].PreTools)
	assert.Equal(t, []string{"echo"}, tasks[0].PostTools)

	// Existing agent types are kept; no code keyword, no exec pre-tool.
	assert.Equal(t, "poet", tasks[1].AgentType)
	assert.Empty(t, tasks[1].PreTools)
	assert.Equal(t, []string{"echo"}, tasks[1].PostTools)
}

func TestAssign_OnlyRegisteredTools(t *testing.T) {
	tasks := []*Task{New("ship the code")}
	Assign(tasks, nil)

	assert.Empty(t, tasks[0].PreTools)
	assert.Empty(t, tasks[0].PostTools)
}
