package workflow

import (
	"context"
	"strings"
	"testing"

	"github.com/gbeyruth/evoflow/agent"
	"github.com/gbeyruth/evoflow/model"
	"github.com/gbeyruth/evoflow/task"
	"github.com/gbeyruth/evoflow/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *tool.Registry {
	reg := tool.NewRegistry()
	reg.RegisterFunc("upper", "Uppercase the input", func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
	reg.RegisterFunc("wrap", "Bracket the input", func(s string) (string, error) {
		return "[" + s + "]", nil
	})
	return reg
}

// -------------------- TaskRunner Tests --------------------

func TestTaskRunner_PipelinesAndHistory(t *testing.T) {
	backend := model.NewMockModel("m")
	backend.AddResponse("WRITE A HAIKU", "five seven five")

	runner := NewTaskRunner(testRegistry())
	runner.RegisterAgentType("llm", agent.New("worker", backend))

	tk := task.New("write a haiku")
	tk.AgentType = "llm"
	tk.PreTools = []string{"upper"}
	tk.PostTools = []string{"wrap"}

	err := runner.Run(context.Background(), []*task.Task{tk})
	require.NoError(t, err)

	assert.Equal(t, task.StatusCompleted, tk.Status)
	require.Len(t, tk.History, 1)
	assert.Equal(t, "[five seven five]", tk.History[0])
}

func TestTaskRunner_FailedAgentStillRecordsHistory(t *testing.T) {
	backend := model.NewMockModel("m")
	runner := NewTaskRunner(testRegistry())
	runner.RegisterAgentType("llm", agent.New("worker", backend, func(o *agent.Options) {
		o.RetryLimit = 1
		o.Validator = agent.ValidatorFunc(func(string) bool { return false })
	}))

	tk := task.New("doomed")
	tk.AgentType = "llm"
	tk.PostTools = []string{"wrap"}

	err := runner.Run(context.Background(), []*task.Task{tk})
	require.NoError(t, err)

	// The post pipeline ran over an empty string.
	assert.Equal(t, task.StatusFailed, tk.Status)
	require.Len(t, tk.History, 1)
	assert.Equal(t, "[]", tk.History[0])
}

func TestTaskRunner_UnregisteredToolFailsFast(t *testing.T) {
	backend := model.NewMockModel("m")
	runner := NewTaskRunner(testRegistry())
	runner.RegisterAgentType("llm", agent.New("worker", backend))

	tk := task.New("needs a missing tool")
	tk.AgentType = "llm"
	tk.PreTools = []string{"missing"}

	err := runner.Run(context.Background(), []*task.Task{tk})
	require.Error(t, err)
	assert.ErrorIs(t, err, tool.ErrNotRegistered)
	assert.Equal(t, task.StatusFailed, tk.Status)
	assert.Empty(t, tk.History)
}

func TestTaskRunner_UnknownAgentTypeIsSkipped(t *testing.T) {
	runner := NewTaskRunner(testRegistry())

	tk := task.New("orphan")
	tk.AgentType = "nobody"

	err := runner.Run(context.Background(), []*task.Task{tk})
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, tk.Status)
	assert.Empty(t, tk.History)
}
