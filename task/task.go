// Package task defines the serializable unit of work used by the workflow
// task runner: a description, an agent-type tag, pre/post tool pipelines,
// evaluation criteria and an append-only output history.
package task

import "encoding/json"

// Status enumerates the task lifecycle states.
type Status string

const (
	// StatusPending marks a task awaiting execution.
	StatusPending Status = "pending"
	// StatusRunning marks a task currently assigned to an agent.
	StatusRunning Status = "running"
	// StatusCompleted marks a task whose agent run succeeded.
	StatusCompleted Status = "completed"
	// StatusFailed marks a task whose agent run exhausted its retries.
	StatusFailed Status = "failed"
)

// Task is a unit of work routed to an agent by type tag. Description,
// AgentType and EvalCriteria are fixed after assignment; History, Status and
// the tool lists mutate during processing.
type Task struct {
	Description  string   `json:"description"`
	AgentType    string   `json:"agent_type"`
	PreTools     []string `json:"pre_tools"`
	PostTools    []string `json:"post_tools"`
	EvalCriteria string   `json:"eval_criteria"`
	Status       Status   `json:"status"`
	History      []string `json:"history"`
}

// New creates a pending task with empty tool lists and history.
func New(description string) *Task {
	return &Task{
		Description: description,
		PreTools:    []string{},
		PostTools:   []string{},
		Status:      StatusPending,
		History:     []string{},
	}
}

// AppendHistory records one output produced for this task.
func (t *Task) AppendHistory(output string) {
	t.History = append(t.History, output)
}

// ToJSON encodes the task using the stable wire keys (description,
// agent_type, pre_tools, post_tools, eval_criteria, status, history).
func (t *Task) ToJSON() (string, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON decodes a task previously encoded with ToJSON.
func FromJSON(data string) (*Task, error) {
	var t Task
	if err := json.Unmarshal([]byte(data), &t); err != nil {
		return nil, err
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	return &t, nil
}
