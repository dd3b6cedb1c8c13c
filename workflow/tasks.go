package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/gbeyruth/evoflow/agent"
	"github.com/gbeyruth/evoflow/logging"
	"github.com/gbeyruth/evoflow/task"
	"github.com/gbeyruth/evoflow/tool"
	"github.com/google/uuid"
)

// TaskRunnerOptions configures a TaskRunner.
type TaskRunnerOptions struct {
	// Logger receives task processing diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// TaskRunner is the sequential alternative to graph traversal: one task, one
// agent, no join semantics. Agents are resolved by their task type tag; the
// task description flows through the pre-tool pipeline, the resolved agent's
// retry envelope, and the post-tool pipeline before landing in the task
// history.
type TaskRunner struct {
	mu     sync.RWMutex
	agents map[string]*agent.Node
	tools  *tool.Registry
	logger logging.Logger
}

// NewTaskRunner creates a TaskRunner bound to a tool registry.
func NewTaskRunner(tools *tool.Registry, optFns ...func(o *TaskRunnerOptions)) *TaskRunner {
	opts := TaskRunnerOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &TaskRunner{
		agents: make(map[string]*agent.Node),
		tools:  tools,
		logger: opts.Logger,
	}
}

// RegisterAgentType makes an agent resolvable by task type tag.
func (r *TaskRunner) RegisterAgentType(agentType string, n *agent.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[agentType] = n
}

// agentFor resolves the agent registered for a task's type tag.
func (r *TaskRunner) agentFor(agentType string) (*agent.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.agents[agentType]
	return n, ok
}

// Run processes each task in order. A task with an unresolvable agent type is
// logged and skipped, mirroring the scheduler's unregistered-node handling.
// An unregistered tool anywhere in a task's pipelines is a hard failure: Run
// stops and returns the error.
//
// A failed agent run is not an error: the post-tool pipeline receives an
// empty string, the (post-processed) result still lands in the history, and
// the task is marked failed.
func (r *TaskRunner) Run(ctx context.Context, tasks []*task.Task) error {
	runID := uuid.NewString()
	r.logger.Info("task run started", "run_id", runID, "tasks", len(tasks))

	for _, t := range tasks {
		node, ok := r.agentFor(t.AgentType)
		if !ok {
			r.logger.Warn("no agent for task type, skipping",
				"run_id", runID, "agent_type", t.AgentType, "task", t.Description)
			continue
		}

		t.Status = task.StatusRunning

		input, err := r.tools.RunSequence(t.PreTools, t.Description)
		if err != nil {
			t.Status = task.StatusFailed
			return fmt.Errorf("pre-tool pipeline for %q: %w", t.Description, err)
		}

		result := node.RunWithRetries(ctx, input)

		output := ""
		if result.Success {
			output = result.Output
		}

		processed, err := r.tools.RunSequence(t.PostTools, output)
		if err != nil {
			t.Status = task.StatusFailed
			return fmt.Errorf("post-tool pipeline for %q: %w", t.Description, err)
		}

		t.AppendHistory(processed)
		if result.Success {
			t.Status = task.StatusCompleted
		} else {
			t.Status = task.StatusFailed
		}

		r.logger.Info("task processed",
			"run_id", runID, "task", t.Description, "status", string(t.Status))
	}

	return nil
}
