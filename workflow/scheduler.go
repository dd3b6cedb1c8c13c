package workflow

import (
	"context"
	"time"

	"github.com/gbeyruth/evoflow/agent"
	"github.com/google/uuid"
)

// UserInputFunc supplies an interactive response to a node's output. The call
// blocks the scheduler; the returned text is spliced into the value forwarded
// to successors.
type UserInputFunc func(nodeOutput string) string

// RunOptions configures a single traversal.
type RunOptions struct {
	// UserInput, when set, is invoked after each successful execution of a
	// node flagged NeedsUserInput.
	UserInput UserInputFunc
}

// workItem is one queued (node, input) pair.
type workItem struct {
	node  string
	input string
}

// Run drives traversal from the start node with the initial input.
//
// The scheduler pops (node, input) pairs from a FIFO queue. An unregistered
// node name is logged and skipped. A popped input is first absorbed into the
// node's join buffer; if the barrier is not yet satisfied the item is
// consumed without execution and the node stays pending. Once satisfied, the
// node runs inside its retry envelope; on success the output is enqueued for
// every successor in declared order, which makes per-node execution order
// deterministic for a fixed graph. On failure no successors are enqueued and
// the branch ends silently.
//
// A node whose join barrier never fills blocks forever: nothing re-enqueues
// it. The partial absorption is visible in the log stream but is not
// classified as an error.
//
// Run returns when the queue drains or ctx is cancelled. There is no
// aggregate success/failure signal; callers observe failures through absent
// downstream effects and the emitted log events.
func (g *Graph) Run(ctx context.Context, start, input string, optFns ...func(o *RunOptions)) {
	var opts RunOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	runID := uuid.NewString()
	g.logger.Info("workflow started", "run_id", runID, "start", start)

	queue := []workItem{{node: start, input: input}}
	for len(queue) > 0 {
		if ctx.Err() != nil {
			g.logger.Warn("workflow cancelled", "run_id", runID, "queued", len(queue))
			return
		}

		item := queue[0]
		queue = queue[1:]

		node, ok := g.Agent(item.node)
		if !ok {
			g.logger.Warn("node not registered, skipping", "run_id", runID, "node", item.node)
			continue
		}

		combined, ready := node.ReceiveInput(item.input)
		if !ready {
			g.logger.Debug("node waiting for more inputs",
				"run_id", runID, "node", item.node,
				"received", node.PendingInputs(), "expected", node.ExpectedInputs())
			continue
		}

		began := time.Now()
		result := node.RunWithRetries(ctx, combined)
		if !result.Success {
			g.logger.Error("node failed after retries",
				"run_id", runID, "node", item.node,
				"attempts", node.RetryCount(), "duration", time.Since(began))
			continue
		}
		g.logger.Info("node executed",
			"run_id", runID, "node", item.node, "duration", time.Since(began))

		output := result.Output
		if node.NeedsUserInput() && opts.UserInput != nil {
			if response := opts.UserInput(output); response != "" {
				output = output + agent.JoinSeparator + response
			}
		}

		for _, succ := range g.Successors(item.node) {
			queue = append(queue, workItem{node: succ, input: output})
		}
	}

	g.logger.Info("workflow finished", "run_id", runID)
}
