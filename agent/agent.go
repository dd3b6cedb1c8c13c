package agent

import (
	"context"
	"strings"

	"github.com/gbeyruth/evoflow/logging"
	"github.com/gbeyruth/evoflow/model"
)

// JoinSeparator is placed between buffered contributions when a join barrier
// releases, and between a node's output and a spliced user response.
const JoinSeparator = " | "

// Result is the outcome of a node execution. A failed backend call, a
// rejected validation or an exhausted retry budget all surface as
// Success == false with an empty Output; errors never escape the node.
type Result struct {
	Output  string `json:"output"`
	Success bool   `json:"success"`
}

// Options configures a Node instance.
//
// Use functional options with New to override defaults.
type Options struct {
	// System is the system message sent on every backend call.
	System string
	// Prompt is the node's standing instruction, prepended to each input.
	Prompt string
	// Context is background text placed before the prompt.
	Context string
	// ModelName selects the backend model identifier. Empty uses the
	// backend adapter's default.
	ModelName string
	// RetryLimit bounds failed execution attempts. Defaults to 3.
	RetryLimit int
	// ExpectedInputs is the number of join contributions required before the
	// node executes. Defaults to 1 (no join barrier).
	ExpectedInputs int
	// NeedsUserInput flags the node for the scheduler's interactive splice.
	NeedsUserInput bool
	// Validator judges raw backend output. Defaults to AcceptAll.
	Validator Validator
	// Transform post-processes raw backend output. Defaults to Identity.
	Transform Transform
	// Generation carries the sampling parameters for backend calls.
	Generation model.GenerationOptions
	// Logger receives execution diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Node is the atomic executable unit of a workflow: it aggregates join
// inputs, invokes the model backend and applies its validation / transform
// pair, all inside a bounded retry envelope.
//
// Lifecycle: a node is built once at graph-construction time and mutated
// during traversal (retry counter, input buffer). It is not safe for
// concurrent use; the scheduler drives it from a single goroutine.
type Node struct {
	name           string
	system         string
	prompt         string
	context        string
	modelName      string
	retryLimit     int
	retryCount     int
	expectedInputs int
	received       []string
	needsUserInput bool
	validator      Validator
	transform      Transform
	generation     model.GenerationOptions
	backend        model.Model
	logger         logging.Logger
}

// New constructs a Node bound to a model backend.
func New(name string, backend model.Model, optFns ...func(o *Options)) *Node {
	opts := Options{
		RetryLimit:     3,
		ExpectedInputs: 1,
		Validator:      AcceptAll{},
		Transform:      Identity{},
		Generation:     model.DefaultGenerationOptions(),
		Logger:         logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Node{
		name:           name,
		system:         opts.System,
		prompt:         opts.Prompt,
		context:        opts.Context,
		modelName:      opts.ModelName,
		retryLimit:     opts.RetryLimit,
		expectedInputs: opts.ExpectedInputs,
		needsUserInput: opts.NeedsUserInput,
		validator:      opts.Validator,
		transform:      opts.Transform,
		generation:     opts.Generation,
		backend:        backend,
		logger:         opts.Logger,
	}
}

// Name returns the node's unique name within a graph.
func (n *Node) Name() string { return n.name }

// Clone returns a new node with the same configuration under a different
// name, with a fresh retry counter and an empty join buffer. Mutation
// strategies use it to derive child variants without sharing traversal state.
func (n *Node) Clone(name string) *Node {
	clone := *n
	clone.name = name
	clone.retryCount = 0
	clone.received = nil
	return &clone
}

// Prompt returns the node's standing instruction.
func (n *Node) Prompt() string { return n.prompt }

// SetPrompt replaces the node's standing instruction.
func (n *Node) SetPrompt(p string) { n.prompt = p }

// RetryLimit returns the configured retry budget.
func (n *Node) RetryLimit() int { return n.retryLimit }

// RetryCount returns failed attempts accumulated since the last success.
func (n *Node) RetryCount() int { return n.retryCount }

// ExpectedInputs returns the join contribution count required before execution.
func (n *Node) ExpectedInputs() int { return n.expectedInputs }

// NeedsUserInput reports whether the scheduler should splice a user response
// into this node's forwarded output.
func (n *Node) NeedsUserInput() bool { return n.needsUserInput }

// PendingInputs returns the number of buffered join contributions.
func (n *Node) PendingInputs() int { return len(n.received) }

// ReceiveInput appends one contribution to the join buffer. When the buffer
// reaches the expected count the contributions are concatenated in arrival
// order, the buffer is cleared, and the combined input is returned with
// ok == true. Until then ok is false and the node must not execute.
func (n *Node) ReceiveInput(input string) (string, bool) {
	n.received = append(n.received, input)
	if len(n.received) < n.expectedInputs {
		return "", false
	}
	combined := strings.Join(n.received, JoinSeparator)
	n.received = nil
	return combined, true
}

// Execute performs one backend round trip: compose the message list, call the
// model, judge the raw output with the validator and post-process it with the
// transform. Backend failures are converted into a failed Result, never
// returned as an error.
func (n *Node) Execute(ctx context.Context, input string) Result {
	var sb strings.Builder
	if n.context != "" {
		sb.WriteString(n.context)
		sb.WriteString("\n\n")
	}
	if n.prompt != "" {
		sb.WriteString(n.prompt)
		sb.WriteString("\n\n")
	}
	sb.WriteString(input)

	var messages []model.Message
	if n.system != "" {
		messages = append(messages, model.Message{Role: "system", Content: n.system})
	}
	messages = append(messages, model.Message{Role: "user", Content: sb.String()})

	req := model.Request{
		Model:    n.modelName,
		Messages: messages,
		Options:  n.generation,
	}

	resp, err := n.backend.Generate(ctx, req)
	if err != nil {
		n.logger.Error("backend call failed", "node", n.name, "error", err.Error())
		return Result{Success: false}
	}

	output := strings.TrimSpace(resp.Content)
	valid := n.validator.Validate(output)
	output = n.transform.Apply(output)

	return Result{Output: output, Success: valid}
}

// RunWithRetries calls Execute until it succeeds or the retry budget is
// exhausted. A success resets the retry counter to zero and returns
// immediately; exhaustion returns a failed Result with an empty output.
// Retries are synchronous and unconditional, with no backoff and no
// distinction between failure kinds.
func (n *Node) RunWithRetries(ctx context.Context, input string) Result {
	for n.retryCount < n.retryLimit {
		result := n.Execute(ctx, input)
		if result.Success {
			n.ResetRetry()
			return result
		}
		n.retryCount++
		n.logger.Warn("node attempt failed", "node", n.name, "attempt", n.retryCount, "retry_limit", n.retryLimit)
	}
	return Result{Success: false}
}

// ResetRetry clears the retry counter after a successful execution.
func (n *Node) ResetRetry() { n.retryCount = 0 }
