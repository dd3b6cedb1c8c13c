// Package evoflow provides a high-level façade over the two execution
// engines (workflow graph traversal and evolutionary search) and their shared
// collaborators (tool registry, model backends, branch log & logging).
// Most applications interact with this package by:
//  1. Creating an EvoFlow via New() (optionally overriding defaults)
//  2. Registering agent nodes into the workflow graph or by task type
//  3. Running a graph traversal (RunWorkflow), a task list (RunTasks) or an
//     evolutionary search (Evolve)
//
// The façade delegates scheduling to workflow.Graph / workflow.TaskRunner and
// tree growth to evolve.Executor while keeping setup ergonomics concise. All
// defaults are safe for local development and testing; production use
// typically supplies a real model backend and a structured logger.
package evoflow

import (
	"context"
	"fmt"

	"github.com/gbeyruth/evoflow/agent"
	"github.com/gbeyruth/evoflow/config"
	"github.com/gbeyruth/evoflow/evolve"
	"github.com/gbeyruth/evoflow/logging"
	"github.com/gbeyruth/evoflow/memory"
	"github.com/gbeyruth/evoflow/model"
	"github.com/gbeyruth/evoflow/model/anthropic"
	"github.com/gbeyruth/evoflow/model/openai"
	"github.com/gbeyruth/evoflow/task"
	"github.com/gbeyruth/evoflow/tool"
	"github.com/gbeyruth/evoflow/workflow"
)

// Options configures an EvoFlow instance.
type Options struct {
	// Logger receives diagnostics from all components. Defaults to NoOpLogger.
	Logger logging.Logger
	// Tools is the shared tool registry. Defaults to an empty registry.
	Tools *tool.Registry
	// BranchingFactor is the evolution fan-out per generation. Defaults to 2.
	BranchingFactor int
	// MaxDepth is the number of evolution generations. Defaults to 2.
	MaxDepth int
	// WorkDir is the root directory for persisted evolution trees.
	// Defaults to "evolution_runs".
	WorkDir string
	// MemoryLog, when set, records every evaluated evolution branch.
	MemoryLog *memory.Log
}

// EvoFlow bundles a workflow graph, a task runner and an evolution executor
// behind one wiring point.
type EvoFlow struct {
	graph    *workflow.Graph
	tasks    *workflow.TaskRunner
	executor *evolve.Executor
	tools    *tool.Registry
	logger   logging.Logger
}

// New creates an EvoFlow instance with sensible defaults.
func New(optFns ...func(o *Options)) *EvoFlow {
	opts := Options{
		Logger:          logging.NoOpLogger{},
		BranchingFactor: 2,
		MaxDepth:        2,
		WorkDir:         "evolution_runs",
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Tools == nil {
		opts.Tools = tool.NewRegistry(func(o *tool.RegistryOptions) { o.Logger = opts.Logger })
	}

	graph := workflow.NewGraph(func(o *workflow.GraphOptions) { o.Logger = opts.Logger })
	tasks := workflow.NewTaskRunner(opts.Tools, func(o *workflow.TaskRunnerOptions) { o.Logger = opts.Logger })
	executor := evolve.NewExecutor(func(o *evolve.ExecutorOptions) {
		o.BranchingFactor = opts.BranchingFactor
		o.MaxDepth = opts.MaxDepth
		o.WorkDir = opts.WorkDir
		o.Log = opts.MemoryLog
		o.Logger = opts.Logger
	})

	return &EvoFlow{
		graph:    graph,
		tasks:    tasks,
		executor: executor,
		tools:    opts.Tools,
		logger:   opts.Logger,
	}
}

// Graph exposes the underlying workflow graph.
func (f *EvoFlow) Graph() *workflow.Graph { return f.graph }

// Tools exposes the shared tool registry.
func (f *EvoFlow) Tools() *tool.Registry { return f.tools }

// AddAgent registers a node and its fan-out targets into the workflow graph.
func (f *EvoFlow) AddAgent(n *agent.Node, next ...string) {
	f.graph.AddAgent(n, next...)
}

// RegisterAgentType makes an agent resolvable by task type tag.
func (f *EvoFlow) RegisterAgentType(agentType string, n *agent.Node) {
	f.tasks.RegisterAgentType(agentType, n)
}

// RunWorkflow drives graph traversal from the start node.
func (f *EvoFlow) RunWorkflow(ctx context.Context, start, input string, optFns ...func(o *workflow.RunOptions)) {
	f.graph.Run(ctx, start, input, optFns...)
}

// RunTasks processes a task list sequentially through the task runner.
func (f *EvoFlow) RunTasks(ctx context.Context, tasks []*task.Task) error {
	return f.tasks.Run(ctx, tasks)
}

// Evolve grows a version tree from seed for the given task and returns the
// final generation's winner.
func (f *EvoFlow) Evolve(ctx context.Context, t *task.Task, seed *evolve.Version, mutator evolve.Mutator, evaluator evolve.Evaluator, selector evolve.Selector) (*evolve.Version, error) {
	return f.executor.Run(ctx, t, seed, mutator, evaluator, selector)
}

// NewBackend constructs a model backend from configuration.
func NewBackend(cfg config.ModelConfig) (model.Model, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if cfg.Name != "" {
				o.Model = cfg.Name
			}
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.Name != "" {
				o.Model = cfg.Name
			}
		}), nil
	case "mock", "":
		return model.NewMockModel(cfg.Name), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
}
