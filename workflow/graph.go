package workflow

import (
	"sync"

	"github.com/gbeyruth/evoflow/agent"
	"github.com/gbeyruth/evoflow/logging"
)

// GraphOptions configures a Graph instance.
type GraphOptions struct {
	// Logger receives traversal diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Graph holds the registered agent nodes and their ordered successor lists.
// Successor names are not resolved at registration time: a name that never
// resolves to a registered node is skipped (and logged) during traversal,
// not rejected up front. No cycle detection is performed; callers are
// responsible for building a DAG.
//
// Registration is safe for concurrent use; traversal (Run) drives the
// registered nodes from a single goroutine.
type Graph struct {
	mu         sync.RWMutex
	agents     map[string]*agent.Node
	successors map[string][]string
	logger     logging.Logger
}

// NewGraph creates an empty workflow graph.
func NewGraph(optFns ...func(o *GraphOptions)) *Graph {
	opts := GraphOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Graph{
		agents:     make(map[string]*agent.Node),
		successors: make(map[string][]string),
		logger:     opts.Logger,
	}
}

// AddAgent registers a node together with its fan-out targets, in forwarding
// order. An empty successor list marks a terminal node. Re-registering a name
// replaces the previous node and edge list.
func (g *Graph) AddAgent(n *agent.Node, next ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.agents[n.Name()] = n
	g.successors[n.Name()] = append([]string(nil), next...)
}

// Agent returns the registered node for a name.
func (g *Graph) Agent(name string) (*agent.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.agents[name]
	return n, ok
}

// Successors returns a copy of the ordered successor list for a node name.
func (g *Graph) Successors(name string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.successors[name]...)
}

// Len returns the number of registered nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.agents)
}
