package tool

import (
	"fmt"
	"sync"

	"github.com/gbeyruth/evoflow/logging"
)

// Registry maps tool names to transforms and executes them singly or as an
// ordered pipeline. All methods are safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]Tool
	logger logging.Logger
}

// RegistryOptions configures a Registry.
type RegistryOptions struct {
	// Logger receives tool execution diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// NewRegistry creates an empty tool registry.
func NewRegistry(optFns ...func(o *RegistryOptions)) *Registry {
	opts := RegistryOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Registry{tools: make(map[string]Tool), logger: opts.Logger}
}

// Register makes a tool addressable by its name, replacing any previous
// registration under the same name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// RegisterFunc registers a plain function under the given name.
func (r *Registry) RegisterFunc(name, description string, fn func(input string) (string, error)) {
	r.Register(NewFuncTool(name, description, fn))
}

// Has reports whether a tool name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// Names returns the registered tool names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Run executes the named tool against the input. An unknown name yields a
// *ToolError wrapping ErrNotRegistered; this is a hard failure, not a skip.
func (r *Registry) Run(name, input string) (string, error) {
	r.mu.RLock()
	t, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		r.logger.Error("tool lookup failed", "tool", name)
		return "", &ToolError{
			Tool:    name,
			Message: "not registered",
			Code:    CodeNotRegistered,
			wrapped: ErrNotRegistered,
		}
	}

	out, err := t.Run(input)
	if err != nil {
		r.logger.Error("tool execution failed", "tool", name, "error", err.Error())
		if toolErr, ok := err.(*ToolError); ok {
			return "", toolErr
		}
		return "", &ToolError{
			Tool:    name,
			Message: err.Error(),
			Code:    CodeExecutionError,
			wrapped: err,
		}
	}

	r.logger.Debug("tool executed", "tool", name)
	return out, nil
}

// RunSequence threads the input through each named tool in list order. The
// first failure (unknown name or tool error) propagates immediately; tools
// earlier in the list have already taken effect by then.
func (r *Registry) RunSequence(names []string, input string) (string, error) {
	value := input
	for _, name := range names {
		out, err := r.Run(name, value)
		if err != nil {
			return "", fmt.Errorf("run sequence aborted at %q: %w", name, err)
		}
		value = out
	}
	return value, nil
}
