// Package tool implements the transform pipeline subsystem that lets
// workflows apply named, ordered single-argument transforms (text rewrites,
// out-of-process code execution, side-effecting capabilities) to a value with
// consistent error handling.
package tool

import (
	"errors"
	"fmt"
)

// Error codes attached to ToolError for uniform downstream handling.
const (
	// CodeNotRegistered marks a lookup of a name absent from the registry.
	CodeNotRegistered = "NOT_REGISTERED"
	// CodeExecutionError marks a failure inside a registered tool.
	CodeExecutionError = "EXECUTION_ERROR"
)

// ErrNotRegistered is the sentinel wrapped by ToolError when a tool name is
// unknown. Unlike an unregistered workflow node, this condition fails fast
// and must be handled by the caller.
var ErrNotRegistered = errors.New("tool not registered")

// Tool is a named single-argument transform. Implementations may be
// side-effecting; they should be safe for repeated invocation.
type Tool interface {
	// Name returns the unique identifier used to address this tool.
	Name() string

	// Description returns a human-readable summary of the transform.
	Description() string

	// Run applies the transform to the input value.
	Run(input string) (string, error)
}

// ToolError wraps failures originating from the registry or a tool run with
// the tool name and a stable code.
type ToolError struct {
	Tool    string `json:"tool"`
	Message string `json:"message"`
	Code    string `json:"code"`
	wrapped error
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *ToolError) Unwrap() error { return e.wrapped }

// NewToolError creates a ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{Tool: tool, Message: message, Code: code}
}

// funcTool adapts a plain Go function to the Tool interface.
type funcTool struct {
	name        string
	description string
	fn          func(input string) (string, error)
}

// NewFuncTool constructs a Tool from an explicit name, description and function.
//
// Example:
//
//	upper := tool.NewFuncTool("upper", "Uppercase the input", func(s string) (string, error) {
//		return strings.ToUpper(s), nil
//	})
func NewFuncTool(name, description string, fn func(input string) (string, error)) Tool {
	return &funcTool{name: name, description: description, fn: fn}
}

// Name returns the unique tool name used for registry lookups.
func (t *funcTool) Name() string { return t.name }

// Description returns the short natural language description of the tool.
func (t *funcTool) Description() string { return t.description }

// Run invokes the wrapped function.
func (t *funcTool) Run(input string) (string, error) { return t.fn(input) }
