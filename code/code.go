// Package code contains the code execution collaborators used by tool
// pipelines: an Executor interface plus a local out-of-process implementation
// suitable for development and tests.
package code

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Executor defines the interface for executing code snippets.
type Executor interface {
	// Execute runs the given code snippet and returns the output or an error.
	Execute(code string) (string, error)
}

// LocalExecutorOptions configures a LocalExecutor.
type LocalExecutorOptions struct {
	// Interpreter is the binary invoked to run snippets. Defaults to "python3".
	Interpreter string
	// Timeout bounds a single snippet run. Defaults to 30s.
	Timeout time.Duration
}

// LocalExecutor writes a snippet to a temporary file and runs it with a local
// interpreter. Output is combined stdout+stderr. This executor offers no
// sandboxing; only use it with trusted or reviewed snippets.
type LocalExecutor struct {
	interpreter string
	timeout     time.Duration
}

// NewLocalExecutor constructs a LocalExecutor.
func NewLocalExecutor(optFns ...func(o *LocalExecutorOptions)) *LocalExecutor {
	opts := LocalExecutorOptions{
		Interpreter: "python3",
		Timeout:     30 * time.Second,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &LocalExecutor{interpreter: opts.Interpreter, timeout: opts.Timeout}
}

// Execute implements Executor.
func (e *LocalExecutor) Execute(snippet string) (string, error) {
	f, err := os.CreateTemp("", "evoflow-snippet-*")
	if err != nil {
		return "", fmt.Errorf("create snippet file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(snippet); err != nil {
		f.Close()
		return "", fmt.Errorf("write snippet file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close snippet file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, e.interpreter, f.Name())
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		return buf.String(), fmt.Errorf("snippet execution failed: %w", err)
	}
	return buf.String(), nil
}
