// Package runner is the single place that shells out. Collaborator
// adapters (toolchain, product, privilege) compose it rather than
// invoking os/exec themselves.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"
)

// Result captures one subprocess invocation.
type Result struct {
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
}

// Local runs commands on the host. Invocations block until the process
// exits; cancellation comes from the caller's context.
type Local struct {
	// Inherit connects the child to the parent's stdio instead of
	// capturing. Used for interactive elevation prompts (sudo).
	Inherit bool
}

// New builds a capturing runner.
func New() *Local {
	return &Local{}
}

// NewInteractive builds a runner whose children share the parent's
// terminal. Needed for sudo password prompts.
func NewInteractive() *Local {
	return &Local{Inherit: true}
}

// Run executes name with args in dir (empty dir means inherit cwd).
func (l *Local) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	if l.Inherit {
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
	} else {
		c.Stdout = &stdout
		c.Stderr = &stderr
	}

	start := time.Now()
	err := c.Run()
	result := Result{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: time.Since(start).Milliseconds(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	}
	return result, err
}

// LookPath reports whether name is on PATH.
func (l *Local) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
