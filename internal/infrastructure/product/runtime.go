// Package product invokes the installed zb binary's own lifecycle
// entrypoints. The bootstrapper never reaches into zerobrew's internal
// state itself; init and reset are the product's responsibility.
package product

import (
	"context"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/infrastructure/runner"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// Runtime implements ports.ProductRuntime.
type Runtime struct {
	run    *runner.Local
	logger ports.Logger
}

// NewRuntime builds a product runtime.
func NewRuntime(run *runner.Local, logger ports.Logger) *Runtime {
	return &Runtime{run: run, logger: logger}
}

// Init finalizes internal product state after placement. Idempotent on
// the product side; failure aborts the install run.
func (r *Runtime) Init(ctx context.Context, binaryPath string, locations domain.InstallLocations) error {
	r.logger.Info("running product init", map[string]interface{}{"binary": binaryPath})
	res, err := r.run.Run(ctx, "", binaryPath, "init",
		"--root", locations.InstallRoot,
		"--prefix", locations.Prefix,
	)
	if err != nil {
		return &domain.CollaboratorError{Name: "zb init", Stderr: res.Stderr, Err: err}
	}
	return nil
}

// Reset tears down internal product state before filesystem removal.
// Callers treat failure as a warning; teardown continues best-effort.
func (r *Runtime) Reset(ctx context.Context, binaryPath string) error {
	r.logger.Info("running product reset", map[string]interface{}{"binary": binaryPath})
	res, err := r.run.Run(ctx, "", binaryPath, "reset", "--yes")
	if err != nil {
		return &domain.CollaboratorError{Name: "zb reset", Stderr: res.Stderr, Err: err}
	}
	return nil
}

var _ ports.ProductRuntime = (*Runtime)(nil)
