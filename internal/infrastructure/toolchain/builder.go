// Package toolchain drives the external build collaborators: git for
// the working copy, cargo for the release artifact. Thin I/O glue; the
// lifecycle core only sees CollaboratorError on failure.
package toolchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/infrastructure/runner"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// Builder implements ports.WorkspaceBuilder.
type Builder struct {
	run    *runner.Local
	logger ports.Logger
}

// NewBuilder builds a workspace builder.
func NewBuilder(run *runner.Local, logger ports.Logger) *Builder {
	return &Builder{run: run, logger: logger}
}

// EnsureWorkingCopy clones repoURL into dataDir, or refreshes an
// existing checkout with fetch. An empty branch tracks the default.
func (b *Builder) EnsureWorkingCopy(ctx context.Context, dataDir, repoURL, branch string) error {
	if _, err := os.Stat(filepath.Join(dataDir, ".git")); err == nil {
		b.logger.Debug("refreshing working copy", map[string]interface{}{"dir": dataDir})
		if res, err := b.run.Run(ctx, dataDir, "git", "fetch", "--all", "--tags"); err != nil {
			return &domain.CollaboratorError{Name: "git fetch", Stderr: res.Stderr, Err: err}
		}
		if branch != "" {
			if res, err := b.run.Run(ctx, dataDir, "git", "checkout", branch); err != nil {
				return &domain.CollaboratorError{Name: "git checkout", Stderr: res.Stderr, Err: err}
			}
		}
		return nil
	}

	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, repoURL, dataDir)
	b.logger.Debug("cloning working copy", map[string]interface{}{"url": repoURL, "dir": dataDir})
	if res, err := b.run.Run(ctx, "", "git", args...); err != nil {
		return &domain.CollaboratorError{Name: "git clone", Stderr: res.Stderr, Err: err}
	}
	return nil
}

// Build compiles the release artifact and returns its absolute path.
func (b *Builder) Build(ctx context.Context, dataDir string) (string, error) {
	b.logger.Info("building artifact", map[string]interface{}{"dir": dataDir})
	if res, err := b.run.Run(ctx, dataDir, "cargo", "build", "--release", "--bin", domain.BinaryName); err != nil {
		return "", &domain.CollaboratorError{Name: "cargo build", Stderr: res.Stderr, Err: err}
	}
	artifact := filepath.Join(dataDir, filepath.FromSlash(domain.ArtifactRelPath))
	if _, err := os.Stat(artifact); err != nil {
		return "", &domain.CollaboratorError{Name: "cargo build", Err: fmt.Errorf("artifact missing at %s", artifact)}
	}
	return artifact, nil
}

var _ ports.WorkspaceBuilder = (*Builder)(nil)
