// Package privilege decides when an install root needs elevated
// privileges and performs the two privileged operations: provisioning
// directories with ownership handoff, and full-tree removal. Elevation
// is scoped to each call; nothing in this package holds an elevated
// mode for the run.
package privilege

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/infrastructure/runner"
	"github.com/zerobrew/zbstrap/internal/pkg/filesystem"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// Escalator implements ports.PrivilegeEscalator via sudo subprocesses.
type Escalator struct {
	run    *runner.Local
	logger ports.Logger
}

// NewEscalator builds an escalator. The runner must be interactive so
// sudo can prompt on the controlling terminal.
func NewEscalator(run *runner.Local, logger ports.Logger) *Escalator {
	return &Escalator{run: run, logger: logger}
}

// NeedsElevation reports whether installRoot falls under the fixed
// system-owned prefix, by path components. Paths that merely contain
// the prefix as a substring elsewhere do not qualify.
func (e *Escalator) NeedsElevation(installRoot string) bool {
	return UnderSystemPrefix(installRoot)
}

// UnderSystemPrefix is the pure classification predicate.
func UnderSystemPrefix(path string) bool {
	clean := filepath.Clean(path)
	if clean == domain.SystemRootPrefix {
		return true
	}
	return strings.HasPrefix(clean, domain.SystemRootPrefix+string(os.PathSeparator))
}

// ProvisionDirs creates dirs and hands ownership of the top-level ones
// to owner. Without elevation requirements the caller should use plain
// os.MkdirAll instead; this path exists for system-owned roots only.
func (e *Escalator) ProvisionDirs(ctx context.Context, dirs []string, owner string) error {
	if owner == "" {
		owner = currentUser()
	}
	for _, dir := range dirs {
		if _, err := e.run.Run(ctx, "", "sudo", "mkdir", "-p", dir); err != nil {
			return fmt.Errorf("%w: mkdir %s: %v", domain.ErrPrivilegeRequired, dir, err)
		}
	}
	// Only the roots need a recursive chown; subdirectories are covered.
	for _, dir := range topLevel(dirs) {
		if _, err := e.run.Run(ctx, "", "sudo", "chown", "-R", owner, dir); err != nil {
			return fmt.Errorf("%w: chown %s: %v", domain.ErrPrivilegeRequired, dir, err)
		}
	}
	return nil
}

// RemoveTree removes root recursively, electing sudo when the path is
// system-owned or not writable by the current user.
func (e *Escalator) RemoveTree(ctx context.Context, root string) error {
	if !UnderSystemPrefix(root) && filesystem.IsWritable(filepath.Dir(root)) {
		return os.RemoveAll(root)
	}
	if _, err := e.run.Run(ctx, "", "sudo", "rm", "-rf", root); err != nil {
		return fmt.Errorf("%w: rm -rf %s: %v", domain.ErrPrivilegeRequired, root, err)
	}
	return nil
}

// topLevel filters dirs down to those not contained in another entry.
func topLevel(dirs []string) []string {
	var roots []string
	for _, d := range dirs {
		contained := false
		for _, other := range dirs {
			if other != d && strings.HasPrefix(filepath.Clean(d), filepath.Clean(other)+string(os.PathSeparator)) {
				contained = true
				break
			}
		}
		if !contained {
			roots = append(roots, d)
		}
	}
	return roots
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

var _ ports.PrivilegeEscalator = (*Escalator)(nil)
