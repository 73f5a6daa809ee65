package domain

import (
	"errors"
	"fmt"
)

// Sentinel error kinds surfaced by lifecycle runs. Callers classify with
// errors.Is; every step either succeeds or aborts the whole run.
var (
	// ErrNotInstalled means uninstall was invoked with no prior install.
	ErrNotInstalled = errors.New("zerobrew is not installed")
	// ErrPrivilegeRequired means elevation was needed but unavailable or denied.
	ErrPrivilegeRequired = errors.New("privilege escalation required")
	// ErrProfileNotWritable means the shell startup file could not be modified.
	ErrProfileNotWritable = errors.New("shell profile not writable")
	// ErrPathConflict means a resolved directory exists but is not owned or
	// writable by the current user.
	ErrPathConflict = errors.New("resolved path exists but is not writable")
)

// CollaboratorError wraps a failed external subprocess (build, fetch,
// init, or reset).
type CollaboratorError struct {
	Name   string
	Stderr string
	Err    error
}

func (e *CollaboratorError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %v: %s", e.Name, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Name, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
