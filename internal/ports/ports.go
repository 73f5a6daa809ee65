// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the lifecycle core and
// external adapters (infrastructure). The orchestrator depends only on
// these abstractions; concrete implementations live under
// internal/infrastructure.
package ports

import (
	"context"

	"github.com/zerobrew/zbstrap/internal/domain"
)

// ConfigProvider loads the bootstrap configuration (location overrides,
// repo settings) from persistent storage.
type ConfigProvider interface {
	Load(context.Context) (domain.BootstrapConfig, error)
}

// LocationResolver derives the consistent location set for one run from
// platform signals and explicit overrides. Total: never fails, falls
// back to defaults.
type LocationResolver interface {
	Resolve(platform domain.PlatformContext, overrides domain.Overrides) domain.InstallLocations
}

// PrivilegeEscalator classifies install roots and runs the few
// operations that need elevation, each scoped to a single call.
type PrivilegeEscalator interface {
	NeedsElevation(installRoot string) bool
	ProvisionDirs(ctx context.Context, dirs []string, owner string) error
	RemoveTree(ctx context.Context, root string) error
}

// ProfileEditor performs the idempotent read-modify-write of the user's
// shell startup file. The file is acquired, mutated, and released
// exactly once per invocation, on every exit path.
type ProfileEditor interface {
	Install(profilePath string, locations domain.InstallLocations) (domain.ProfileEdit, error)
	Uninstall(profilePath string) (domain.ProfileEdit, error)
	TargetFile(platform domain.PlatformContext) string
	HasMarker(profilePath string) bool
}

// WorkspaceBuilder acquires the working copy and produces the build
// artifact. External collaborator: failure is fatal to the install run.
type WorkspaceBuilder interface {
	EnsureWorkingCopy(ctx context.Context, dataDir, repoURL, branch string) error
	Build(ctx context.Context, dataDir string) (artifactPath string, err error)
}

// ProductRuntime invokes the installed product's own entrypoints by
// path. Both entrypoints are idempotent; init failure is fatal, reset
// failure is reported but does not block teardown.
type ProductRuntime interface {
	Init(ctx context.Context, binaryPath string, locations domain.InstallLocations) error
	Reset(ctx context.Context, binaryPath string) error
}

// ReceiptStore persists one record per lifecycle run. Best-effort: a
// store failure never aborts a run.
type ReceiptStore interface {
	Record(result domain.LifecycleResult) error
	Runs(limit int) ([]domain.Receipt, error)
	Close() error
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
