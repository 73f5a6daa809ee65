// Package lifecycle sequences install and uninstall runs. Each run is a
// strictly sequential batch job: resolve once, execute steps in order,
// abort on the first mandatory failure, report a terminal result. No
// retries, no rollback of completed side effects; every step is
// individually idempotent so rerunning is always safe.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/pkg/filesystem"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// ProgressFunc receives step-level progress for user-facing output.
type ProgressFunc func(step domain.Step, detail string)

// Service orchestrates lifecycle runs over injected ports.
type Service struct {
	Resolver  ports.LocationResolver
	Escalator ports.PrivilegeEscalator
	Profile   ports.ProfileEditor
	Builder   ports.WorkspaceBuilder
	Product   ports.ProductRuntime
	Receipts  ports.ReceiptStore
	Logger    ports.Logger
	Progress  ProgressFunc
}

// InstallRequest parameterizes one install run.
type InstallRequest struct {
	Platform     domain.PlatformContext
	Overrides    domain.Overrides
	RepoURL      string
	Branch       string
	NoModifyPath bool
}

// UninstallRequest parameterizes one uninstall run.
type UninstallRequest struct {
	Platform  domain.PlatformContext
	Overrides domain.Overrides
	// Purge also removes the install root and all downloaded package
	// content. Non-default: see the uninstall sequence.
	Purge bool
}

// Install runs the install sequence: resolve -> fetch -> build -> place
// binary -> provision root -> edit profile -> product init.
func (s *Service) Install(ctx context.Context, req InstallRequest) (domain.LifecycleResult, error) {
	result := domain.LifecycleResult{
		Operation: domain.OpInstall,
		StartedAt: time.Now(),
	}

	// Start -> Resolving. Locations are resolved once so every step of
	// this run sees the same set.
	locations := s.Resolver.Resolve(req.Platform, req.Overrides)
	result.Locations = locations
	s.Logger.Debug("resolved locations", map[string]interface{}{
		"data": locations.DataDir, "bin": locations.BinDir,
		"root": locations.InstallRoot, "prefix": locations.Prefix,
	})

	// Resolving -> Executing.
	if err := s.Builder.EnsureWorkingCopy(ctx, locations.DataDir, req.RepoURL, req.Branch); err != nil {
		return s.abort(result, domain.StepFetchSource, err)
	}
	s.report(domain.StepFetchSource, locations.DataDir)

	artifact, err := s.Builder.Build(ctx, locations.DataDir)
	if err != nil {
		return s.abort(result, domain.StepBuild, err)
	}
	s.report(domain.StepBuild, artifact)

	if err := s.placeBinary(artifact, locations); err != nil {
		return s.abort(result, domain.StepPlaceBinary, err)
	}
	s.report(domain.StepPlaceBinary, locations.BinaryPath())

	if err := s.provisionRoot(ctx, locations); err != nil {
		return s.abort(result, domain.StepProvisionRoot, err)
	}
	s.report(domain.StepProvisionRoot, locations.InstallRoot)

	if !req.NoModifyPath {
		profilePath := s.Profile.TargetFile(req.Platform)
		if _, err := s.Profile.Install(profilePath, locations); err != nil {
			return s.abort(result, domain.StepProfile, err)
		}
		s.report(domain.StepProfile, profilePath)
	}

	if err := s.Product.Init(ctx, locations.BinaryPath(), locations); err != nil {
		return s.abort(result, domain.StepProductInit, err)
	}
	s.report(domain.StepProductInit, "")

	// Executing -> Succeeded.
	result.Outcome = domain.OutcomeSuccess
	result.FinishedAt = time.Now()
	s.record(result)
	return result, nil
}

// Uninstall runs the deliberate mirror image of Install. Product reset
// is best-effort; filesystem removal proceeds past its failure.
func (s *Service) Uninstall(ctx context.Context, req UninstallRequest) (domain.LifecycleResult, error) {
	result := domain.LifecycleResult{
		Operation: domain.OpUninstall,
		StartedAt: time.Now(),
	}

	locations := s.Resolver.Resolve(req.Platform, req.Overrides)
	result.Locations = locations

	binary := locations.BinaryPath()
	if _, err := os.Stat(binary); err != nil {
		return s.abort(result, domain.StepVerify, fmt.Errorf("%w: %s missing", domain.ErrNotInstalled, binary))
	}

	if err := s.Product.Reset(ctx, binary); err != nil {
		// Best effort: record the warning and keep removing state.
		result.Warnings = append(result.Warnings, domain.Warning{Step: domain.StepProductReset, Err: err})
		s.Logger.Warn("product reset failed, continuing teardown", map[string]interface{}{"error": err.Error()})
	} else {
		s.report(domain.StepProductReset, "")
	}

	if err := os.Remove(binary); err != nil {
		return s.abort(result, domain.StepRemoveBinary, err)
	}
	s.report(domain.StepRemoveBinary, binary)

	// The bin directory may be shared with other tools; only an empty
	// one is removed. Removal is optional, but a failure is surfaced.
	if empty, err := filesystem.IsDirEmpty(locations.BinDir); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.Logger.Warn("bin directory not inspected", map[string]interface{}{"dir": locations.BinDir, "error": err.Error()})
		}
	} else if empty {
		if err := os.Remove(locations.BinDir); err != nil {
			s.Logger.Warn("empty bin directory not removed", map[string]interface{}{"dir": locations.BinDir, "error": err.Error()})
		} else {
			s.report(domain.StepRemoveBinDir, locations.BinDir)
		}
	}

	if err := os.RemoveAll(locations.DataDir); err != nil {
		return s.abort(result, domain.StepRemoveData, err)
	}
	s.report(domain.StepRemoveData, locations.DataDir)

	if req.Purge {
		if err := s.removeRoot(ctx, locations.InstallRoot); err != nil {
			return s.abort(result, domain.StepRemoveRoot, err)
		}
		s.report(domain.StepRemoveRoot, locations.InstallRoot)
	}

	profilePath := s.Profile.TargetFile(req.Platform)
	if _, err := s.Profile.Uninstall(profilePath); err != nil {
		return s.abort(result, domain.StepProfile, err)
	}
	s.report(domain.StepProfile, profilePath)

	result.Outcome = domain.OutcomeSuccess
	if len(result.Warnings) > 0 {
		result.Outcome = domain.OutcomePartial
	}
	result.FinishedAt = time.Now()
	s.record(result)
	return result, nil
}

// placeBinary copies the artifact into the user-owned bin directory.
// Never elevates: the bin directory belongs to the user by contract.
func (s *Service) placeBinary(artifact string, locations domain.InstallLocations) error {
	if info, err := os.Stat(locations.BinDir); err == nil {
		if !info.IsDir() || !filesystem.IsWritable(locations.BinDir) {
			return fmt.Errorf("%w: %s", domain.ErrPathConflict, locations.BinDir)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	} else if err := os.MkdirAll(locations.BinDir, domain.DirectoryPermissions); err != nil {
		return err
	}
	if err := filesystem.CopyFile(artifact, locations.BinaryPath(), domain.ExecutablePermissions); err != nil {
		return err
	}
	return os.Chmod(locations.BinaryPath(), domain.ExecutablePermissions)
}

// provisionRoot creates the root and prefix scaffolding, electing the
// elevated path only for system-owned roots, and only for this step.
func (s *Service) provisionRoot(ctx context.Context, locations domain.InstallLocations) error {
	dirs := locations.RootSubdirs()
	if s.Escalator.NeedsElevation(locations.InstallRoot) && !filesystem.IsWritable(locations.InstallRoot) {
		return s.Escalator.ProvisionDirs(ctx, dirs, "")
	}
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil {
			if !info.IsDir() || !filesystem.IsWritable(dir) {
				return fmt.Errorf("%w: %s", domain.ErrPathConflict, dir)
			}
			continue
		}
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) removeRoot(ctx context.Context, root string) error {
	if s.Escalator.NeedsElevation(root) {
		return s.Escalator.RemoveTree(ctx, root)
	}
	return os.RemoveAll(root)
}

// abort finalizes a run on its first mandatory failure. Prior completed
// side effects stay in place (manual-retry model).
func (s *Service) abort(result domain.LifecycleResult, step domain.Step, err error) (domain.LifecycleResult, error) {
	result.Outcome = domain.OutcomeAborted
	result.FailedStep = step
	result.Err = err
	result.FinishedAt = time.Now()
	s.Logger.Error("run aborted", err, map[string]interface{}{"step": string(step)})
	s.record(result)
	return result, fmt.Errorf("%s: %w", step, err)
}

func (s *Service) record(result domain.LifecycleResult) {
	if s.Receipts == nil {
		return
	}
	if err := s.Receipts.Record(result); err != nil {
		s.Logger.Warn("receipt not recorded", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Service) report(step domain.Step, detail string) {
	if s.Progress != nil {
		s.Progress(step, detail)
	}
}
