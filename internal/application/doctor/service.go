package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/pkg/filesystem"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// ToolChecker reports availability of external collaborators.
type ToolChecker interface {
	LookPath(name string) bool
}

// Service runs environment diagnostics for the bootstrapper.
type Service struct {
	Resolver  ports.LocationResolver
	Escalator ports.PrivilegeEscalator
	Profile   ports.ProfileEditor
	Receipts  ports.ReceiptStore
	Tools     ToolChecker
}

// Run executes checks and returns a report.
func (s *Service) Run(platform domain.PlatformContext, overrides domain.Overrides) domain.HealthReport {
	var checks []domain.HealthCheck

	for _, tool := range []string{"git", "cargo"} {
		if s.Tools.LookPath(tool) {
			checks = append(checks, ok(tool, "found on PATH"))
		} else {
			checks = append(checks, fail(tool, "not found on PATH; required to build zerobrew"))
		}
	}

	locations := s.Resolver.Resolve(platform, overrides)

	profilePath := s.Profile.TargetFile(platform)
	switch {
	case !parentWritable(profilePath):
		checks = append(checks, fail("shell profile", fmt.Sprintf("%s is not writable", profilePath)))
	case s.Profile.HasMarker(profilePath):
		checks = append(checks, ok("shell profile", fmt.Sprintf("managed block present in %s", profilePath)))
	default:
		checks = append(checks, warn("shell profile", fmt.Sprintf("no managed block in %s", profilePath)))
	}

	if s.Escalator.NeedsElevation(locations.InstallRoot) {
		if filesystem.IsWritable(locations.InstallRoot) {
			checks = append(checks, ok("install root", fmt.Sprintf("%s provisioned and writable", locations.InstallRoot)))
		} else {
			checks = append(checks, warn("install root", fmt.Sprintf("%s is system-owned; provisioning will use sudo", locations.InstallRoot)))
		}
	} else if _, err := os.Stat(locations.InstallRoot); err == nil && !filesystem.IsWritable(locations.InstallRoot) {
		checks = append(checks, fail("install root", fmt.Sprintf("%s exists but is not writable", locations.InstallRoot)))
	} else {
		checks = append(checks, ok("install root", locations.InstallRoot))
	}

	if _, err := os.Stat(locations.BinaryPath()); err == nil {
		checks = append(checks, ok("binary", locations.BinaryPath()))
	} else {
		checks = append(checks, warn("binary", fmt.Sprintf("%s not installed", locations.BinaryPath())))
	}

	if s.Receipts != nil {
		if _, err := s.Receipts.Runs(1); err != nil {
			checks = append(checks, warn("receipt store", fmt.Sprintf("unreadable: %v", err)))
		} else {
			checks = append(checks, ok("receipt store", "readable"))
		}
	}

	return domain.HealthReport{Checks: checks}
}

// parentWritable accepts a missing profile whose directory can take it.
func parentWritable(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return filesystem.IsWritable(path)
	}
	return filesystem.IsWritable(filepath.Dir(path))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
