package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/zerobrew/zbstrap/internal/domain"
)

type fakeResolver struct {
	locations domain.InstallLocations
}

func (f *fakeResolver) Resolve(domain.PlatformContext, domain.Overrides) domain.InstallLocations {
	return f.locations
}

type fakeEscalator struct {
	elevated bool
}

func (f *fakeEscalator) NeedsElevation(string) bool { return f.elevated }

func (f *fakeEscalator) ProvisionDirs(context.Context, []string, string) error { return nil }

func (f *fakeEscalator) RemoveTree(context.Context, string) error { return nil }

type fakeProfile struct {
	target string
	marker bool
}

func (f *fakeProfile) Install(path string, _ domain.InstallLocations) (domain.ProfileEdit, error) {
	return domain.ProfileEdit{Path: path}, nil
}

func (f *fakeProfile) Uninstall(path string) (domain.ProfileEdit, error) {
	return domain.ProfileEdit{Path: path}, nil
}

func (f *fakeProfile) TargetFile(domain.PlatformContext) string { return f.target }

func (f *fakeProfile) HasMarker(string) bool { return f.marker }

type fakeTools struct {
	present map[string]bool
}

func (f *fakeTools) LookPath(name string) bool { return f.present[name] }

func checkByName(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no %q check in %+v", name, report.Checks)
	return domain.HealthCheck{}
}

func TestRunReportsMissingTools(t *testing.T) {
	base := t.TempDir()
	profile := filepath.Join(base, ".bashrc")
	svc := &Service{
		Resolver:  &fakeResolver{locations: domain.InstallLocations{BinDir: filepath.Join(base, "bin"), InstallRoot: filepath.Join(base, "root")}},
		Escalator: &fakeEscalator{},
		Profile:   &fakeProfile{target: profile},
		Tools:     &fakeTools{present: map[string]bool{"git": true}},
	}

	report := svc.Run(domain.PlatformContext{Home: base}, domain.Overrides{})

	if got := checkByName(t, report, "git"); got.Status != domain.HealthOK {
		t.Fatalf("git check = %+v", got)
	}
	if got := checkByName(t, report, "cargo"); got.Status != domain.HealthError {
		t.Fatalf("cargo check = %+v", got)
	}
	if report.Healthy() {
		t.Fatal("report healthy with cargo missing")
	}
}

func TestRunHealthyEnvironment(t *testing.T) {
	base := t.TempDir()
	binDir := filepath.Join(base, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "zb"), []byte("#!bin"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	profile := filepath.Join(base, ".bashrc")
	if err := os.WriteFile(profile, []byte("# zerobrew\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	svc := &Service{
		Resolver:  &fakeResolver{locations: domain.InstallLocations{BinDir: binDir, InstallRoot: filepath.Join(base, "root")}},
		Escalator: &fakeEscalator{},
		Profile:   &fakeProfile{target: profile, marker: true},
		Tools:     &fakeTools{present: map[string]bool{"git": true, "cargo": true}},
	}

	report := svc.Run(domain.PlatformContext{Home: base}, domain.Overrides{})

	if !report.Healthy() {
		t.Fatalf("expected healthy report: %+v", report.Checks)
	}
	if got := checkByName(t, report, "shell profile"); got.Status != domain.HealthOK {
		t.Fatalf("profile check = %+v", got)
	}
	if got := checkByName(t, report, "binary"); got.Status != domain.HealthOK {
		t.Fatalf("binary check = %+v", got)
	}
}

func TestRunWarnsOnSystemOwnedRoot(t *testing.T) {
	base := t.TempDir()
	svc := &Service{
		Resolver:  &fakeResolver{locations: domain.InstallLocations{BinDir: filepath.Join(base, "bin"), InstallRoot: "/opt/zerobrew"}},
		Escalator: &fakeEscalator{elevated: true},
		Profile:   &fakeProfile{target: filepath.Join(base, ".bashrc")},
		Tools:     &fakeTools{present: map[string]bool{"git": true, "cargo": true}},
	}

	report := svc.Run(domain.PlatformContext{Home: base}, domain.Overrides{})

	// A system-owned root is never an error: either already provisioned
	// and writable, or a warning that sudo will be used.
	got := checkByName(t, report, "install root")
	if got.Status == domain.HealthError {
		t.Fatalf("install root check errored: %+v", got)
	}
	if !report.Healthy() {
		t.Fatalf("system-owned root made the report unhealthy: %+v", report.Checks)
	}
}
