package receipt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zerobrew/zbstrap/internal/domain"
)

func testResult(op domain.Operation, outcome domain.Outcome) domain.LifecycleResult {
	return domain.LifecycleResult{
		Operation: op,
		Outcome:   outcome,
		Locations: domain.InstallLocations{
			DataDir:     "/home/u/.zerobrew",
			BinDir:      "/home/u/.local/bin",
			InstallRoot: "/opt/zerobrew",
			Prefix:      "/opt/zerobrew/prefix",
		},
		FinishedAt: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecordAndRunsRoundTrip(t *testing.T) {
	store := NewSQLiteStore(t.TempDir())
	defer store.Close()

	failed := testResult(domain.OpInstall, domain.OutcomeAborted)
	failed.FailedStep = domain.StepBuild
	failed.Err = errors.New("cargo build: exit 101")
	if err := store.Record(failed); err != nil {
		t.Fatalf("record failed run: %v", err)
	}
	if err := store.Record(testResult(domain.OpInstall, domain.OutcomeSuccess)); err != nil {
		t.Fatalf("record success: %v", err)
	}

	runs, err := store.Runs(0)
	if err != nil {
		t.Fatalf("Runs error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("run count = %d", len(runs))
	}

	// Newest first.
	if runs[0].Outcome != domain.OutcomeSuccess || runs[1].Outcome != domain.OutcomeAborted {
		t.Fatalf("order wrong: %s, %s", runs[0].Outcome, runs[1].Outcome)
	}
	got := runs[1]
	if got.Operation != domain.OpInstall || got.FailedStep != domain.StepBuild {
		t.Fatalf("failed run = %+v", got)
	}
	if got.Error != "cargo build: exit 101" {
		t.Fatalf("error text = %q", got.Error)
	}
	if got.Root != "/opt/zerobrew" || got.Prefix != "/opt/zerobrew/prefix" {
		t.Fatalf("locations = %+v", got)
	}
	if !got.Timestamp.Equal(time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("timestamp = %s", got.Timestamp)
	}
}

func TestRunsHonorsLimit(t *testing.T) {
	store := NewSQLiteStore(t.TempDir())
	defer store.Close()

	for i := 0; i < 5; i++ {
		result := testResult(domain.OpUninstall, domain.OutcomeSuccess)
		result.Locations.DataDir = fmt.Sprintf("/data/%d", i)
		if err := store.Record(result); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	runs, err := store.Runs(2)
	if err != nil {
		t.Fatalf("Runs error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("run count = %d, want 2", len(runs))
	}
	if runs[0].DataDir != "/data/4" || runs[1].DataDir != "/data/3" {
		t.Fatalf("not newest first: %q, %q", runs[0].DataDir, runs[1].DataDir)
	}
}

func TestReceiptsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	store := NewSQLiteStore(dir)
	if err := store.Record(testResult(domain.OpInstall, domain.OutcomeSuccess)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := NewSQLiteStore(dir)
	defer reopened.Close()
	runs, err := reopened.Runs(0)
	if err != nil {
		t.Fatalf("Runs error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("run count after reopen = %d", len(runs))
	}
}

func TestDegradedStoreIsNoOp(t *testing.T) {
	// A state dir that cannot be created degrades the store instead of
	// failing the run.
	blocked := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocked, []byte("in the way"), 0o644); err != nil {
		t.Fatalf("blocker: %v", err)
	}
	store := NewSQLiteStore(filepath.Join(blocked, "nested"))
	defer store.Close()

	if err := store.Record(testResult(domain.OpInstall, domain.OutcomeSuccess)); err != nil {
		t.Fatalf("degraded Record returned error: %v", err)
	}
	runs, err := store.Runs(0)
	if err != nil {
		t.Fatalf("degraded Runs returned error: %v", err)
	}
	if runs != nil {
		t.Fatalf("degraded Runs = %v", runs)
	}
}
