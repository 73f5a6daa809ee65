package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInstallLocationsDerivedPaths(t *testing.T) {
	l := InstallLocations{
		DataDir:     "/home/u/.zerobrew",
		BinDir:      "/home/u/.local/bin",
		InstallRoot: "/opt/zerobrew",
		Prefix:      "/opt/zerobrew/prefix",
	}

	if got, want := l.BinaryPath(), "/home/u/.local/bin/zb"; got != want {
		t.Fatalf("BinaryPath = %q, want %q", got, want)
	}
	if got, want := l.PkgConfigDir(), "/opt/zerobrew/prefix/lib/pkgconfig"; got != want {
		t.Fatalf("PkgConfigDir = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"/home/u/.local/bin", "/opt/zerobrew/prefix/bin"}, l.PathEntries()); diff != "" {
		t.Fatalf("PathEntries (-want +got):\n%s", diff)
	}

	vars := l.ManagedVars()
	want := map[string]string{
		"ZEROBREW_DIR":    "/home/u/.zerobrew",
		"ZEROBREW_BIN":    "/home/u/.local/bin",
		"ZEROBREW_ROOT":   "/opt/zerobrew",
		"ZEROBREW_PREFIX": "/opt/zerobrew/prefix",
	}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Fatalf("ManagedVars (-want +got):\n%s", diff)
	}
}

func TestRootSubdirsCreationOrder(t *testing.T) {
	l := InstallLocations{InstallRoot: "/opt/zerobrew", Prefix: "/opt/zerobrew/prefix"}

	subdirs := l.RootSubdirs()
	if subdirs[0] != l.InstallRoot {
		t.Fatalf("root not first: %v", subdirs)
	}
	// Parents precede their children, so plain sequential mkdir works.
	seen := map[string]bool{l.InstallRoot: true}
	for _, dir := range subdirs[1:] {
		parent := dir[:strings.LastIndex(dir, "/")]
		if !seen[parent] {
			t.Fatalf("%s created before its parent %s", dir, parent)
		}
		seen[dir] = true
	}
}

func TestOverridesMerge(t *testing.T) {
	flags := Overrides{BinDir: "/flag/bin"}
	config := Overrides{BinDir: "/cfg/bin", InstallRoot: "/cfg/root"}

	got := flags.Merge(config)

	want := Overrides{BinDir: "/flag/bin", InstallRoot: "/cfg/root"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Merge (-want +got):\n%s", diff)
	}

	// Merging into empty keeps the fallback intact.
	if diff := cmp.Diff(config, Overrides{}.Merge(config)); diff != "" {
		t.Fatalf("empty Merge (-want +got):\n%s", diff)
	}
}
