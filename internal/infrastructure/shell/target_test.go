package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/pkg/logger"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("# existing\n"), 0o644); err != nil {
		t.Fatalf("touch: %v", err)
	}
}

func TestTargetFileZshPrefersZshenv(t *testing.T) {
	home := t.TempDir()
	editor := NewEditor(logger.NewStd(false))
	platform := domain.PlatformContext{Shell: domain.ShellZsh, Home: home}

	// Neither file exists: fall back to ~/.zshrc.
	if got, want := editor.TargetFile(platform), filepath.Join(home, ".zshrc"); got != want {
		t.Fatalf("fallback = %q, want %q", got, want)
	}

	// .zshrc exists: use it.
	touch(t, filepath.Join(home, ".zshrc"))
	if got, want := editor.TargetFile(platform), filepath.Join(home, ".zshrc"); got != want {
		t.Fatalf("zshrc = %q, want %q", got, want)
	}

	// .zshenv exists too: it is sourced for every session and wins.
	touch(t, filepath.Join(home, ".zshenv"))
	if got, want := editor.TargetFile(platform), filepath.Join(home, ".zshenv"); got != want {
		t.Fatalf("zshenv = %q, want %q", got, want)
	}
}

func TestTargetFileZshHonorsZDotDir(t *testing.T) {
	home := t.TempDir()
	zdot := filepath.Join(home, "config", "zsh")
	editor := NewEditor(logger.NewStd(false))
	platform := domain.PlatformContext{Shell: domain.ShellZsh, Home: home, ZDotDir: zdot}

	touch(t, filepath.Join(zdot, ".zshrc"))
	if got, want := editor.TargetFile(platform), filepath.Join(zdot, ".zshrc"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// ZDOTDIR set but empty of startup files: fall back to ~/.zshrc.
	empty := filepath.Join(home, "empty")
	platform.ZDotDir = empty
	if got, want := editor.TargetFile(platform), filepath.Join(home, ".zshrc"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTargetFileBashPrefersBashProfile(t *testing.T) {
	home := t.TempDir()
	editor := NewEditor(logger.NewStd(false))
	platform := domain.PlatformContext{Shell: domain.ShellBash, Home: home}

	if got, want := editor.TargetFile(platform), filepath.Join(home, ".bashrc"); got != want {
		t.Fatalf("fallback = %q, want %q", got, want)
	}

	touch(t, filepath.Join(home, ".bash_profile"))
	if got, want := editor.TargetFile(platform), filepath.Join(home, ".bash_profile"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTargetFileUnknownShellUsesProfile(t *testing.T) {
	home := t.TempDir()
	editor := NewEditor(logger.NewStd(false))
	platform := domain.PlatformContext{Shell: domain.ShellUnknown, Home: home}

	if got, want := editor.TargetFile(platform), filepath.Join(home, ".profile"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
