package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/pkg/filesystem"
)

// DetectPlatform reads the host signals once, at the start of a run.
// The returned context is treated as immutable for the run's duration.
func DetectPlatform() domain.PlatformContext {
	return detectPlatform(runtime.GOOS, os.Getenv, statExists)
}

// detectPlatform is the testable core; callers inject GOOS, env lookup
// and the existence probe.
func detectPlatform(goos string, getenv func(string) string, exists func(string) bool) domain.PlatformContext {
	home := getenv("HOME")
	if home == "" {
		home = filesystem.UserHomeDir()
	}
	return domain.PlatformContext{
		OS:                osKind(goos),
		Shell:             shellKind(getenv("SHELL")),
		Home:              home,
		ZDotDir:           getenv("ZDOTDIR"),
		XDGDataHome:       getenv("XDG_DATA_HOME"),
		LegacyRootPresent: exists(domain.LegacyRoot),
	}
}

func osKind(goos string) domain.OSKind {
	switch goos {
	case "darwin":
		return domain.OSMac
	case "linux":
		return domain.OSLinux
	default:
		return domain.OSOther
	}
}

func shellKind(shellPath string) domain.ShellKind {
	switch strings.ToLower(filepath.Base(shellPath)) {
	case "zsh":
		return domain.ShellZsh
	case "bash":
		return domain.ShellBash
	default:
		return domain.ShellUnknown
	}
}

func statExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnvOverrides reads the four override variables from the environment.
func EnvOverrides() domain.Overrides {
	return domain.Overrides{
		DataDir:     os.Getenv(domain.EnvDataDir),
		BinDir:      os.Getenv(domain.EnvBinDir),
		InstallRoot: os.Getenv(domain.EnvInstallRoot),
		Prefix:      os.Getenv(domain.EnvPrefix),
	}
}
