// Package paths derives the filesystem location set for a run from
// platform signals and explicit overrides. Resolution is pure and
// total: no side effects, no failures, defaults for everything.
package paths

import (
	"path/filepath"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// rootStrategy is one mutually exclusive root-selection rule. Strategies
// are tried in priority order; the first applicable one wins. Keeping
// them as a flat ordered list makes the precedence independently
// testable (legacy-root reuse must beat OS detection).
type rootStrategy struct {
	name    string
	applies func(domain.PlatformContext) bool
	root    func(domain.PlatformContext) string
}

var rootStrategies = []rootStrategy{
	{
		// A root left behind by a prior install is reused regardless of
		// OS so a detection change can never split-brain the install.
		name:    "legacy-root",
		applies: func(p domain.PlatformContext) bool { return p.LegacyRootPresent },
		root:    func(domain.PlatformContext) string { return domain.LegacyRoot },
	},
	{
		// Mach-O install-name strings embedded in relocated dylibs have a
		// hard length ceiling, so the macOS root must stay short enough
		// that offsets encoded at link time remain valid after install.
		// This is a constraint, not a preference: macOS never uses a
		// per-user data directory.
		name:    "macos-fixed",
		applies: func(p domain.PlatformContext) bool { return p.OS == domain.OSMac },
		root:    func(domain.PlatformContext) string { return domain.LegacyRoot },
	},
	{
		name:    "xdg-data",
		applies: func(domain.PlatformContext) bool { return true },
		root: func(p domain.PlatformContext) string {
			dataHome := p.XDGDataHome
			if dataHome == "" {
				dataHome = filepath.Join(p.Home, ".local", "share")
			}
			return filepath.Join(dataHome, domain.ProductName)
		},
	},
}

// Resolver implements ports.LocationResolver.
type Resolver struct{}

// NewResolver builds a resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve derives the location set. Overrides win over every strategy,
// independently per field; prefix defaults to <root>/prefix.
func (r *Resolver) Resolve(platform domain.PlatformContext, overrides domain.Overrides) domain.InstallLocations {
	root := overrides.InstallRoot
	if root == "" {
		for _, s := range rootStrategies {
			if s.applies(platform) {
				root = s.root(platform)
				break
			}
		}
	}

	dataDir := overrides.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(platform.Home, "."+domain.ProductName)
	}

	binDir := overrides.BinDir
	if binDir == "" {
		binDir = filepath.Join(platform.Home, ".local", "bin")
	}

	prefix := overrides.Prefix
	if prefix == "" {
		prefix = filepath.Join(root, "prefix")
	}

	return domain.InstallLocations{
		DataDir:     dataDir,
		BinDir:      binDir,
		InstallRoot: root,
		Prefix:      prefix,
	}
}

var _ ports.LocationResolver = (*Resolver)(nil)
