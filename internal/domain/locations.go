package domain

import "path/filepath"

// InstallLocations is the consistent location set for one run. All paths
// are absolute. InstallRoot and Prefix are derived by the resolver, not
// independently settable, except through an explicit override.
type InstallLocations struct {
	// DataDir holds the zerobrew working copy (source checkout).
	DataDir string
	// BinDir receives the installed executable.
	BinDir string
	// InstallRoot owns all product state (store, caches, prefix).
	InstallRoot string
	// Prefix is the subtree receiving installed package artifacts.
	// Invariant: a descendant of InstallRoot unless overridden.
	Prefix string
}

// BinaryPath is the full path of the installed executable.
func (l InstallLocations) BinaryPath() string {
	return filepath.Join(l.BinDir, BinaryName)
}

// PkgConfigDir is the derived library-search-path exported alongside the
// four managed variables.
func (l InstallLocations) PkgConfigDir() string {
	return filepath.Join(l.Prefix, "lib", "pkgconfig")
}

// RootSubdirs lists the directories provisioned under the install root
// and prefix during initialization, in creation order.
func (l InstallLocations) RootSubdirs() []string {
	return []string{
		l.InstallRoot,
		filepath.Join(l.InstallRoot, "store"),
		filepath.Join(l.InstallRoot, "db"),
		filepath.Join(l.InstallRoot, "cache"),
		filepath.Join(l.InstallRoot, "locks"),
		l.Prefix,
		filepath.Join(l.Prefix, "bin"),
		filepath.Join(l.Prefix, "Cellar"),
	}
}

// ManagedVars returns the exported variable set for the shell profile,
// keyed by environment variable name.
func (l InstallLocations) ManagedVars() map[string]string {
	return map[string]string{
		EnvDataDir:     l.DataDir,
		EnvBinDir:      l.BinDir,
		EnvInstallRoot: l.InstallRoot,
		EnvPrefix:      l.Prefix,
	}
}

// PathEntries returns the directories appended to PATH by the managed
// block, in order.
func (l InstallLocations) PathEntries() []string {
	return []string{l.BinDir, filepath.Join(l.Prefix, "bin")}
}
