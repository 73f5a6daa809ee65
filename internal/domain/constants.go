package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ExecutablePermissions is the permission for installed binaries (rwxr-xr-x)
	ExecutablePermissions = 0o755
	// ProfilePermissions is the permission used when creating shell startup files (rw-r--r--)
	ProfilePermissions = 0o644
)

// Product identity constants
const (
	// ProductName is the name of the package manager being bootstrapped
	ProductName = "zerobrew"
	// BinaryName is the name of the installed executable
	BinaryName = "zb"
	// ProfileMarker is the comment line that opens the managed shell block
	ProfileMarker = "# zerobrew"
	// PathAppendFunc is the name of the PATH-deduplicating shell helper
	PathAppendFunc = "_zb_path_append"
)

// Environment variable names consumed as overrides and exported into the
// managed shell block. The same four names serve both directions.
const (
	EnvDataDir     = "ZEROBREW_DIR"
	EnvBinDir      = "ZEROBREW_BIN"
	EnvInstallRoot = "ZEROBREW_ROOT"
	EnvPrefix      = "ZEROBREW_PREFIX"
)

// SystemRootPrefix is the fixed system-owned path prefix. Any install
// root under it requires elevation for provisioning and removal.
const SystemRootPrefix = "/opt"

// LegacyRoot is the platform-independent preferred install root. When it
// already exists it is reused regardless of OS detection, so a prior
// install is never split-brained by a detection change.
const LegacyRoot = "/opt/zerobrew"

// DefaultRepoURL is the upstream source of the zerobrew working copy.
const DefaultRepoURL = "https://github.com/zerobrew/zerobrew.git"

// ArtifactRelPath is where the build collaborator leaves the executable,
// relative to the working copy.
const ArtifactRelPath = "target/release/zb"
