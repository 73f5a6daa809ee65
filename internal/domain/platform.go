package domain

// OSKind classifies the host operating system for root selection.
type OSKind string

const (
	OSMac   OSKind = "macos"
	OSLinux OSKind = "linux"
	OSOther OSKind = "other"
)

// ShellKind classifies the user's login shell for profile targeting.
type ShellKind string

const (
	ShellZsh     ShellKind = "zsh"
	ShellBash    ShellKind = "bash"
	ShellUnknown ShellKind = "other"
)

// PlatformContext captures the host signals the resolver and profile
// editor depend on. It is read once at the start of a run and never
// mutated afterwards.
type PlatformContext struct {
	OS                 OSKind
	Shell              ShellKind
	Home               string
	ZDotDir            string
	XDGDataHome        string
	LegacyRootPresent  bool
	ProcessInteractive bool
}

// Overrides carries explicit location overrides. An empty field means
// "no override"; a set field always wins over resolver strategies.
type Overrides struct {
	DataDir     string `yaml:"data_dir"`
	BinDir      string `yaml:"bin_dir"`
	InstallRoot string `yaml:"install_root"`
	Prefix      string `yaml:"prefix"`
}

// Merge returns o with empty fields filled from fallback. Used to layer
// flag overrides on top of environment and config-file overrides.
func (o Overrides) Merge(fallback Overrides) Overrides {
	if o.DataDir == "" {
		o.DataDir = fallback.DataDir
	}
	if o.BinDir == "" {
		o.BinDir = fallback.BinDir
	}
	if o.InstallRoot == "" {
		o.InstallRoot = fallback.InstallRoot
	}
	if o.Prefix == "" {
		o.Prefix = fallback.Prefix
	}
	return o
}
