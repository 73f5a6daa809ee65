package domain

// BootstrapConfig is the persisted bootstrap configuration. All fields
// are optional; zero values defer to resolver defaults.
type BootstrapConfig struct {
	Locations    Overrides `yaml:"locations"`
	RepoURL      string    `yaml:"repo_url"`
	Branch       string    `yaml:"branch"`
	NoModifyPath bool      `yaml:"no_modify_path"`
}

// WithDefaults fills unset collaborator settings.
func (c BootstrapConfig) WithDefaults() BootstrapConfig {
	if c.RepoURL == "" {
		c.RepoURL = DefaultRepoURL
	}
	return c
}
