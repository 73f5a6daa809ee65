package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/pkg/filesystem"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// FileLoader loads YAML configuration from ~/.config/zbstrap/config.yaml
// (overridable via ZBSTRAP_CONFIG). A missing file is not an error: the
// bootstrapper runs fine on resolver defaults alone.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path defers to the
// environment and the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.BootstrapConfig, error) {
	path := l.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.BootstrapConfig{}.WithDefaults(), nil
		}
		return domain.BootstrapConfig{}, err
	}

	var cfg domain.BootstrapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.BootstrapConfig{}, err
	}

	cfg.Locations.DataDir = filesystem.ExpandPath(cfg.Locations.DataDir)
	cfg.Locations.BinDir = filesystem.ExpandPath(cfg.Locations.BinDir)
	cfg.Locations.InstallRoot = filesystem.ExpandPath(cfg.Locations.InstallRoot)
	cfg.Locations.Prefix = filesystem.ExpandPath(cfg.Locations.Prefix)

	return cfg.WithDefaults(), nil
}

// Path reports the config file location in effect.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("ZBSTRAP_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".config", "zbstrap", "config.yaml")
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
