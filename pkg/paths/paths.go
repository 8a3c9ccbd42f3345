package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
)

const (
	// AppName names the per-application config directory and files
	AppName = "symfetch"

	// ConfigFileName is the file looked up directly under the config home
	ConfigFileName = "symfetch.toml"

	// NestedConfigFileName is the file looked up under the app config directory
	NestedConfigFileName = "config.toml"

	// EnvConfigHome is consulted at resolve time so tests and wrappers can override it
	EnvConfigHome = "XDG_CONFIG_HOME"

	homeConfigPrefix = "~/.config/"
)

// Resolver expands home-config prefixes and makes paths absolute.
// It carries its environment explicitly so it can be constructed in tests.
type Resolver struct {
	HomeDir    string
	ConfigHome string
	BaseDir    string
}

// NewResolver builds a Resolver from the process environment
func NewResolver() *Resolver {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	// $XDG_CONFIG_HOME, else ~/.config on every platform
	configHome := os.Getenv(EnvConfigHome)
	if configHome == "" && home != "" {
		configHome = filepath.Join(home, ".config")
	}

	return &Resolver{HomeDir: home, ConfigHome: configHome}
}

// WithBase returns a copy of r resolving relative paths against dir
func (r *Resolver) WithBase(dir string) *Resolver {
	c := *r
	c.BaseDir = dir
	return &c
}

// Resolve returns the absolute, cleaned form of path
func (r *Resolver) Resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded, err := r.expand(path)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(expanded) && r.BaseDir != "" {
		expanded = filepath.Join(r.BaseDir, expanded)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

func (r *Resolver) expand(path string) (string, error) {
	if strings.HasPrefix(path, homeConfigPrefix) {
		if r.ConfigHome == "" {
			return "", errors.Newf(errors.ErrNotFound, "no config home to expand %s", path)
		}
		return filepath.Join(r.ConfigHome, strings.TrimPrefix(path, homeConfigPrefix)), nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if r.HomeDir == "" {
			return "", errors.Newf(errors.ErrNotFound, "no home directory to expand %s", path)
		}
		if path == "~" {
			return r.HomeDir, nil
		}
		return filepath.Join(r.HomeDir, path[2:]), nil
	}

	// ~user and everything else is left alone
	return path, nil
}

// ConfigCandidates lists the default config file locations in lookup order
func (r *Resolver) ConfigCandidates() []string {
	if r.ConfigHome == "" {
		return nil
	}
	return []string{
		filepath.Join(r.ConfigHome, ConfigFileName),
		filepath.Join(r.ConfigHome, AppName, NestedConfigFileName),
	}
}

// DefaultConfigPath returns the first candidate that exists on fs, or the
// primary candidate when none exists so error messages name a sensible
// location. A nil fs checks the OS file system.
func (r *Resolver) DefaultConfigPath(fs afero.Fs) string {
	candidates := r.ConfigCandidates()
	if len(candidates) == 0 {
		return ConfigFileName
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	for _, c := range candidates {
		if info, err := fs.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return candidates[0]
}
