package core

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/symmetrysyndicate/symfetch/pkg/config"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/logging"
	"github.com/symmetrysyndicate/symfetch/pkg/paths"
	"github.com/symmetrysyndicate/symfetch/pkg/render"
	"github.com/symmetrysyndicate/symfetch/pkg/styles"
	"github.com/symmetrysyndicate/symfetch/pkg/sysinfo"
	"github.com/symmetrysyndicate/symfetch/pkg/ui"
)

// RunOptions configures a complete invocation
type RunOptions struct {
	// ConfigPath is an explicit config file; empty uses the default location
	ConfigPath string
	// Backends overrides render.backends when not nil
	Backends []string
	Color    ui.ColorMode
	Stdout   io.Writer

	// Collaborators, defaulted to the real system when nil
	Fs       afero.Fs
	Probe    sysinfo.Probe
	Resolver *paths.Resolver
}

// Run loads the configuration and performs one fetch. Configuration
// problems are returned as coded errors; rendering problems are not.
func Run(opts RunOptions) error {
	logger := logging.GetLogger("core.run")

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Probe == nil {
		opts.Probe = sysinfo.NewHostProbe(opts.Fs)
	}

	loadOpts := config.LoadOptions{Path: opts.ConfigPath, Resolver: opts.Resolver, Fs: opts.Fs}
	if opts.Backends != nil {
		loadOpts.Overrides = map[string]interface{}{"render.backends": opts.Backends}
	}
	cfg, err := config.Load(loadOpts)
	if err != nil {
		return err
	}

	backends, err := cfg.Backends()
	if err != nil {
		return err
	}

	renderer := ui.NewRenderer(opts.Stdout, opts.Color)
	reg, err := styles.Load(renderer, opts.Fs, cfg.Info.Theme)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to load info theme").
			WithDetail("theme", cfg.Info.Theme)
	}

	selector := render.NewSelector(opts.Fs, backends)
	logger.Debug().
		Str("config", cfg.Source).
		Strs("backends", selector.Backends()).
		Str("color", opts.Color.String()).
		Msg("Starting fetch")

	return Fetch(FetchOptions{
		Source:   cfg.RenderSource(),
		Selector: selector,
		Info:     sysinfo.NewCollector(opts.Probe, cfg.Info.Fields, reg),
		Output:   opts.Stdout,
	})
}

// CheckReport summarizes a validated configuration
type CheckReport struct {
	ConfigPath  string
	Source      string
	SourcePath  string
	SourceFound bool
	Backends    []string
	Fields      []string
	Theme       string
}

// Check loads and validates the configuration without rendering anything
func Check(configPath string, resolver *paths.Resolver, fs afero.Fs) (*CheckReport, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cfg, err := config.Load(config.LoadOptions{Path: configPath, Resolver: resolver, Fs: fs})
	if err != nil {
		return nil, err
	}
	backends, err := cfg.Backends()
	if err != nil {
		return nil, err
	}

	src := cfg.RenderSource()
	report := &CheckReport{
		ConfigPath: cfg.Source,
		Source:     string(src.Kind()),
		Fields:     cfg.Info.Fields,
		Theme:      cfg.Info.Theme,
	}
	for _, b := range backends {
		report.Backends = append(report.Backends, b.Name())
	}

	switch {
	case src.Ascii != nil:
		report.SourcePath = src.Ascii.Path
	case src.Image != nil:
		report.SourcePath = src.Image.Path
	}
	if info, err := fs.Stat(report.SourcePath); err == nil && !info.IsDir() {
		report.SourceFound = true
	}
	return report, nil
}
