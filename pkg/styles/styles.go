// Package styles holds the named lipgloss styles used for terminal output.
//
// Styles are defined in YAML (an embedded default plus an optional user
// theme file) and looked up by semantic name:
//
//	reg.Render("InfoLabel", "OS")
package styles

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef is an adaptive colour definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition. Foreground and Background name an entry
// in Colors or hold a literal colour such as "#ff8800" or "205".
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config is the YAML document schema
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to styles bound to one renderer
type Registry struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
}

// Load builds a registry from the embedded styles, overlaid with the theme
// file at themePath when it is not empty. A nil fs reads the OS file system.
func Load(r *lipgloss.Renderer, fs afero.Fs, themePath string) (*Registry, error) {
	cfg, err := parse(defaultStyles)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse default styles")
	}

	if themePath != "" {
		if fs == nil {
			fs = afero.NewOsFs()
		}
		data, err := afero.ReadFile(fs, themePath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read theme %s", themePath)
		}
		theme, err := parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse theme %s", themePath)
		}
		cfg.merge(theme)
	}

	return build(r, cfg), nil
}

// Default returns the embedded styles bound to r
func Default(r *lipgloss.Renderer) *Registry {
	reg, err := Load(r, nil, "")
	if err != nil {
		panic(err)
	}
	return reg
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) merge(other Config) {
	if c.Colors == nil {
		c.Colors = map[string]ColorDef{}
	}
	if c.Styles == nil {
		c.Styles = map[string]StyleDef{}
	}
	for name, def := range other.Colors {
		c.Colors[name] = def
	}
	for name, def := range other.Styles {
		c.Styles[name] = def
	}
}

func build(r *lipgloss.Renderer, cfg Config) *Registry {
	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	resolve := func(v string) lipgloss.TerminalColor {
		if c, ok := colors[v]; ok {
			return c
		}
		return lipgloss.Color(v)
	}

	reg := &Registry{renderer: r, styles: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for name, def := range cfg.Styles {
		style := r.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			style = style.Foreground(resolve(def.Foreground))
		}
		if def.Background != "" {
			style = style.Background(resolve(def.Background))
		}
		reg.styles[name] = style
	}
	return reg
}

// Get returns the named style, or a plain style when the name is unknown
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return r.renderer.NewStyle()
}

// Has reports whether name is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Render applies the named style to s
func (r *Registry) Render(name, s string) string {
	return r.Get(name).Render(s)
}
