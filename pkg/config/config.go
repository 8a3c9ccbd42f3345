package config

import (
	"github.com/symmetrysyndicate/symfetch/pkg/render"
	"github.com/symmetrysyndicate/symfetch/pkg/types"
)

// Config is the complete symfetch configuration
type Config struct {
	Ascii  *AsciiConfig `koanf:"ascii"`
	Image  *ImageConfig `koanf:"image"`
	Render RenderConfig `koanf:"render"`
	Info   InfoConfig   `koanf:"info"`

	// Source is the config file the values were read from
	Source string `koanf:"-"`
}

// AsciiConfig selects a text file holding ASCII art
type AsciiConfig struct {
	Path string `koanf:"path"`
}

// ImageConfig selects an image plus rendering hints
type ImageConfig struct {
	Path    string `koanf:"path"`
	Width   *int64 `koanf:"width"`
	Height  *int64 `koanf:"height"`
	Colored *bool  `koanf:"colored"`
	AsASCII *bool  `koanf:"as_ascii"`
}

// RenderConfig tunes the image backends
type RenderConfig struct {
	Backends []string `koanf:"backends"`
	Charset  string   `koanf:"charset"`
}

// InfoConfig controls the information column
type InfoConfig struct {
	Fields []string `koanf:"fields"`
	Theme  string   `koanf:"theme"`
}

// RenderSource returns the validated graphic source
func (c *Config) RenderSource() types.RenderConfig {
	var rc types.RenderConfig
	if c.Ascii != nil {
		rc.Ascii = &types.AsciiSource{Path: c.Ascii.Path}
	}
	if c.Image != nil {
		rc.Image = &types.ImageSource{
			Path:    c.Image.Path,
			Width:   toUint(c.Image.Width),
			Height:  toUint(c.Image.Height),
			Colored: c.Image.Colored,
			AsASCII: c.Image.AsASCII,
		}
	}
	return rc
}

// Backends builds the configured backend list, applying the charset to the
// ascii backend
func (c *Config) Backends() ([]render.Backend, error) {
	backends, err := render.ParseBackends(c.Render.Backends)
	if err != nil {
		return nil, err
	}
	if c.Render.Charset != "" {
		for _, b := range backends {
			if ab, ok := b.(*render.ASCIIBackend); ok {
				ab.WithCharset(c.Render.Charset)
			}
		}
	}
	return backends, nil
}

func toUint(v *int64) *uint {
	if v == nil {
		return nil
	}
	return types.Uint(uint(*v))
}
