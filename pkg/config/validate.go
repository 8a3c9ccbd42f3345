package config

import (
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/render"
	"github.com/symmetrysyndicate/symfetch/pkg/sysinfo"
)

// Validate rejects configurations the renderer cannot use
func (c *Config) Validate() error {
	switch {
	case c.Ascii != nil && c.Image != nil:
		return errors.New(errors.ErrConfigInvalid,
			"both 'ascii' and 'image' are defined, only one must be specified")
	case c.Ascii == nil && c.Image == nil:
		return errors.New(errors.ErrConfigInvalid,
			"neither 'ascii' nor 'image' is defined, one must be specified")
	}

	if c.Ascii != nil && c.Ascii.Path == "" {
		return errors.New(errors.ErrConfigInvalid, "ascii.path is required")
	}

	if c.Image != nil {
		if c.Image.Path == "" {
			return errors.New(errors.ErrConfigInvalid, "image.path is required")
		}
		if err := positive("image.width", c.Image.Width); err != nil {
			return err
		}
		if err := positive("image.height", c.Image.Height); err != nil {
			return err
		}
	}

	for _, name := range c.Render.Backends {
		if _, err := render.NewBackend(name); err != nil {
			return errors.Wrapf(err, errors.ErrConfigInvalid, "invalid render.backends entry %q", name).
				WithDetail("backend", name)
		}
	}

	for _, field := range c.Info.Fields {
		if !sysinfo.IsKnownField(field) {
			return errors.Newf(errors.ErrConfigInvalid, "unknown info.fields entry %q", field).
				WithDetail("field", field).
				WithDetail("known", sysinfo.KnownFields)
		}
	}

	return nil
}

func positive(key string, v *int64) error {
	if v != nil && *v < 1 {
		return errors.Newf(errors.ErrConfigInvalid, "%s must be a positive integer, got %d", key, *v).
			WithDetail("key", key)
	}
	return nil
}
