package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/logging"
	"github.com/symmetrysyndicate/symfetch/pkg/paths"
)

// EnvPrefix marks environment variables read as configuration
const EnvPrefix = "SYMFETCH_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// fsProvider reads a config file through an afero.Fs
type fsProvider struct {
	fs   afero.Fs
	path string
}

func (p *fsProvider) ReadBytes() ([]byte, error) { return afero.ReadFile(p.fs, p.path) }
func (p *fsProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// fileProvider uses koanf's file provider on the OS file system
func fileProvider(fs afero.Fs, path string) koanf.Provider {
	if _, ok := fs.(*afero.OsFs); ok {
		return file.Provider(path)
	}
	return &fsProvider{fs: fs, path: path}
}

// LoadOptions controls where Load reads from
type LoadOptions struct {
	// Path is an explicit config file. Empty selects the default location.
	Path string
	// Resolver expands paths; nil uses paths.NewResolver()
	Resolver *paths.Resolver
	// Fs is where the config file is looked up and read; nil uses the OS
	Fs afero.Fs
	// SkipEnv ignores SYMFETCH_* variables
	SkipEnv bool
	// Overrides are applied last, keyed by dotted path ("render.backends")
	Overrides map[string]interface{}
}

// Load reads, validates and resolves the configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	resolver := opts.Resolver
	if resolver == nil {
		resolver = paths.NewResolver()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	path := opts.Path
	if path == "" {
		path = resolver.DefaultConfigPath(opts.Fs)
	}
	path, err := resolver.Resolve(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to resolve config path")
	}
	logger.Debug().Str("path", path).Msg("Loading configuration")

	k, err := load(path, opts)
	if err != nil {
		return nil, err
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode %s", path).
			WithDetail("path", path)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.resolvePaths(resolver.WithBase(filepath.Dir(path))); err != nil {
		return nil, err
	}

	logger.Debug().Str("source", cfg.RenderSource().String()).Msg("Configuration loaded")
	return cfg, nil
}

// Parse decodes and validates TOML content without touching the file system
func Parse(data []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config")
	}
	cfg, err := unmarshal(k)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(path string, opts LoadOptions) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. User config file
	info, err := opts.Fs.Stat(path)
	switch {
	case os.IsNotExist(err):
		return nil, errors.Newf(errors.ErrConfigLoad, "config file not found: %s", path).
			WithDetail("path", path)
	case err != nil:
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	case info.IsDir():
		return nil, errors.Newf(errors.ErrConfigLoad, "config path is a directory: %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(fileProvider(opts.Fs, path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	// 4. Command line
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return k, nil
}

// envKey maps SYMFETCH_IMAGE__WIDTH to image.width
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolvePaths(r *paths.Resolver) error {
	resolve := func(key, p string) (string, error) {
		abs, err := r.Resolve(p)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigInvalid, "invalid %s %q", key, p)
		}
		return abs, nil
	}

	var err error
	if c.Ascii != nil {
		if c.Ascii.Path, err = resolve("ascii.path", c.Ascii.Path); err != nil {
			return err
		}
	}
	if c.Image != nil {
		if c.Image.Path, err = resolve("image.path", c.Image.Path); err != nil {
			return err
		}
	}
	if c.Info.Theme != "" {
		if c.Info.Theme, err = resolve("info.theme", c.Info.Theme); err != nil {
			return err
		}
	}
	return nil
}
