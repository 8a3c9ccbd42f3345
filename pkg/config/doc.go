// Package config loads and validates the symfetch configuration.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, by default $XDG_CONFIG_HOME/symfetch.toml
//  3. SYMFETCH_* environment variables, "__" separating nesting levels
//     (SYMFETCH_IMAGE__WIDTH=60 sets image.width)
//  4. overrides from the command line, such as --backend
//
// A valid configuration names exactly one graphic source, [ascii] or
// [image]. Paths are resolved against the directory of the config file.
package config
