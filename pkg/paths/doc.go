// Package paths resolves user-supplied paths for symfetch.
//
// All path rewriting happens here so the rendering core only ever sees
// absolute paths. The rules, applied in order:
//
//   - "~/.config/<rest>" maps to $XDG_CONFIG_HOME/<rest>, or to
//     $HOME/.config/<rest> when that is unset (macOS included)
//   - "~" and "~/<rest>" map to the user's home directory
//   - relative paths are joined to the resolver's base directory
//     (the directory holding the config file), or the working directory
//
// # Usage
//
//	r := paths.NewResolver().WithBase(filepath.Dir(configPath))
//	abs, err := r.Resolve("~/.config/symfetch/logo.txt")
package paths
