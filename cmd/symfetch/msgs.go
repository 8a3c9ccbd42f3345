package symfetch

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Show a graphic next to your system information"
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"
	MsgConfigShort        = "Inspect and document the configuration"
	MsgConfigExampleShort = "Print an example configuration file"
	MsgConfigCheckShort   = "Validate the configuration and show what will be drawn"
	MsgConfigDocShort     = "Describe every configuration key"

	// config check output
	MsgCheckConfigFile   = "Config file: %s"
	MsgCheckSource       = "Graphic: %s %s"
	MsgCheckSourceAbsent = "Graphic file does not exist: %s (only system information will be shown)"
	MsgCheckBackends     = "Backends: %s"
	MsgCheckNoBackends   = "No backends configured, images will not be drawn"
	MsgCheckFields       = "Fields: %s"
	MsgCheckTheme        = "Theme: %s"
	MsgCheckValid        = "Configuration is valid"

	// Error messages
	MsgErrPrefix = "Error: %v"

	// Flag descriptions
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/symfetch.toml)"
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagBackend = "Rendering backend to try, in order (repeatable: ascii, ansi)"
	MsgFlagColor   = "Colorize output: auto, always or never"
	MsgFlagPlain   = "Print the raw markdown"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-doc.md
	MsgConfigDoc string
)
