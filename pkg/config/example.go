package config

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/symmetrysyndicate/symfetch/pkg/render"
	"github.com/symmetrysyndicate/symfetch/pkg/sysinfo"
)

const exampleHeader = `# symfetch configuration
#
# Define exactly one graphic source. For ASCII art kept in a text file use
#
#   [ascii]
#   path = "~/.config/symfetch/logo.txt"
#
# instead of the [image] table below.

`

type exampleFile struct {
	Image  exampleImage  `toml:"image"`
	Render exampleRender `toml:"render"`
	Info   exampleInfo   `toml:"info"`
}

type exampleImage struct {
	Path    string `toml:"path" comment:"Image file. ~/.config/ expands to $XDG_CONFIG_HOME, relative paths\nare relative to this file."`
	Width   int64  `toml:"width" comment:"Width in terminal cells. Leave out height to keep the aspect ratio."`
	Colored bool   `toml:"colored" comment:"Colour the characters of the ascii backend."`
	AsASCII bool   `toml:"as_ascii" comment:"Set to false to skip the ascii backend and draw with truecolor blocks."`
}

type exampleRender struct {
	Backends []string `toml:"backends" comment:"Backends tried in order: ascii, ansi."`
	Charset  string   `toml:"charset" comment:"Character ramp for the ascii backend, darkest first."`
}

type exampleInfo struct {
	Fields []string `toml:"fields" comment:"Lines of the information column, in order."`
}

// ExampleConfig returns a commented, valid configuration file
func ExampleConfig() string {
	body, err := toml.Marshal(exampleFile{
		Image: exampleImage{
			Path:    "~/.config/symfetch/logo.png",
			Width:   40,
			Colored: true,
			AsASCII: true,
		},
		Render: exampleRender{
			Backends: render.DefaultBackendOrder,
			Charset:  render.DefaultCharset,
		},
		Info: exampleInfo{Fields: sysinfo.KnownFields},
	})
	if err != nil {
		panic(err)
	}
	return exampleHeader + string(body)
}
