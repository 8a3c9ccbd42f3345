package symfetch

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/symmetrysyndicate/symfetch/pkg/config"
	"github.com/symmetrysyndicate/symfetch/pkg/core"
	"github.com/symmetrysyndicate/symfetch/pkg/ui"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "example",
		Short: MsgConfigExampleShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.ExampleConfig())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: MsgConfigCheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigCheck(cmd, opts)
		},
	})

	var plain bool
	docCmd := &cobra.Command{
		Use:   "doc",
		Short: MsgConfigDocShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if plain || !renderMarkdown(cmd, opts) {
				_, err := fmt.Fprint(out, MsgConfigDoc)
				return err
			}
			rendered, err := glamourRender(MsgConfigDoc)
			if err != nil {
				_, err = fmt.Fprint(out, MsgConfigDoc)
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
	docCmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	cmd.AddCommand(docCmd)

	return cmd
}

func runConfigCheck(cmd *cobra.Command, opts *options) error {
	report, err := core.Check(opts.configPath, nil, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	info := pterm.Info.WithWriter(out)
	warn := pterm.Warning.WithWriter(out)

	info.Printfln(MsgCheckConfigFile, report.ConfigPath)
	if report.SourceFound {
		info.Printfln(MsgCheckSource, report.Source, report.SourcePath)
	} else {
		warn.Printfln(MsgCheckSourceAbsent, report.SourcePath)
	}
	if report.Source == "image" {
		if len(report.Backends) == 0 {
			warn.Println(MsgCheckNoBackends)
		} else {
			info.Printfln(MsgCheckBackends, strings.Join(report.Backends, ", "))
		}
	}
	info.Printfln(MsgCheckFields, strings.Join(report.Fields, ", "))
	if report.Theme != "" {
		info.Printfln(MsgCheckTheme, report.Theme)
	}
	pterm.Success.WithWriter(out).Println(MsgCheckValid)
	return nil
}

// renderMarkdown reports whether the doc should go through glamour
func renderMarkdown(cmd *cobra.Command, opts *options) bool {
	switch opts.colorMode() {
	case ui.ColorNever:
		return false
	case ui.ColorAlways:
		return true
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isTerminal(f)
}

func glamourRender(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
