// Package symfetch implements the symfetch command line.
package symfetch

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/symmetrysyndicate/symfetch/internal/version"
	"github.com/symmetrysyndicate/symfetch/pkg/core"
	"github.com/symmetrysyndicate/symfetch/pkg/logging"
	"github.com/symmetrysyndicate/symfetch/pkg/styles"
	"github.com/symmetrysyndicate/symfetch/pkg/ui"
)

// options collects the global flags
type options struct {
	configPath string
	verbosity  int
	backends   []string
	color      string
}

func (o *options) colorMode() ui.ColorMode {
	mode, err := ui.ParseColorMode(o.color)
	if err != nil {
		return ui.ColorAuto
	}
	return mode
}

// NewRootCmd creates the symfetch command tree
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "symfetch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			mode, err := ui.ParseColorMode(opts.color)
			if err != nil {
				return err
			}
			if mode == ui.ColorNever {
				pterm.DisableStyling()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var backends []string
			if cmd.Flags().Changed("backend") {
				backends = opts.backends
				if backends == nil {
					backends = []string{}
				}
			}
			return core.Run(core.RunOptions{
				ConfigPath: opts.configPath,
				Backends:   backends,
				Color:      opts.colorMode(),
				Stdout:     cmd.OutOrStdout(),
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetVersionTemplate("symfetch version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto", MsgFlagColor)
	rootCmd.Flags().StringSliceVarP(&opts.backends, "backend", "b", nil, MsgFlagBackend)

	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("backend", cobra.FixedCompletions(
		[]string{"ascii", "ansi"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// Execute runs the command line with args and returns the exit status.
// Errors are printed to stderr in the Error style.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		color, _ := rootCmd.PersistentFlags().GetString("color")
		mode, perr := ui.ParseColorMode(color)
		if perr != nil {
			mode = ui.ColorAuto
		}
		reg := styles.Default(ui.NewRenderer(stderr, mode))
		fmt.Fprintln(stderr, reg.Render("Error", fmt.Sprintf(MsgErrPrefix, err)))
		return 1
	}
	return 0
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Detailed())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(symfetch completion bash)

Zsh:
  $ symfetch completion zsh > "${fpath[1]}/_symfetch"

Fish:
  $ symfetch completion fish > ~/.config/fish/completions/symfetch.fish

PowerShell:
  PS> symfetch completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
