package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stagehand-dev/stagehand/internal/version"
	"github.com/stagehand-dev/stagehand/pkg/bootstrap"
	"github.com/stagehand-dev/stagehand/pkg/logging"
	"github.com/stagehand-dev/stagehand/pkg/style"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "stagehand [args...]",
		Short: "Bootstrap an application from its installation directory",
		Long: `stagehand discovers an installation directory, assembles a module search
path from the archives under its lib folders, and hands control to the
application's registered entry point with the original arguments.

Arguments after the command name are passed through to the application
untouched.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(args)
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(completionCmd)

	initTemplateFormatting()
}

// runBootstrap runs the one-shot startup sequence and hands off to the
// application. Both abort outcomes land here, are reported to stderr in
// full, and surface as a non-zero exit.
func runBootstrap(args []string) error {
	ctx := bootstrap.Initialize(bootstrap.Options{})

	if err := ctx.HandOff(args); err != nil {
		renderer := style.NewRenderer(style.Styled(os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		return err
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for stagehand`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stagehand version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(stagehand completion bash)

Zsh:
  $ stagehand completion zsh > "${fpath[1]}/_stagehand"

Fish:
  $ stagehand completion fish | source

PowerShell:
  PS> stagehand completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}
