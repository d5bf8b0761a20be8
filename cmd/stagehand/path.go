package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stagehand-dev/stagehand/pkg/bootstrap"
	"github.com/stagehand-dev/stagehand/pkg/export"
	"github.com/stagehand-dev/stagehand/pkg/style"
)

var pathFormat string

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the assembled module search path",
	Long: `Run discovery and assembly without handing off to the application,
then print the detected installation directory, the archives found, and
any assembly failures.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := bootstrap.Initialize(bootstrap.Options{})

		switch pathFormat {
		case "text":
			renderer := style.NewRenderer(style.Styled(os.Stdout))
			fmt.Print(renderer.RenderAssembly(ctx.InstallDir(), ctx.Assembly()))
			return nil
		case "yaml":
			out, err := export.NewSnapshot(ctx.InstallDir(), ctx.Assembly()).YAML()
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		case "xml":
			out, err := export.NewSnapshot(ctx.InstallDir(), ctx.Assembly()).ClasspathXML()
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		default:
			return fmt.Errorf("unknown format %q (want text, yaml or xml)", pathFormat)
		}
	},
}

func init() {
	pathCmd.Flags().StringVar(&pathFormat, "format", "text", "Output format: text, yaml or xml")
	_ = pathCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "yaml", "xml"}, cobra.ShellCompDirectiveNoFileComp
	})
}
