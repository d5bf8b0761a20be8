package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stagehand-dev/stagehand/pkg/style"
	"github.com/stagehand-dev/stagehand/pkg/topics"
)

//go:embed docs/topics
var topicsFS embed.FS

var topicsCmd = &cobra.Command{
	Use:   "topics [topic]",
	Short: "Browse documentation topics",
	Long: `Browse the built-in documentation. Without arguments, lists the
available topics; with a topic name, renders that topic.`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		store, err := newTopicStore()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return store.List(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newTopicStore()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			names := store.List()
			if len(names) == 0 {
				fmt.Println("No documentation topics available.")
				return nil
			}
			fmt.Println("Available topics:")
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("\nUse 'stagehand topics <name>' to read a topic.")
			return nil
		}

		topic, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown topic %q, run 'stagehand topics' for the list", args[0])
		}
		fmt.Print(store.Render(topic))
		return nil
	},
}

func newTopicStore() (*topics.Store, error) {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if style.Styled(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}
	return topics.NewStore(topicsFS, "docs/topics", renderer)
}
