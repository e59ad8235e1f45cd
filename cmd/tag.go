package cmd

import (
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag <post> add|remove|list [tags...]",
	Short: "Edit the tags of a post",
	Long: `Adds, removes or lists the tags of the post stored at <post>.

Tags are kept in insertion order without duplicates. Every tag is applied on
its own; failures are reported and the post is saved with the others.`,
	Example: `  blog tag 2024/05/my-post add go cli
  blog tag 2024/05/my-post list`,
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{"add", "remove", "list"},
	RunE:      runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	return runSet(cmd, args, tagAccess)
}
