package cmd

import (
	"fmt"
	"strings"

	"github.com/julienpequegnot/blogpost/internal/topic"
	"github.com/spf13/cobra"
)

var keywordCmd = &cobra.Command{
	Use:   "keyword <post> add|remove|list|suggest [keywords...]",
	Short: "Edit the OpenGraph keywords of a post",
	Long: `Adds, removes or lists the keywords of the post stored at <post>.

Keywords drive the header image search. "suggest" prints the topics detected
in the title and content that are not keywords yet; with --apply they are
added to the post.`,
	Example: `  blog keyword 2024/05/my-post add keyboard
  blog keyword 2024/05/my-post suggest --apply`,
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{"add", "remove", "list", "suggest"},
	RunE:      runKeyword,
}

var keywordApply bool

func init() {
	rootCmd.AddCommand(keywordCmd)
	keywordCmd.Flags().BoolVar(&keywordApply, "apply", false, "Add the suggested keywords to the post")
}

func runKeyword(cmd *cobra.Command, args []string) error {
	if args[1] == "suggest" {
		return runKeywordSuggest(cmd, args)
	}
	return runSet(cmd, args, keywordAccess)
}

func runKeywordSuggest(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("suggest takes no keyword")
	}
	out := cmd.OutOrStdout()

	repo, p, err := loadPost(args[0])
	if err != nil {
		return err
	}

	found := topic.Extract(p.Metadata.Post.Title + "\n" + p.Content)
	suggested := topic.Missing(found, p.Metadata.OpenGraph.Keywords)
	if len(suggested) == 0 {
		fmt.Fprintln(out, "No new keyword to suggest")
		return nil
	}

	if !keywordApply {
		fmt.Fprintf(out, "Suggested keywords: %s\n", strings.Join(suggested, ", "))
		return nil
	}

	failed := applyEach(out, suggested, p.Metadata.OpenGraph.AddKeyword)
	if err := repo.Save(p); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	fmt.Fprintf(out, "Added keywords: %s\n", strings.Join(suggested, ", "))
	return newBatchError(failed, "keyword")
}
