package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/julienpequegnot/blogpost/internal/post"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <path>",
	Short: "Render a post to dist/index.html",
	Long:  `Stamps the update time, renders content.md to dist/index.html and copies images/ to dist/images.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	repo, p, err := loadPost(args[0])
	if err != nil {
		return err
	}

	if err := repo.Build(p); err != nil {
		return fmt.Errorf("failed to build post: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Built %s\n", filepath.Join(p.DistPath(), post.IndexFile))
	return nil
}
