package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julienpequegnot/blogpost/internal/blogerr"
	"github.com/julienpequegnot/blogpost/internal/post"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var newCmd = &cobra.Command{
	Use:   "new <title...>",
	Short: "Create a new post",
	Long: `Creates {year}/{month}/{slug} below the posts directory with a content.md
holding the title as heading and a metadata.toml holding the title.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	p := post.New(title)
	p.Path = filepath.Join(cfg.PostsDir, p.Path)

	if exists, _ := afero.Exists(fs, filepath.Join(p.Path, post.MetadataFile)); exists {
		return blogerr.New(blogerr.DuplicateEntry, "a post already exists at %s", p.Path)
	}

	if err := newRepository().Save(p); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	log.Info("created post", zap.String("path", p.Path))

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", p.Path)
	return nil
}
