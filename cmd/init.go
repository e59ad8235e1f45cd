package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/blogpost/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize blog configuration",
	Long:  `Creates the ~/.blog directory (or $BLOG_HOME) with a default config.yaml.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := config.Path()

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(out, "Created config at %s\n", path)

	fmt.Fprintln(out, "\nBlog initialized! Next steps:")
	fmt.Fprintf(out, "  export %s=...         Pexels key for header images\n", config.EnvAPIKey)
	fmt.Fprintln(out, "  blog new <title>               Create a new post")
	return nil
}
