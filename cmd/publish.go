package cmd

import (
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish <path>",
	Short: "Publish a post (not implemented)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	repo, p, err := loadPost(args[0])
	if err != nil {
		return err
	}
	return repo.Publish(p)
}
