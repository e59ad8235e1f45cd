package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "List posts",
	Long:  `List the posts found below root (default: the configured posts directory), newest first.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var listTop int

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listTop, "top", "n", 0, "Number of posts to show (0 for all)")
}

func runList(cmd *cobra.Command, args []string) error {
	root := cfg.PostsDir
	if len(args) == 1 {
		root = args[0]
	}

	posts, err := newRepository().Walk(root)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(posts) == 0 {
		fmt.Fprintln(out, "No posts found. Run 'blog new <title>' to create one.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf(" %-10s  %-40s  %s", "DATE", "PATH", "TITLE")))
	fmt.Fprintln(out, strings.Repeat("─", 100))

	for i, p := range posts {
		if listTop > 0 && i >= listTop {
			break
		}

		date := "draft"
		if d := p.Metadata.Post.PublishedDate; d != nil {
			date = d.Format("2006-01-02")
		}

		path := p.Path
		if len(path) > 40 {
			path = "..." + path[len(path)-37:]
		}

		title := p.Metadata.Post.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}

		line := fmt.Sprintf(" %s  %s  %s",
			dateStyle.Render(fmt.Sprintf("%-10s", date)),
			pathStyle.Render(fmt.Sprintf("%-40s", path)),
			title,
		)
		if tags := p.Metadata.Post.Tags; len(tags) > 0 {
			line += "  " + tagStyle.Render("#"+strings.Join(tags, " #"))
		}
		fmt.Fprintln(out, line)
	}

	return nil
}
