package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/blogpost/internal/header"
	"github.com/julienpequegnot/blogpost/internal/render"
	"github.com/spf13/cobra"
)

// wordsPerMinute sets the reading time estimate.
const wordsPerMinute = 200

var showCmd = &cobra.Command{
	Use:   "show <post>",
	Short: "Show details of a post",
	Long:  `Display the metadata of a post with its word count, reading time and header state.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	_, p, err := loadPost(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	divider := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("━", 70))

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
		}
	}

	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, titleStyle.Render(p.Metadata.Post.Title))
	fmt.Fprintln(out, divider)

	info := p.Metadata.Post
	field("Path", p.Path)
	field("Author", info.Author)
	if info.PublishedDate != nil {
		field("Published", info.PublishedDate.Format("2006-01-02 15:04"))
	}
	if info.Update != nil {
		field("Built", info.Update.Format("2006-01-02 15:04"))
	}
	field("Tags", strings.Join(info.Tags, ", "))

	og := p.Metadata.OpenGraph
	field("Keywords", strings.Join(og.Keywords, ", "))
	field("Short", og.Short)
	field("Description", og.Description)

	words, err := render.WordCount(p.Content)
	if err != nil {
		return fmt.Errorf("failed to render content: %w", err)
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	field("Length", fmt.Sprintf("%d words, %d min read", words, minutes))

	headerState := "none"
	m := header.NewManager(fs, p.Path, nil, log)
	if chosen, ok := m.Chosen(); ok {
		headerState = chosen
	} else if candidates, err := m.Candidates(); err == nil && len(candidates) > 0 {
		headerState = fmt.Sprintf("%d candidates, none chosen", len(candidates))
	}
	field("Header", headerState)

	return nil
}
