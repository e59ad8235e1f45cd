package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/julienpequegnot/blogpost/internal/header"
	"github.com/julienpequegnot/blogpost/internal/pexels"
	"github.com/julienpequegnot/blogpost/internal/post"
	"github.com/spf13/cobra"
)

var headerCmd = &cobra.Command{
	Use:   "header <post> fetch [amount]|list|choose <index>",
	Short: "Fetch, list and choose header image candidates",
	Long: `Manages the header image of the post stored at <post>.

  fetch [amount]   search Pexels with the post keywords and download candidates
  list             list the downloaded candidates
  choose <index>   copy a candidate to images/header/header.jpg`,
	Example: `  blog header 2024/05/my-post fetch 5
  blog header 2024/05/my-post choose 2`,
	Args:      cobra.RangeArgs(2, 3),
	ValidArgs: []string{"fetch", "list", "choose"},
	RunE:      runHeader,
}

// newSource builds the image source used by fetch; tests replace it.
var newSource = func() header.Source {
	return pexels.NewClient(pexels.Options{
		APIKey:    cfg.Pexels.APIKey,
		BaseURL:   cfg.Pexels.BaseURL,
		UserAgent: cfg.Pexels.UserAgent,
		Timeout:   cfg.Pexels.Timeout(),
	})
}

func init() {
	rootCmd.AddCommand(headerCmd)
}

func runHeader(cmd *cobra.Command, args []string) error {
	action, rest := args[1], args[2:]

	repo, p, err := loadPost(args[0])
	if err != nil {
		return err
	}

	switch action {
	case "fetch":
		amount := cfg.Pexels.DefaultAmount
		if len(rest) == 1 {
			if amount, err = parsePositive(rest[0], "amount"); err != nil {
				return err
			}
		}
		return runHeaderFetch(cmd, p, amount)
	case "list":
		if len(rest) > 0 {
			return fmt.Errorf("list takes no argument")
		}
		return header.NewManager(fs, p.Path, nil, log).List(cmd.OutOrStdout())
	case "choose":
		if len(rest) != 1 {
			return fmt.Errorf("choose needs the index of a candidate")
		}
		index, err := parsePositive(rest[0], "index")
		if err != nil {
			return err
		}
		return runHeaderChoose(cmd, repo, p, index)
	default:
		return fmt.Errorf("unknown action %q (expected fetch, list or choose)", action)
	}
}

func runHeaderFetch(cmd *cobra.Command, p *post.Post, amount int) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Pexels.Timeout())
	defer cancel()

	m := header.NewManager(fs, p.Path, newSource(), log)
	images, err := m.Fetch(ctx, p.Metadata.OpenGraph.Keywords, amount)
	if err != nil {
		return fmt.Errorf("failed to fetch header candidates: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, image := range images {
		fmt.Fprintln(out, image)
	}
	if len(images) > 0 {
		fmt.Fprintf(out, "\nFetched %d candidates into %s. Run 'blog header %s choose <index>' to pick one.\n", len(images), m.Dir(), p.Path)
	} else {
		fmt.Fprintln(out, "No picture matched the post keywords")
	}
	return nil
}

func runHeaderChoose(cmd *cobra.Command, repo *post.Repository, p *post.Post, index int) error {
	m := header.NewManager(fs, p.Path, nil, log)
	if err := m.Choose(index); err != nil {
		return err
	}

	if p.Metadata.OpenGraph.OpenGraphImage == "" {
		chosen, _ := m.Chosen()
		rel, err := filepath.Rel(p.Path, chosen)
		if err != nil {
			return fmt.Errorf("failed to locate header image: %w", err)
		}
		p.Metadata.OpenGraph.OpenGraphImage = filepath.ToSlash(rel)
		if err := repo.Save(p); err != nil {
			return fmt.Errorf("failed to save post: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Header set to candidate %d\n", index)
	return nil
}

func parsePositive(s, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q: expected a positive integer", name, s)
	}
	return n, nil
}
