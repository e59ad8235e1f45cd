package cmd

import (
	"fmt"
	"io"

	"github.com/julienpequegnot/blogpost/internal/post"
	"github.com/spf13/cobra"
)

// setAccess binds one of the post's ordered value lists to the commands
// editing it.
type setAccess struct {
	noun   string
	add    func(*post.Post, string) error
	remove func(*post.Post, string) error
	list   func(*post.Post, io.Writer)
}

var tagAccess = setAccess{
	noun:   "tag",
	add:    func(p *post.Post, v string) error { return p.Metadata.Post.AddTag(v) },
	remove: func(p *post.Post, v string) error { return p.Metadata.Post.RemoveTag(v) },
	list:   func(p *post.Post, w io.Writer) { p.Metadata.Post.ListTags(w) },
}

var keywordAccess = setAccess{
	noun:   "keyword",
	add:    func(p *post.Post, v string) error { return p.Metadata.OpenGraph.AddKeyword(v) },
	remove: func(p *post.Post, v string) error { return p.Metadata.OpenGraph.RemoveKeyword(v) },
	list:   func(p *post.Post, w io.Writer) { p.Metadata.OpenGraph.ListKeywords(w) },
}

// runSet handles "<post> add|remove|list [values...]".
func runSet(cmd *cobra.Command, args []string, acc setAccess) error {
	action, values := args[1], args[2:]
	out := cmd.OutOrStdout()

	var apply func(*post.Post, string) error
	switch action {
	case "list":
		if len(values) > 0 {
			return fmt.Errorf("list takes no %s", acc.noun)
		}
		_, p, err := loadPost(args[0])
		if err != nil {
			return err
		}
		acc.list(p, out)
		return nil
	case "add":
		apply = acc.add
	case "remove":
		apply = acc.remove
	default:
		return fmt.Errorf("unknown action %q (expected add, remove or list)", action)
	}

	if len(values) == 0 {
		return fmt.Errorf("no %s given", acc.noun)
	}

	repo, p, err := loadPost(args[0])
	if err != nil {
		return err
	}

	failed := applyEach(out, values, func(v string) error { return apply(p, v) })

	if err := repo.Save(p); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return newBatchError(failed, acc.noun)
}
