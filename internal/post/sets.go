package post

import (
	"fmt"
	"io"
	"slices"

	"github.com/julienpequegnot/blogpost/internal/blogerr"
)

// orderedSet is an insertion ordered list of unique strings. noun is used in
// messages ("tag", "keyword").
type orderedSet struct {
	values *[]string
	noun   string
}

func (s orderedSet) add(value string) error {
	if slices.Contains(*s.values, value) {
		return blogerr.New(blogerr.DuplicateEntry, "%s `%s` is already attached to this blog post", s.noun, value)
	}
	*s.values = append(*s.values, value)
	return nil
}

func (s orderedSet) remove(value string) error {
	i := slices.Index(*s.values, value)
	if i < 0 {
		return blogerr.New(blogerr.MissingEntry, "%s `%s` was not found in the post's %ss", s.noun, value, s.noun)
	}
	*s.values = slices.Delete(*s.values, i, i+1)
	return nil
}

func (s orderedSet) list(w io.Writer) {
	if len(*s.values) == 0 {
		fmt.Fprintf(w, "This post has no %ss\n", s.noun)
		return
	}
	for _, v := range *s.values {
		fmt.Fprintf(w, "* %s\n", v)
	}
}

func (p *PostInfo) tags() orderedSet {
	return orderedSet{values: &p.Tags, noun: "tag"}
}

// AddTag appends tag unless it is already attached.
func (p *PostInfo) AddTag(tag string) error { return p.tags().add(tag) }

// RemoveTag removes an attached tag, keeping the order of the others.
func (p *PostInfo) RemoveTag(tag string) error { return p.tags().remove(tag) }

// ListTags writes one bulleted line per tag.
func (p *PostInfo) ListTags(w io.Writer) { p.tags().list(w) }

func (o *OpenGraph) keywords() orderedSet {
	return orderedSet{values: &o.Keywords, noun: "keyword"}
}

// AddKeyword appends keyword unless it is already attached.
func (o *OpenGraph) AddKeyword(keyword string) error { return o.keywords().add(keyword) }

// RemoveKeyword removes an attached keyword, keeping the order of the others.
func (o *OpenGraph) RemoveKeyword(keyword string) error { return o.keywords().remove(keyword) }

// ListKeywords writes one bulleted line per keyword.
func (o *OpenGraph) ListKeywords(w io.Writer) { o.keywords().list(w) }
