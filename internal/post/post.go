// Package post models a blog post stored as a directory holding a Markdown
// body and a TOML metadata file.
package post

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/julienpequegnot/blogpost/internal/slug"
)

const (
	ContentFile  = "content.md"
	MetadataFile = "metadata.toml"
	ImagesDir    = "images"
	DistDir      = "dist"
	IndexFile    = "index.html"
)

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

// Post is a unit of content addressed by its directory.
type Post struct {
	Content  string
	Path     string
	Metadata Metadata
}

type Metadata struct {
	Post      PostInfo  `toml:"post"`
	OpenGraph OpenGraph `toml:"opengraph"`
}

type PostInfo struct {
	Title         string     `toml:"title"`
	Author        string     `toml:"author"`
	PublishedDate *time.Time `toml:"published_date,omitempty"`
	Update        *time.Time `toml:"update,omitempty"`
	Tags          []string   `toml:"tags"`
}

type OpenGraph struct {
	Short          string   `toml:"short"`
	OpenGraphImage string   `toml:"opengraphimage"`
	Description    string   `toml:"description"`
	Keywords       []string `toml:"keywords"`
}

// New creates an in-memory post dated from the current UTC month. Nothing is
// written until the post is saved.
func New(title string) *Post {
	today := now()
	return &Post{
		Content: "# " + title,
		Path: filepath.Join(
			fmt.Sprintf("%04d", today.Year()),
			fmt.Sprintf("%02d", int(today.Month())),
			slug.Make(title),
		),
		Metadata: Metadata{Post: PostInfo{Title: title}},
	}
}

// ImagesPath is the asset directory copied into the build output.
func (p *Post) ImagesPath() string {
	return filepath.Join(p.Path, ImagesDir)
}

// DistPath is the build output directory.
func (p *Post) DistPath() string {
	return filepath.Join(p.Path, DistDir)
}
