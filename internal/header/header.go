// Package header manages the header image of a post: fetching candidate
// pictures from an image search service, listing them and choosing one.
//
// Layout below the post directory:
//
//	images/header/header.jpg                 chosen header
//	images/header/header.toml                its descriptor
//	images/header/candidates/header_N.jpg    candidate N (1-based)
//	images/header/candidates/header_N.toml   candidate N descriptor
package header

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/docker/go-units"
	"github.com/julienpequegnot/blogpost/internal/blogerr"
	"github.com/julienpequegnot/blogpost/internal/fsutil"
	"github.com/julienpequegnot/blogpost/internal/pexels"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	candidatesDir = "candidates"
	headerImage   = "header.jpg"
	headerMeta    = "header.toml"
)

// Source finds pictures and downloads them. *pexels.Client implements it.
type Source interface {
	Search(ctx context.Context, query string, perPage int) ([]pexels.Picture, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

// Candidate is a fetched picture waiting to be chosen.
type Candidate struct {
	// Index is the running display index, not the file name index.
	Index   int
	Path    string
	Picture pexels.Picture
}

type Manager struct {
	fs     afero.Fs
	dir    string
	source Source
	log    *zap.Logger
}

// NewManager returns a manager for the post stored at postPath. source may be
// nil when only listing or choosing.
func NewManager(fs afero.Fs, postPath string, source Source, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		fs:     fs,
		dir:    filepath.Join(postPath, "images", "header"),
		source: source,
		log:    log,
	}
}

// Dir is the header directory of the post.
func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) candidates() string {
	return filepath.Join(m.dir, candidatesDir)
}

func candidateName(index int, ext string) string {
	return fmt.Sprintf("header_%d.%s", index, ext)
}

// Chosen returns the path of the chosen header image, if any.
func (m *Manager) Chosen() (string, bool) {
	path := filepath.Join(m.dir, headerImage)
	info, err := m.fs.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// Fetch downloads up to amount candidates matching keywords and returns the
// written image paths. A failure on any candidate stops the fetch; the
// candidates written before it are kept.
func (m *Manager) Fetch(ctx context.Context, keywords []string, amount int) ([]string, error) {
	if len(keywords) == 0 {
		return nil, blogerr.New(blogerr.MissingEntry, "unable to fetch image for the blog post; the post has no keyword")
	}
	if m.source == nil {
		return nil, blogerr.New(blogerr.RemoteServiceFailure, "no image source configured")
	}

	query := strings.Join(keywords, ", ")
	m.log.Info("fetching header candidates", zap.String("query", query), zap.Int("amount", amount), zap.String("path", m.dir))

	// The search fails first on a missing API key, before anything is written.
	pictures, err := m.source.Search(ctx, query, amount)
	if err != nil {
		return nil, err
	}

	dir := m.candidates()
	if err := fsutil.EnsureDir(m.fs, dir); err != nil {
		return nil, err
	}

	images := make([]string, 0, len(pictures))
	for i, picture := range pictures {
		index := i + 1

		imageURL, ok := picture.Landscape()
		if !ok {
			return images, blogerr.New(blogerr.RemoteServiceFailure, "unable to retrieve landscape image from pexel picture %d", index)
		}

		m.log.Info(fmt.Sprintf("[%3d/%3d] fetching image", index, len(pictures)), zap.String("url", imageURL))
		data, err := m.source.Download(ctx, imageURL)
		if err != nil {
			return images, err
		}

		imagePath := filepath.Join(dir, candidateName(index, "jpg"))
		if err := afero.WriteFile(m.fs, imagePath, data, 0o644); err != nil {
			return images, blogerr.Wrap(blogerr.IoFailure, err, "failed to write %s", imagePath)
		}

		raw, err := toml.Marshal(picture)
		if err != nil {
			return images, blogerr.Wrap(blogerr.ParseFailure, err, "failed to serialize picture %d", index)
		}
		metaPath := filepath.Join(dir, candidateName(index, "toml"))
		if err := afero.WriteFile(m.fs, metaPath, raw, 0o644); err != nil {
			return images, blogerr.Wrap(blogerr.IoFailure, err, "failed to write %s", metaPath)
		}

		m.log.Debug("saved candidate", zap.String("image", imagePath), zap.String("size", units.HumanSize(float64(len(data)))))
		images = append(images, imagePath)
	}

	return images, nil
}

// Candidates parses every sidecar of the candidates directory in directory
// listing order, numbering them as they are encountered.
func (m *Manager) Candidates() ([]Candidate, error) {
	dir := m.candidates()
	entries, err := afero.ReadDir(m.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, blogerr.New(blogerr.MissingEntry, "no header candidates were fetched for this post")
		}
		return nil, blogerr.Wrap(blogerr.IoFailure, err, "failed to read %s", dir)
	}

	var out []Candidate
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		raw, err := afero.ReadFile(m.fs, path)
		if err != nil {
			return nil, blogerr.Wrap(blogerr.IoFailure, err, "failed to read %s", path)
		}

		var picture pexels.Picture
		if err := toml.Unmarshal(raw, &picture); err != nil {
			return nil, blogerr.Wrap(blogerr.ParseFailure, err, "failed to parse %s", path)
		}

		out = append(out, Candidate{Index: len(out) + 1, Path: path, Picture: picture})
	}
	return out, nil
}

// List writes "N - description" for every candidate.
func (m *Manager) List(w io.Writer) error {
	candidates, err := m.Candidates()
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintln(w, "This post has no header candidates")
		return nil
	}
	for _, c := range candidates {
		fmt.Fprintf(w, "%d - %s\n", c.Index, c.Picture)
	}
	return nil
}

// Choose copies candidate index and its descriptor to header.jpg and
// header.toml, replacing a previous choice. Candidates are left in place.
func (m *Manager) Choose(index int) error {
	dir := m.candidates()
	image := filepath.Join(dir, candidateName(index, "jpg"))
	meta := filepath.Join(dir, candidateName(index, "toml"))

	if !m.isFile(image) {
		return blogerr.New(blogerr.MissingEntry, "no candidate header with the id %d could be found", index)
	}
	if !m.isFile(meta) {
		return blogerr.New(blogerr.MissingEntry, "the metadata file for candidate header %d could not be found", index)
	}

	if _, ok := m.Chosen(); ok {
		m.log.Warn("a header file has already been selected, it will be overwritten")
	}

	if err := fsutil.CopyFile(m.fs, image, filepath.Join(m.dir, headerImage)); err != nil {
		return err
	}
	return fsutil.CopyFile(m.fs, meta, filepath.Join(m.dir, headerMeta))
}

func (m *Manager) isFile(path string) bool {
	info, err := m.fs.Stat(path)
	return err == nil && !info.IsDir()
}
