package post

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/julienpequegnot/blogpost/internal/blogerr"
	"github.com/julienpequegnot/blogpost/internal/fsutil"
	"github.com/julienpequegnot/blogpost/internal/render"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Repository loads and persists posts on a filesystem.
type Repository struct {
	fs  afero.Fs
	log *zap.Logger
}

func NewRepository(fs afero.Fs, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{fs: fs, log: log}
}

// Load reads the post stored in the directory at path.
func (r *Repository) Load(path string) (*Post, error) {
	r.log.Debug("loading post", zap.String("path", path))

	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return nil, blogerr.Wrap(blogerr.IoFailure, err, "failed to stat %s", path)
	}
	if !exists {
		r.log.Error("path does not exist", zap.String("path", path))
		return nil, blogerr.New(blogerr.NotFound, "blog post does not exist: %s", path)
	}

	content, err := afero.ReadFile(r.fs, filepath.Join(path, ContentFile))
	if err != nil {
		return nil, blogerr.Wrap(blogerr.IoFailure, err, "failed to read content file")
	}
	if !utf8.Valid(content) {
		return nil, blogerr.New(blogerr.IoFailure, "failed to read content file: stream did not contain valid UTF-8")
	}

	raw, err := afero.ReadFile(r.fs, filepath.Join(path, MetadataFile))
	if err != nil {
		return nil, blogerr.Wrap(blogerr.IoFailure, err, "failed to read metadata file")
	}

	var metadata Metadata
	if err := toml.Unmarshal(raw, &metadata); err != nil {
		return nil, blogerr.Wrap(blogerr.ParseFailure, err, "failed to parse metadata file")
	}

	return &Post{
		Content:  string(content),
		Path:     path,
		Metadata: metadata,
	}, nil
}

// Save writes content.md and metadata.toml, creating the post and images
// directories when needed. Existing files are overwritten.
func (r *Repository) Save(p *Post) error {
	if err := fsutil.EnsureDir(r.fs, p.Path); err != nil {
		return err
	}
	if err := fsutil.EnsureDir(r.fs, p.ImagesPath()); err != nil {
		return err
	}

	if err := afero.WriteFile(r.fs, filepath.Join(p.Path, ContentFile), []byte(p.Content), 0o644); err != nil {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to write content file")
	}

	raw, err := toml.Marshal(p.Metadata)
	if err != nil {
		return blogerr.Wrap(blogerr.ParseFailure, err, "failed to serialize metadata")
	}
	if err := afero.WriteFile(r.fs, filepath.Join(p.Path, MetadataFile), raw, 0o644); err != nil {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to write metadata file")
	}

	r.log.Debug("saved post", zap.String("path", p.Path))
	return nil
}

// Build stamps the update time, saves the post, then renders dist/index.html
// and copies the images directory next to it. The stamp is persisted before
// rendering, so a failed build still records it.
func (r *Repository) Build(p *Post) error {
	stamp := now().Truncate(time.Second)
	p.Metadata.Post.Update = &stamp
	if err := r.Save(p); err != nil {
		return err
	}

	out := p.DistPath()
	r.log.Info("building post", zap.String("output", out))

	if err := fsutil.EnsureDir(r.fs, out); err != nil {
		return err
	}

	html, err := render.HTML(p.Content)
	if err != nil {
		return blogerr.Wrap(blogerr.ParseFailure, err, "failed to render content")
	}
	if err := afero.WriteFile(r.fs, filepath.Join(out, IndexFile), []byte(html), 0o644); err != nil {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to write output file")
	}

	if err := fsutil.CopyDir(r.fs, p.ImagesPath(), filepath.Join(out, ImagesDir)); err != nil {
		return fmt.Errorf("failed to copy images folder: %w", err)
	}
	return nil
}

// Publish is not supported yet: there is no remote to upload to.
func (r *Repository) Publish(p *Post) error {
	return blogerr.New(blogerr.Unimplemented, "not implemented")
}

// Walk loads every post found below root, newest first by path. A missing
// root holds no posts.
func (r *Repository) Walk(root string) ([]*Post, error) {
	var posts []*Post
	err := afero.Walk(r.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root && os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			if path != root && (info.Name() == DistDir || info.Name() == ImagesDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() != MetadataFile {
			return nil
		}

		p, err := r.Load(filepath.Dir(path))
		if err != nil {
			return fmt.Errorf("loading %s: %w", filepath.Dir(path), err)
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(posts, func(a, b *Post) int {
		return cmp.Compare(b.Path, a.Path)
	})
	return posts, nil
}
