package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/julienpequegnot/blogpost/internal/post"
	"go.uber.org/multierr"
)

func newRepository() *post.Repository {
	return post.NewRepository(fs, log)
}

// loadPost loads the post every per-post command operates on.
func loadPost(path string) (*post.Repository, *post.Post, error) {
	repo := newRepository()
	p, err := repo.Load(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load post: %w", err)
	}
	return repo, p, nil
}

// applyEach applies fn to every value in order. Each failure is printed to w
// and the combined error is returned once all values were tried.
func applyEach(w io.Writer, values []string, fn func(string) error) error {
	var errs error
	for _, v := range values {
		if err := fn(v); err != nil {
			fmt.Fprintln(w, err)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// batchError reports the failures of applyEach by count only, since each one
// was already printed. The failures stay reachable through errors.Is.
type batchError struct {
	noun string
	err  error
}

func newBatchError(err error, noun string) error {
	if err == nil {
		return nil
	}
	return &batchError{noun: noun, err: err}
}

func (e *batchError) Error() string {
	n := len(multierr.Errors(e.err))
	if n == 1 {
		return fmt.Sprintf("1 %s could not be updated", e.noun)
	}
	return fmt.Sprintf("%d %ss could not be updated", n, e.noun)
}

func (e *batchError) Unwrap() error {
	return e.err
}
