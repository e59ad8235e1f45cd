// Package fsutil holds the filesystem helpers shared by posts and headers.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/julienpequegnot/blogpost/internal/blogerr"
	"github.com/spf13/afero"
)

// EnsureDir creates path and any missing parents. It is a no-op when path is
// already a directory.
func EnsureDir(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return blogerr.New(blogerr.IoFailure, "failed to create directory %s: not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to create directory %s", path)
	}

	if err := fs.MkdirAll(path, 0o755); err != nil {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to create directory %s", path)
	}
	return nil
}

// CopyFile copies src to dst byte for byte, replacing dst.
func CopyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to open %s", src)
	}
	defer in.Close()

	out, err := fs.Create(dst)
	if err != nil {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to close %s", dst)
	}
	return nil
}

// CopyDir recursively copies the tree rooted at src into dst. It stops at the
// first error and leaves whatever was already copied in place.
func CopyDir(fs afero.Fs, src, dst string) error {
	if err := fs.MkdirAll(dst, 0o755); err != nil {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to create directory %s", dst)
	}

	entries, err := afero.ReadDir(fs, src)
	if err != nil {
		return blogerr.Wrap(blogerr.IoFailure, err, "failed to read directory %s", src)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(fs, from, to); err != nil {
				return err
			}
			continue
		}
		if err := CopyFile(fs, from, to); err != nil {
			return fmt.Errorf("copying %s: %w", entry.Name(), err)
		}
	}
	return nil
}
