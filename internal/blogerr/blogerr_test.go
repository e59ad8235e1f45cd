package blogerr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(DuplicateEntry, "tag `%s` is already attached to this blog post", "go")
	if err.Error() != "tag `go` is already attached to this blog post" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	wrapped := Wrap(IoFailure, fs.ErrPermission, "failed to write content file")
	if wrapped.Error() != "failed to write content file: permission denied" {
		t.Errorf("unexpected message: %s", wrapped.Error())
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("loading post: %w", New(NotFound, "blog post does not exist"))

	if !errors.Is(err, ErrNotFound) {
		t.Error("expected error to match ErrNotFound")
	}
	if errors.Is(err, ErrIO) {
		t.Error("expected error not to match ErrIO")
	}
	if KindOf(err) != NotFound {
		t.Errorf("expected kind NotFound, got %s", KindOf(err))
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(IoFailure, fs.ErrNotExist, "failed to read content file")

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected cause to be reachable through errors.Is")
	}
	if !errors.Is(err, ErrIO) {
		t.Error("expected error to match ErrIO")
	}
}

func TestKindOfForeignError(t *testing.T) {
	if KindOf(errors.New("boom")) != Unknown {
		t.Error("expected Unknown kind for a plain error")
	}
	if ErrRemote.Error() != "remote service failure" {
		t.Errorf("unexpected sentinel message: %s", ErrRemote.Error())
	}
}
