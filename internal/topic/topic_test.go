package topic

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	content := "This article discusses Golang concurrency patterns and goroutines for distributed systems"

	got := Extract(content)
	want := []string{"concurrency", "distributed-systems", "golang"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtractWholeWords(t *testing.T) {
	// "good" and "trusty" must not match "go" and "rust".
	if got := Extract("A good and trusty companion"); len(got) != 0 {
		t.Errorf("expected no topics, got %v", got)
	}
}

func TestExtractMultiWordTerm(t *testing.T) {
	got := Extract("Notes on machine\nlearning, from a CLI.")
	want := []string{"cli", "machine-learning"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := Extract("  !!  "); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestMissing(t *testing.T) {
	got := Missing([]string{"golang", "rust", "cli"}, []string{"rust"})
	want := []string{"golang", "cli"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
