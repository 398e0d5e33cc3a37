package storage

import (
	"context"
	"os"
	"testing"
)

func TestWriteAndResolve(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	key, err := store.Write(context.Background(), "job-123.wav", []byte("RIFF"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "job-123.wav" {
		t.Fatalf("key = %q, want job-123.wav", key)
	}

	path, err := store.Resolve("job-123.wav")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "RIFF" {
		t.Fatalf("content = %q, want RIFF", data)
	}
}

func TestResolveMissingFile(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Resolve("nope.mp4"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCleanKeyRejectsTraversal(t *testing.T) {
	for _, key := range []string{"", "../etc/passwd", "a/../../b", "."} {
		if _, err := CleanKey(key); err == nil {
			t.Fatalf("CleanKey(%q) should fail", key)
		}
	}
	cleaned, err := CleanKey("/output/flux_00001_.png")
	if err != nil {
		t.Fatalf("CleanKey: %v", err)
	}
	if cleaned != "output/flux_00001_.png" {
		t.Fatalf("cleaned = %q", cleaned)
	}
}
