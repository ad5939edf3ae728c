package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	b := NewBuilder(testChannel(), nil, false)
	doc, err := b.Make()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	path := filepath.Join(t.TempDir(), "feed.xml")
	if err := Write(doc, path); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written feed: %v", err)
	}
	if !strings.Contains(string(data), "<title>Test Podcast</title>") {
		t.Error("Written feed should contain the channel title")
	}

	// A second write replaces the destination entirely
	if err := Write(doc, path); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to re-read feed: %v", err)
	}
	if string(again) != string(data) {
		t.Error("Rewriting the same document should produce identical output")
	}
}
