package feed

import (
	"fmt"
	"os"
)

// Write serializes the document and replaces the destination file with it.
func Write(doc *Document, path string) error {
	if err := os.WriteFile(path, doc.XML(), 0644); err != nil {
		return fmt.Errorf("failed to write feed: %w", err)
	}
	return nil
}
