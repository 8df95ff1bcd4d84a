package scraper

import (
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
)

// LoadFile opens a saved HTML page and parses it into a document tree.
// A missing or unreadable file is returned as an error; callers treat the
// absence of a document as fatal for that document's extraction.
func LoadFile(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}
