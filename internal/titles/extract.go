package titles

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Element paths read from each document, relative to the root element.
const (
	NamePath     = "./name/str"
	RareTypePath = "./rareType"
)

// Extract parses the document at path and returns its entry. Every failure
// is returned as a *FileError carrying path.
func Extract(path string) (Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	entry, err := ExtractFrom(f)
	if err != nil {
		return Entry{}, &FileError{Path: path, Err: err}
	}
	return entry, nil
}

// ExtractFrom parses one document from r. The name element is required; a
// missing rareType element yields an empty RareType.
func ExtractFrom(r io.Reader) (Entry, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(r); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	root := doc.Root()
	if root == nil {
		return Entry{}, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}

	name := root.FindElement(NamePath)
	if name == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrMissingField, NamePath)
	}

	entry := Entry{Name: name.Text()}
	if rare := root.FindElement(RareTypePath); rare != nil {
		entry.RareType = rare.Text()
	}
	return entry, nil
}
