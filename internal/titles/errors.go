package titles

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryNotFound is returned when the input root does not exist or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrMissingField is returned when a document lacks the required name element.
	ErrMissingField = errors.New("missing required field")

	// ErrMalformedDocument is returned when a document is not well-formed XML.
	ErrMalformedDocument = errors.New("malformed document")
)

// FileError ties an extraction failure to the document that caused it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
