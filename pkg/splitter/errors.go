package splitter

import "fmt"

// SourceNotFoundError is returned when the PC image path does not resolve
// to an existing file. It aborts the run before anything is written.
type SourceNotFoundError struct {
	path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("image not found: %s", e.path)
}

func NewSourceNotFound(path string) error {
	return &SourceNotFoundError{path: path}
}
