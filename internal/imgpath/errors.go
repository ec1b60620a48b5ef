package imgpath

import "fmt"

// InvalidPathError is returned when a path does not contain the "images"
// directory segment the folder convention is anchored on.
type InvalidPathError struct {
	path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("path %q has no \"images\" directory segment", e.path)
}

func NewInvalidPath(path string) error {
	return &InvalidPathError{path: path}
}
