// Package model defines the data structures shared by the linter pipeline.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Location points at a line in a source file.
// Line 0 means the diagnostic is not tied to a specific line.
type Location struct {
	Path Path
	Line uint32
}

// String renders the location as path:line.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}

// Source is a Python module selected for linting.
type Source struct {
	Origin Path
	Hash   string
}
