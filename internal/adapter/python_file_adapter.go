package adapter

import (
	m "github.com/mouse-blink/mdalint/internal/model"
	"github.com/mouse-blink/mdalint/internal/pyast"
)

// PythonFileAdapter turns Python source into the structural tree the rules
// inspect.
type PythonFileAdapter interface {
	// Parse builds the tree for the provided path/source pair.
	Parse(path m.Path, src []byte) (*pyast.Module, error)
}

// LocalPythonFileAdapter provides a PythonFileAdapter backed by pyast.
type LocalPythonFileAdapter struct{}

// NewLocalPythonFileAdapter constructs a LocalPythonFileAdapter.
func NewLocalPythonFileAdapter() *LocalPythonFileAdapter {
	return &LocalPythonFileAdapter{}
}

// Parse builds the module tree for the provided path/source pair.
func (a *LocalPythonFileAdapter) Parse(path m.Path, src []byte) (*pyast.Module, error) {
	return pyast.Parse(string(path), src)
}
