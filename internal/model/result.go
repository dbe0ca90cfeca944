package model

// ModuleResult holds the outcome of linting one module.
//
// Errors only carries pipeline failures such as an unreadable file or a
// syntax error, always at line 0. Rule findings live on the badges.
type ModuleResult struct {
	Path   Path
	Hash   string
	Badges []Badge
	Errors []Error
	Cached bool
}

// Failed reports whether the module could not be analysed.
func (r ModuleResult) Failed() bool {
	return len(r.Errors) > 0
}

// ListEntry summarises a module for the list command.
type ListEntry struct {
	Path    Path
	Classes int
	Failed  bool
}
