// Package rules provides the structural checks that award badges to classes.
package rules

import (
	m "github.com/mouse-blink/mdalint/internal/model"
	"github.com/mouse-blink/mdalint/internal/pyast"
)

// Rule inspects one parsed module and returns a badge per qualifying class,
// in declaration order. A rule never fails.
type Rule interface {
	Name() string
	Evaluate(mod *pyast.Module) []m.Badge
}

// Default returns every rule set known to the linter.
func Default() []Rule {
	return []Rule{AnalysisBase{}}
}
