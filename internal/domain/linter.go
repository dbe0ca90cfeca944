// Package domain contains the linting workflow and its building blocks.
package domain

import (
	"github.com/mouse-blink/mdalint/internal/domain/rules"
	m "github.com/mouse-blink/mdalint/internal/model"
	"github.com/mouse-blink/mdalint/internal/pyast"
)

// Linter runs rule sets over a parsed module.
type Linter interface {
	Lint(mod *pyast.Module) []m.Badge
}

type linter struct {
	rules []rules.Rule
}

// NewLinter creates a Linter. Without rules it uses rules.Default().
func NewLinter(ruleSet ...rules.Rule) Linter {
	if len(ruleSet) == 0 {
		ruleSet = rules.Default()
	}

	return &linter{rules: ruleSet}
}

// Lint returns the badges of every rule, rule by rule, each in declaration
// order. Badges suppressed by ignore directives are dropped.
func (l *linter) Lint(mod *pyast.Module) []m.Badge {
	idx := buildIgnoreIndex(mod)
	badges := []m.Badge{}

	for _, rule := range l.rules {
		if idx.file.ignores(rule.Name()) {
			continue
		}

		for _, badge := range rule.Evaluate(mod) {
			if idx.ignores(badge) {
				continue
			}

			badges = append(badges, badge)
		}
	}

	return badges
}
