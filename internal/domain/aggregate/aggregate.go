// Package aggregate combines badges from many modules for reporting.
package aggregate

import (
	m "github.com/mouse-blink/mdalint/internal/model"
)

// Group holds the badges of one kind in their original relative order.
type Group struct {
	Kind   string
	Badges []m.Badge
}

// Summary counts the outcome of a lint run.
type Summary struct {
	Modules       int
	FailedModules int
	Badges        int
	Acquired      int
	Possible      int
	Warnings      int
	Errors        int
}

// Badges concatenates the badges of every module, module by module.
func Badges(results []m.ModuleResult) []m.Badge {
	var badges []m.Badge

	for _, result := range results {
		badges = append(badges, result.Badges...)
	}

	return badges
}

// GroupByKind groups badges by kind. Groups appear in the order their kind
// is first seen.
func GroupByKind(badges []m.Badge) []Group {
	var groups []Group

	index := make(map[string]int)

	for _, badge := range badges {
		i, ok := index[badge.Kind()]
		if !ok {
			i = len(groups)
			index[badge.Kind()] = i
			groups = append(groups, Group{Kind: badge.Kind()})
		}

		groups[i].Badges = append(groups[i].Badges, badge)
	}

	return groups
}

// Partition splits badges into acquired and possible ones, keeping their
// relative order in each half.
func Partition(badges []m.Badge) (acquired, possible []m.Badge) {
	for _, badge := range badges {
		if badge.Acquired() {
			acquired = append(acquired, badge)
		} else {
			possible = append(possible, badge)
		}
	}

	return acquired, possible
}

// Summarize counts modules, badges and diagnostics. Module-level errors are
// included in Errors.
func Summarize(results []m.ModuleResult) Summary {
	var s Summary

	for _, result := range results {
		s.Modules++

		if result.Failed() {
			s.FailedModules++
			s.Errors += len(result.Errors)
		}

		for _, badge := range result.Badges {
			s.Badges++

			if badge.Acquired() {
				s.Acquired++
			} else {
				s.Possible++
			}

			s.Warnings += len(badge.Warnings())
			s.Errors += len(badge.Errors())
		}
	}

	return s
}
