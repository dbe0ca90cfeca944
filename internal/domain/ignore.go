package domain

import (
	"strings"

	m "github.com/mouse-blink/mdalint/internal/model"
	"github.com/mouse-blink/mdalint/internal/pyast"
)

const (
	directivePrefix = "mdalint:"
	ignoreClass     = "ignore"
	ignoreFile      = "ignore-file"
)

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(kind string) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(kind)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads "mdalint: ignore[-file] [Kind, ...]" from the
// text of a comment. The second result tells whether the directive targets
// the whole file.
func parseIgnoreDirective(comment string) (rule ignoreRule, file bool, ok bool) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "#"))
	if !strings.HasPrefix(s, directivePrefix) {
		return ignoreRule{}, false, false
	}

	s = strings.TrimSpace(strings.TrimPrefix(s, directivePrefix))

	var rest string

	switch {
	case s == ignoreFile || strings.HasPrefix(s, ignoreFile+" "):
		file = true
		rest = strings.TrimPrefix(s, ignoreFile)
	case s == ignoreClass || strings.HasPrefix(s, ignoreClass+" "):
		rest = strings.TrimPrefix(s, ignoreClass)
	default:
		return ignoreRule{}, false, false
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return ignoreRule{all: true}, file, true
	}

	parts := strings.Split(rest, ",")
	rule = ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, file, true
}

type ignoreIndex struct {
	file  ignoreRule
	lines map[uint32]ignoreRule
	// decorated maps a class line to the line of its first decorator.
	decorated map[uint32]uint32
}

// buildIgnoreIndex collects directives. File directives only count before the
// first statement; class directives apply to the line they sit on.
func buildIgnoreIndex(mod *pyast.Module) ignoreIndex {
	idx := ignoreIndex{lines: make(map[uint32]ignoreRule)}

	firstStatement := ^uint32(0)
	if len(mod.Body) > 0 {
		firstStatement = mod.Body[0].Line()
	}

	for line, text := range mod.Comments {
		rule, file, ok := parseIgnoreDirective(text)
		if !ok {
			continue
		}

		if file {
			if line < firstStatement {
				mergeIgnoreRule(&idx.file, rule)
			}

			continue
		}

		merged := idx.lines[line]
		mergeIgnoreRule(&merged, rule)
		idx.lines[line] = merged
	}

	return idx
}

// ignores reports whether a directive on the badge's class line, or on the
// line right above it, suppresses the badge. For decorated classes the first
// decorator line and the line above it count as well.
func (idx ignoreIndex) ignores(badge m.Badge) bool {
	if idx.file.ignores(badge.Kind()) {
		return true
	}

	line := badge.Location().Line

	if idx.ignoresAround(line, badge.Kind()) {
		return true
	}

	if header, ok := idx.decorated[line]; ok {
		return idx.ignoresAround(header, badge.Kind())
	}

	return false
}

func (idx ignoreIndex) ignoresAround(line uint32, kind string) bool {
	if rule, ok := idx.lines[line]; ok && rule.ignores(kind) {
		return true
	}

	if line > 1 {
		if rule, ok := idx.lines[line-1]; ok && rule.ignores(kind) {
			return true
		}
	}

	return false
}
