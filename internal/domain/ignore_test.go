package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/mdalint/internal/model"
	"github.com/mouse-blink/mdalint/internal/pyast"
)

func TestParseIgnoreDirective_All(t *testing.T) {
	r, file, ok := parseIgnoreDirective("# mdalint: ignore")
	require.True(t, ok, "expected directive to be parsed")
	assert.False(t, file)
	assert.True(t, r.all)
	assert.Nil(t, r.names)
}

func TestParseIgnoreDirective_Names(t *testing.T) {
	r, file, ok := parseIgnoreDirective("#mdalint:ignore AnalysisBase, Other ")
	require.True(t, ok, "expected directive to be parsed")
	assert.False(t, file)
	assert.False(t, r.all)
	assert.Len(t, r.names, 2)
	assert.True(t, r.ignores("analysisbase"))
	assert.True(t, r.ignores("OTHER"))
	assert.False(t, r.ignores("Third"))
}

func TestParseIgnoreDirective_File(t *testing.T) {
	r, file, ok := parseIgnoreDirective("# mdalint: ignore-file")
	require.True(t, ok)
	assert.True(t, file)
	assert.True(t, r.all)

	r, file, ok = parseIgnoreDirective("# mdalint: ignore-file AnalysisBase")
	require.True(t, ok)
	assert.True(t, file)
	assert.True(t, r.ignores(m.KindAnalysisBase))
}

func TestParseIgnoreDirective_NotADirective(t *testing.T) {
	for _, comment := range []string{
		"# regular comment",
		"# mdalint: check",
		"# mdalint: ignored",
		"# noqa: mdalint: ignore",
		"",
	} {
		_, _, ok := parseIgnoreDirective(comment)
		assert.Falsef(t, ok, "parseIgnoreDirective(%q) should not match", comment)
	}
}

func TestParseIgnoreDirective_EmptyNamesMeansAll(t *testing.T) {
	r, _, ok := parseIgnoreDirective("# mdalint: ignore , ,")
	require.True(t, ok)
	assert.True(t, r.all)
}

func TestMergeIgnoreRule(t *testing.T) {
	dst := ignoreRule{}
	mergeIgnoreRule(&dst, ignoreRule{names: map[string]struct{}{"a": {}}})
	mergeIgnoreRule(&dst, ignoreRule{names: map[string]struct{}{"b": {}}})
	assert.True(t, dst.ignores("A"))
	assert.True(t, dst.ignores("b"))

	mergeIgnoreRule(&dst, ignoreRule{all: true})
	assert.True(t, dst.all)
	assert.Nil(t, dst.names)

	mergeIgnoreRule(&dst, ignoreRule{names: map[string]struct{}{"c": {}}})
	assert.True(t, dst.all, "all stays all")
}

func mustParse(t *testing.T, src string) *pyast.Module {
	t.Helper()

	mod, err := pyast.Parse("pkg/mod.py", []byte(src))
	require.NoError(t, err)

	return mod
}

func badgeAt(line uint32) m.Badge {
	return m.NewAnalysisBaseBadge(m.Location{Path: "pkg/mod.py", Line: line}, "C")
}

func TestBuildIgnoreIndex(t *testing.T) {
	src := `# mdalint: ignore-file Other
import os

# mdalint: ignore
class A(AnalysisBase):
    pass

class B(AnalysisBase):  # mdalint: ignore AnalysisBase
    pass

class C(AnalysisBase):  # mdalint: ignore Other
    pass

# mdalint: ignore-file

class D(AnalysisBase):
    pass
`
	idx := buildIgnoreIndex(mustParse(t, src))

	assert.True(t, idx.file.ignores("other"))
	assert.False(t, idx.file.ignores(m.KindAnalysisBase), "ignore-file after the first statement is ignored")

	assert.True(t, idx.ignores(badgeAt(5)), "directive on the line above")
	assert.True(t, idx.ignores(badgeAt(8)), "directive on the class line")
	assert.False(t, idx.ignores(badgeAt(11)), "directive for another kind")
	assert.False(t, idx.ignores(badgeAt(16)), "blank line between directive and class")
}

func TestBuildIgnoreIndex_DecoratedClasses(t *testing.T) {
	src := `# mdalint: ignore
@register
@cached(size=2)
class A(AnalysisBase):
    pass


@register  # mdalint: ignore AnalysisBase
class B(AnalysisBase):
    pass


# mdalint: ignore Other
@register
class C(AnalysisBase):
    pass


@register
class D(AnalysisBase):
    pass
`
	idx := buildIgnoreIndex(mustParse(t, src))

	assert.True(t, idx.ignores(badgeAt(4)), "directive above the first decorator")
	assert.True(t, idx.ignores(badgeAt(9)), "directive on the decorator line")
	assert.False(t, idx.ignores(badgeAt(15)), "directive for another kind")
	assert.False(t, idx.ignores(badgeAt(20)), "no directive")
}
