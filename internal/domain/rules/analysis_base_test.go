package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/mdalint/internal/model"
	"github.com/mouse-blink/mdalint/internal/pyast"
)

func analysisClass(name string, line uint32, members ...pyast.Node) *pyast.ClassDef {
	return &pyast.ClassDef{
		Name:   name,
		Lineno: line,
		Bases:  []pyast.BaseRef{{Expr: "AnalysisBase", Name: "AnalysisBase"}},
		Body:   members,
	}
}

func method(name string, line uint32, params ...string) *pyast.FuncDef {
	return &pyast.FuncDef{Name: name, Lineno: line, Params: params}
}

func module(nodes ...pyast.Node) *pyast.Module {
	return &pyast.Module{Path: "pkg/analysis.py", Body: nodes}
}

func titlesOfWarnings(ws []m.Warning) []string {
	titles := make([]string, 0, len(ws))
	for _, w := range ws {
		titles = append(titles, w.Title)
	}

	return titles
}

func titlesOfErrors(es []m.Error) []string {
	titles := make([]string, 0, len(es))
	for _, e := range es {
		titles = append(titles, e.Title)
	}

	return titles
}

func TestAnalysisBase_NonQualifyingClassHasNoBadge(t *testing.T) {
	class := &pyast.ClassDef{
		Name:   "Plain",
		Lineno: 3,
		Bases:  []pyast.BaseRef{{Expr: "object", Name: "object"}},
		Body:   []pyast.Node{method("_single_frame", 4, "self"), method("run", 6, "self", "x")},
	}

	badges := AnalysisBase{}.Evaluate(module(class))
	assert.Empty(t, badges)
}

func TestAnalysisBase_AliasedOrAttributeBaseIsNotMatched(t *testing.T) {
	attr := &pyast.ClassDef{
		Name:  "Attr",
		Bases: []pyast.BaseRef{{Expr: "base.AnalysisBase"}},
		Body:  []pyast.Node{method("_single_frame", 2, "self")},
	}
	alias := &pyast.ClassDef{
		Name:  "Alias",
		Bases: []pyast.BaseRef{{Expr: "AB", Name: "AB"}},
	}

	assert.Empty(t, AnalysisBase{}.Evaluate(module(attr, alias)))
}

func TestAnalysisBase_Rules(t *testing.T) {
	tests := []struct {
		name         string
		members      []pyast.Node
		wantWarnings []string
		wantErrors   []string
	}{
		{
			name:    "single frame only",
			members: []pyast.Node{method("_single_frame", 11, "self")},
		},
		{
			name:       "missing single frame",
			members:    []pyast.Node{method("_prepare", 11, "self")},
			wantErrors: []string{TitleNoSingleFrame},
		},
		{
			name:         "prepare with extra argument",
			members:      []pyast.Node{method("_single_frame", 11, "self"), method("_prepare", 13, "self", "extra")},
			wantWarnings: []string{TitlePrepareArgs},
		},
		{
			name:         "single frame with extra argument",
			members:      []pyast.Node{method("_single_frame", 11, "self", "frame")},
			wantWarnings: []string{TitleSingleFrameArgs},
		},
		{
			name:         "conclude without self",
			members:      []pyast.Node{method("_single_frame", 11, "self"), method("_conclude", 13)},
			wantWarnings: []string{TitleConcludeArgs},
		},
		{
			name: "run with prescribed signature",
			members: []pyast.Node{
				method("_single_frame", 11, "self"),
				method("run", 13, "self", "start", "stop", "step", "verbose"),
			},
			wantWarnings: []string{TitleRunOverwritten},
		},
		{
			name: "run with bare prescribed signature",
			members: []pyast.Node{
				method("_single_frame", 11, "self"),
				method("run", 13, "start", "stop", "step", "verbose"),
			},
			wantWarnings: []string{TitleRunOverwritten},
		},
		{
			name:       "run with other signature",
			members:    []pyast.Node{method("_single_frame", 11, "self"), method("run", 13, "self", "x")},
			wantErrors: []string{TitleRunSignature},
		},
		{
			name: "run with reordered signature",
			members: []pyast.Node{
				method("_single_frame", 11, "self"),
				method("run", 13, "self", "stop", "start", "step", "verbose"),
			},
			wantErrors: []string{TitleRunSignature},
		},
		{
			name: "everything wrong",
			members: []pyast.Node{
				method("_prepare", 11),
				method("run", 13, "self"),
				method("_conclude", 15, "self", "results"),
				&pyast.Other{Lineno: 17},
				method("helper", 18, "self", "a", "b"),
			},
			wantWarnings: []string{TitlePrepareArgs, TitleConcludeArgs},
			wantErrors:   []string{TitleRunSignature, TitleNoSingleFrame},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badges := AnalysisBase{}.Evaluate(module(analysisClass("MyAnalysis", 10, tt.members...)))
			require.Len(t, badges, 1)

			badge := badges[0]
			assert.Equal(t, m.KindAnalysisBase, badge.Kind())
			assert.Equal(t, "MyAnalysis", badge.Subject())
			assert.Equal(t, m.Location{Path: "pkg/analysis.py", Line: 10}, badge.Location())

			assert.Equal(t, nonNilStrings(tt.wantWarnings), titlesOfWarnings(badge.Warnings()))
			assert.Equal(t, nonNilStrings(tt.wantErrors), titlesOfErrors(badge.Errors()))
			assert.Equal(t, len(tt.wantErrors) == 0, badge.Acquired())
		})
	}
}

func TestAnalysisBase_FindingsUseClassLocation(t *testing.T) {
	class := analysisClass("A", 5,
		method("_prepare", 9, "self", "x"),
		method("run", 12, "self"),
	)

	badges := AnalysisBase{}.Evaluate(module(class))
	require.Len(t, badges, 1)

	want := m.Location{Path: "pkg/analysis.py", Line: 5}
	for _, w := range badges[0].Warnings() {
		assert.Equal(t, want, w.Location)
	}

	for _, e := range badges[0].Errors() {
		assert.Equal(t, want, e.Location)
	}
}

func TestAnalysisBase_DeclarationOrder(t *testing.T) {
	a := analysisClass("A", 1, method("_single_frame", 2, "self"))
	plain := &pyast.ClassDef{Name: "Plain", Lineno: 4, Bases: []pyast.BaseRef{}}
	b := analysisClass("B", 6)

	badges := AnalysisBase{}.Evaluate(module(a, &pyast.Other{Lineno: 3}, plain, b))
	require.Len(t, badges, 2)

	assert.Equal(t, "A", badges[0].Subject())
	assert.True(t, badges[0].Acquired())
	assert.Equal(t, "B", badges[1].Subject())
	assert.False(t, badges[1].Acquired())
}

func TestAnalysisBase_MixedBaseList(t *testing.T) {
	class := &pyast.ClassDef{
		Name:   "Mixed",
		Lineno: 1,
		Bases: []pyast.BaseRef{
			{Expr: "Generic[T]"},
			{Expr: "Mixin", Name: "Mixin"},
			{Expr: "AnalysisBase", Name: "AnalysisBase"},
		},
		Body: []pyast.Node{method("_single_frame", 2, "self")},
	}

	badges := AnalysisBase{}.Evaluate(module(class))
	require.Len(t, badges, 1)
	assert.True(t, badges[0].Acquired())
}

func TestAnalysisBase_ParsedSource(t *testing.T) {
	src := `from MDAnalysis.analysis.base import AnalysisBase


class Good(AnalysisBase):
    def _single_frame(self):
        pass


class Bad(AnalysisBase):
    def run(self, x):
        pass
`
	mod, err := pyast.Parse("analysis.py", []byte(src))
	require.NoError(t, err)

	badges := AnalysisBase{}.Evaluate(mod)
	require.Len(t, badges, 2)

	assert.Equal(t, "AnalysisBase badge for Good in analysis.py:4", badges[0].String())
	assert.True(t, badges[0].Acquired())

	assert.Equal(t, "AnalysisBase badge for Bad in analysis.py:9", badges[1].String())
	assert.Equal(t, []string{TitleRunSignature, TitleNoSingleFrame}, titlesOfErrors(badges[1].Errors()))
}

func TestAnalysisBase_RunWithLambdaDefaultsKeepsPrescribedSignature(t *testing.T) {
	src := `class Lazy(AnalysisBase):
    def _single_frame(self):
        pass

    def run(self, start=None, stop=None, step=None, verbose=lambda a, b: a):
        pass
`
	mod, err := pyast.Parse("analysis.py", []byte(src))
	require.NoError(t, err)

	badges := AnalysisBase{}.Evaluate(mod)
	require.Len(t, badges, 1)

	assert.True(t, badges[0].Acquired())
	assert.Empty(t, badges[0].Errors())
	assert.Equal(t, []string{TitleRunOverwritten}, titlesOfWarnings(badges[0].Warnings()))
}

func TestDefault(t *testing.T) {
	rules := Default()
	require.Len(t, rules, 1)
	assert.Equal(t, m.KindAnalysisBase, rules[0].Name())
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
