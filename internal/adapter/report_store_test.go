package adapter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/mdalint/internal/model"
)

func sampleResult(path string) m.ModuleResult {
	where := m.Location{Path: m.Path(path), Line: 4}

	acquired := m.NewAnalysisBaseBadge(where, "Good")
	acquired.AddWarning(where, "_prepare method has unexpected arguments")

	possibleAt := m.Location{Path: m.Path(path), Line: 12}
	possible := m.NewAnalysisBaseBadge(possibleAt, "Bad")
	possible.AddError(possibleAt, "The class does not define a _single_frame method.")

	return m.ModuleResult{
		Path:   m.Path(path),
		Hash:   "abc123",
		Badges: []m.Badge{acquired, possible},
	}
}

func TestLocalReportStore_SaveReports_WritesHashedYAMLPerModule(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	result := sampleResult("/abs/pkg/analysis.py")
	require.NoError(t, rs.SaveReports(m.Path(dir), []m.ModuleResult{result}))

	expectedFile := filepath.Join(dir, rs.reportName(result.Path))
	info, err := os.Stat(expectedFile)
	require.NoErrorf(t, err, "expected report file %s to exist", expectedFile)
	assert.True(t, info.Mode().IsRegular())

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}\.yaml$`), filepath.Base(expectedFile))

	var decoded moduleRecord
	require.NoError(t, yaml.Unmarshal(readFileBytes(t, expectedFile), &decoded))

	assert.Equal(t, "/abs/pkg/analysis.py", decoded.Path)
	assert.Equal(t, "abc123", decoded.Hash)
	require.Len(t, decoded.Badges, 2)
	assert.Equal(t, "Good", decoded.Badges[0].Subject)
	assert.True(t, decoded.Badges[0].Acquired)
	assert.Equal(t, uint32(4), decoded.Badges[0].Line)
	assert.False(t, decoded.Badges[1].Acquired)
	require.Len(t, decoded.Badges[1].Errors, 1)
	assert.Equal(t, uint32(12), decoded.Badges[1].Errors[0].Line)
}

func TestLocalReportStore_SaveReports_OverwritesSameModule(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewReportStore()

	first := sampleResult("/abs/pkg/analysis.py")
	second := m.ModuleResult{Path: first.Path, Hash: "changed", Badges: []m.Badge{}}

	require.NoError(t, rs.SaveReports(m.Path(dir), []m.ModuleResult{first}))
	require.NoError(t, rs.SaveReports(m.Path(dir), []m.ModuleResult{second}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	loaded, err := rs.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "changed", loaded[0].Hash)
	assert.Empty(t, loaded[0].Badges)
}

func TestLocalReportStore_SaveReports_PrunesStaleReports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewReportStore()

	require.NoError(t, rs.SaveReports(m.Path(dir), []m.ModuleResult{
		sampleResult("/abs/old/a.py"),
		sampleResult("/abs/old/b.py"),
	}))

	foreign := filepath.Join(dir, "settings.yaml")
	writeTestFile(t, foreign, "keep: true\n")

	require.NoError(t, rs.SaveReports(m.Path(dir), []m.ModuleResult{sampleResult("/abs/new/c.py")}))

	loaded, err := rs.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, m.Path("/abs/new/c.py"), loaded[0].Path)

	assert.FileExists(t, foreign, "files that are not reports are kept")
}

func TestLocalReportStore_SaveReports_EmptyRunClearsReports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewReportStore()

	require.NoError(t, rs.SaveReports(m.Path(dir), []m.ModuleResult{sampleResult("/abs/a.py")}))
	require.NoError(t, rs.SaveReports(m.Path(dir), []m.ModuleResult{}))

	loaded, err := rs.LoadReports(m.Path(dir))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLocalReportStore_LoadReports_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewReportStore()

	failed := m.ModuleResult{
		Path:   "/abs/a_broken.py",
		Badges: []m.Badge{},
		Errors: []m.Error{{Location: m.Location{Path: "/abs/a_broken.py"}, Title: "syntax error: line 5: '(' was never closed"}},
	}

	require.NoError(t, rs.SaveReports(m.Path(dir), []m.ModuleResult{sampleResult("/abs/z_analysis.py"), failed}))

	loaded, err := rs.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// sorted by path
	assert.Equal(t, m.Path("/abs/a_broken.py"), loaded[0].Path)
	assert.True(t, loaded[0].Failed())
	assert.Equal(t, failed.Errors, loaded[0].Errors)

	got := loaded[1]
	require.Len(t, got.Badges, 2)

	good := got.Badges[0]
	assert.Equal(t, m.KindAnalysisBase, good.Kind())
	assert.Equal(t, "AnalysisBase badge for Good", good.Label())
	assert.True(t, good.Acquired())
	assert.Equal(t, "AnalysisBase badge for Good in /abs/z_analysis.py:4", good.String())
	require.Len(t, good.Warnings(), 1)
	assert.Equal(t, m.Path("/abs/z_analysis.py"), good.Warnings()[0].Location.Path)

	bad := got.Badges[1]
	assert.False(t, bad.Acquired())
	assert.Equal(t, "The class does not define a _single_frame method.", bad.Errors()[0].Title)
}

func TestLocalReportStore_LoadReports_SkipsForeignFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewReportStore()

	require.NoError(t, rs.SaveReports(m.Path(dir), []m.ModuleResult{sampleResult("/abs/analysis.py")}))
	writeTestFile(t, filepath.Join(dir, "notes.txt"), "not a report")
	writeTestFile(t, filepath.Join(dir, "settings.yaml"), "keep: [true\n")
	mustMkdir(t, filepath.Join(dir, "nested.yaml"))

	loaded, err := rs.LoadReports(m.Path(dir))
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestLocalReportStore_LoadReports_Errors(t *testing.T) {
	t.Parallel()

	rs := NewReportStore()

	t.Run("missing dir", func(t *testing.T) {
		_, err := rs.LoadReports(m.Path(filepath.Join(t.TempDir(), "missing")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "0123456789abcdef.yaml"), "badges: [unterminated\n")

		_, err := rs.LoadReports(m.Path(dir))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse report")
	})
}

func TestLocalReportStore_SaveReports_DirIsFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "reports")
	writeTestFile(t, file, "")

	err := NewReportStore().SaveReports(m.Path(file), []m.ModuleResult{sampleResult("/abs/analysis.py")})
	require.Error(t, err)
}
