package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultReportsDir, cfg.Reports)
	assert.Zero(t, cfg.Workers)
	assert.Empty(t, cfg.Exclude)
	assert.True(t, cfg.CacheEnabled())
	assert.False(t, cfg.FailsOnPossible())
	assert.Empty(t, cfg.Source)
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, New(), cfg)
}

func TestLoad_YAMLMergesOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, "workers: 3\nexclude:\n  - tests/\nfail_on_possible: true\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{"tests/"}, cfg.Exclude)
	assert.Equal(t, DefaultReportsDir, cfg.Reports, "unset fields keep defaults")
	assert.True(t, cfg.CacheEnabled())
	assert.True(t, cfg.FailsOnPossible())
	assert.Equal(t, path, cfg.Source)
}

func TestLoad_WalksUpToParent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "reports: out\n")

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Reports)
}

func TestLoad_StopsAfterMaxParentWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "reports: out\n")

	nested := root
	for i := 0; i < maxParentWalk; i++ {
		nested = filepath.Join(nested, "d")
	}

	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)

	assert.Equal(t, DefaultReportsDir, cfg.Reports)
}

func TestLoad_PyProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, PyProjectName), `[project]
name = "analysis"

[tool.mdalint]
workers = 2
cache_dir = "/tmp/mdalint"
use_cache = false
exclude = ["build/"]
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "/tmp/mdalint", cfg.CacheDir)
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, []string{"build/"}, cfg.Exclude)
}

func TestLoad_PyProjectWithoutTableKeepsWalking(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "workers: 7\n")
	writeFile(t, filepath.Join(root, "pkg", PyProjectName), "[project]\nname = \"pkg\"\n")

	cfg, err := Load(filepath.Join(root, "pkg"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, filepath.Join(root, FileName), cfg.Source)
}

func TestLoad_YAMLPreferredOverPyProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "workers: 1\n")
	writeFile(t, filepath.Join(dir, PyProjectName), "[tool.mdalint]\nworkers = 9\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Workers)
}

func TestLoad_InvalidFiles(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, FileName), "workers: [\n")

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing")
	})

	t.Run("toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, PyProjectName), "[tool.mdalint\n")

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "custom.yml")
	writeFile(t, yamlPath, "reports: yaml-reports\n")

	tomlPath := filepath.Join(dir, "custom.toml")
	writeFile(t, tomlPath, "reports = \"toml-reports\"\n")

	pyPath := filepath.Join(dir, "sub", PyProjectName)
	writeFile(t, pyPath, "[tool.mdalint]\nreports = \"py-reports\"\n")

	for path, want := range map[string]string{
		yamlPath: "yaml-reports",
		tomlPath: "toml-reports",
		pyPath:   "py-reports",
	} {
		cfg, err := LoadFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, cfg.Reports)
		assert.Equal(t, path, cfg.Source)
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
