package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/mdalint/internal/model"
)

const reportExt = ".yaml"

var reportNamePattern = regexp.MustCompile(`^[0-9a-f]{16}\.yaml$`)

// ReportStore persists and retrieves lint reports, one file per module.
type ReportStore interface {
	SaveReports(dir m.Path, results []m.ModuleResult) error
	LoadReports(dir m.Path) ([]m.ModuleResult, error)
}

// LocalReportStore writes YAML reports to a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReports replaces the reports of dir with one YAML file per module,
// named after the module path. Other files in dir are left alone.
func (rs *LocalReportStore) SaveReports(dir m.Path, results []m.ModuleResult) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	if err := rs.pruneReports(dir); err != nil {
		return err
	}

	for _, result := range results {
		data, err := yaml.Marshal(toRecord(result))
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", result.Path, err)
		}

		path := filepath.Join(string(dir), rs.reportName(result.Path))
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", path, err)
		}
	}

	return nil
}

// LoadReports reads every report of dir, sorted by module path.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.ModuleResult, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reports dir %s: %w", dir, err)
		}

		return nil, err
	}

	results := []m.ModuleResult{}

	for _, entry := range entries {
		if !isReportFile(entry) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		// #nosec G304 - path is built from the reports directory listing
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var rec moduleRecord
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parse report %s: %w", path, err)
		}

		results = append(results, rec.toResult())
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, nil
}

// pruneReports removes reports left by earlier runs.
func (rs *LocalReportStore) pruneReports(dir m.Path) error {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return fmt.Errorf("read reports dir: %w", err)
	}

	for _, entry := range entries {
		if !isReportFile(entry) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove stale report %s: %w", path, err)
		}
	}

	return nil
}

func isReportFile(entry os.DirEntry) bool {
	return !entry.IsDir() && reportNamePattern.MatchString(entry.Name())
}

func (rs *LocalReportStore) reportName(path m.Path) string {
	h := sha256.Sum256([]byte(path))
	return fmt.Sprintf("%x", h)[:16] + reportExt
}
