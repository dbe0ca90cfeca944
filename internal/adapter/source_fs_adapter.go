// Package adapter contains filesystem, parser and persistence adapters for
// the mdalint CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/mdalint/internal/model"
)

const pythonFileExt = ".py"

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning user projects, so the workflow can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// Get collects Python modules below the provided roots. A root ending in
	// "/..." is scanned recursively. Paths matching one of the exclude
	// regular expressions are skipped.
	Get(roots []m.Path, exclude []string) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Python sources for the provided roots, without duplicates and
// in walk order.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	sources := []m.Source{}

	add := func(path, root string) error {
		source, ok, err := a.processFilePath(path, []string{cwd, root}, patterns)
		if err != nil || !ok {
			return err
		}

		if _, exists := seen[string(source.Origin)]; exists {
			return nil
		}

		seen[string(source.Origin)] = struct{}{}
		sources = append(sources, source)

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(rootPath, filepath.Dir(rootPath)); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path != rootPath && skipDir(info.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			return add(path, rootPath)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func (a *LocalSourceFSAdapter) processFilePath(path string, bases []string, exclude []*regexp.Regexp) (m.Source, bool, error) {
	if filepath.Ext(path) != pythonFileExt {
		return m.Source{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	if isExcluded(absPath, bases, exclude) {
		return m.Source{}, false, nil
	}

	// Unreadable files are kept without a hash; the workflow reports them as
	// module errors.
	hash, err := a.HashFile(m.Path(absPath))
	if err != nil {
		hash = ""
	}

	return m.Source{Origin: m.Path(absPath), Hash: hash}, true, nil
}

// isExcluded matches the patterns against the absolute slash path and
// against the path relative to each base that contains it.
func isExcluded(absPath string, bases []string, exclude []*regexp.Regexp) bool {
	if len(exclude) == 0 {
		return false
	}

	candidates := []string{filepath.ToSlash(absPath)}

	for _, base := range bases {
		rel, err := filepath.Rel(base, absPath)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
			continue
		}

		candidates = append(candidates, filepath.ToSlash(rel))
	}

	for _, re := range exclude {
		for _, candidate := range candidates {
			if re.MatchString(candidate) {
				return true
			}
		}
	}

	return false
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "__pycache__" || name == "node_modules"
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}
