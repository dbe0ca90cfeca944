package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	m "github.com/mouse-blink/mdalint/internal/model"
)

// Bump when moduleRecord or the rule titles change.
const cacheSchemaVersion uint16 = 1

// ResultCache stores lint results of unchanged modules.
type ResultCache interface {
	// Get returns the cached result for source. The boolean is false on a miss.
	Get(source m.Source) (m.ModuleResult, bool, error)
	// Put stores the result of linting source.
	Put(source m.Source, result m.ModuleResult) error
}

// DiskResultCache keeps msgpack-encoded results keyed by module path and
// content hash. Safe for concurrent use.
type DiskResultCache struct {
	mu  sync.RWMutex
	dir string
}

// NewDiskResultCache returns a cache rooted at dir. The directory is created
// on first write.
func NewDiskResultCache(dir m.Path) *DiskResultCache {
	return &DiskResultCache{dir: string(dir)}
}

// OpenUserCache returns a cache in the user cache directory
// ($XDG_CACHE_HOME/app or ~/.cache/app).
func OpenUserCache(app string) (*DiskResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		base = filepath.Join(home, ".cache")
	}

	return NewDiskResultCache(m.Path(filepath.Join(base, app))), nil
}

func (c *DiskResultCache) pathFor(source m.Source) string {
	key := sha256.Sum256([]byte(string(source.Origin) + "\x00" + source.Hash))
	return filepath.Join(c.dir, "results", hex.EncodeToString(key[:])+".mp")
}

// Get reads and decodes a cached result.
func (c *DiskResultCache) Get(source m.Source) (m.ModuleResult, bool, error) {
	if c == nil || source.Hash == "" {
		return m.ModuleResult{}, false, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(source))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.ModuleResult{}, false, nil
		}

		return m.ModuleResult{}, false, err
	}

	defer func() {
		_ = f.Close()
	}()

	var rec moduleRecord
	if err := msgpack.NewDecoder(f).Decode(&rec); err != nil {
		return m.ModuleResult{}, false, fmt.Errorf("decode cached result: %w", err)
	}

	if rec.Schema != cacheSchemaVersion || rec.Path != string(source.Origin) || rec.Hash != source.Hash {
		return m.ModuleResult{}, false, nil
	}

	return rec.toResult(), true, nil
}

// Put encodes result and atomically replaces the cache entry.
func (c *DiskResultCache) Put(source m.Source, result m.ModuleResult) error {
	if c == nil || source.Hash == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(source)
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}

	defer func() {
		_ = os.Remove(f.Name())
	}()

	rec := toRecord(result)
	rec.Schema = cacheSchemaVersion
	rec.Path = string(source.Origin)
	rec.Hash = source.Hash

	if err := msgpack.NewEncoder(f).Encode(&rec); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode result: %w", err)
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), p)
}
