package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"tinyjava/internal/tac"
)

// Bump when CacheEntry or the tac instruction layout changes.
const cacheSchemaVersion uint16 = 1

// Cache stores generated IR on disk, keyed by the sha256 of the normalised
// source. Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// CacheEntry is the msgpack payload of one cached file.
type CacheEntry struct {
	Schema uint16
	Path   string
	IR     *tac.Program
}

// OpenCache opens (creating if needed) a cache rooted at dir. An empty dir
// selects $XDG_CACHE_HOME/tinyjava, falling back to ~/.cache/tinyjava.
func OpenCache(dir string) (*Cache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "tinyjava")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "ir", hex.EncodeToString(key[:])+".mp")
}

// Put writes entry under key, replacing any previous one atomically.
func (c *Cache) Put(key [32]byte, entry *CacheEntry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	entry.Schema = cacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(entry); err != nil {
		return fmt.Errorf("encode %s: %w", entry.Path, err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get loads the entry stored under key into out. A missing entry or one
// written by another schema version is a miss, not an error.
func (c *Cache) Get(key [32]byte, out *CacheEntry) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", f.Name(), err)
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "ir"))
}
