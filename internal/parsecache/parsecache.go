// Package parsecache is an on-disk cache for parse results, keyed by the
// content hash of the source bytes that produced them. It exists so the
// CLI's repeated runs over a project (tokenize/diagnose/inspect over many
// files, or the same file edited and re-run) can skip re-lexing unchanged
// files; the driver's parse path does not use it. Nothing in the core lexer/parse stream/parser
// touches this package; it is driver-level bookkeeping only.
package parsecache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion guards against decoding a stale on-disk format after the
// Artifact shape changes; bump it whenever Artifact's fields change in a
// way that would break msgpack decoding of old entries.
const schemaVersion uint16 = 1

// ContentHash identifies a cache entry by the SHA-256 digest of the exact
// source bytes it was computed from.
type ContentHash [sha256.Size]byte

// HashContent computes the ContentHash of content.
func HashContent(content []byte) ContentHash {
	return sha256.Sum256(content)
}

// Artifact is what gets cached per file: enough to skip re-running the
// lexer on a cache hit. It does not cache the built
// CST itself (spans reference a source.File and FileID that may differ
// between runs) — only the flat diagnostic list and the raw token stream,
// from which a caller can still answer "does this file have errors" and
// "what does it tokenize to" without re-lexing.
type Artifact struct {
	Schema uint16

	// Tokens mirrors token.RawToken's fields in a cache-stable shape,
	// independent of any particular source.FileID. IsSuffixed is not kept.
	Tokens []CachedToken

	Diagnostics []CachedDiagnostic
}

// CachedToken is a file-independent snapshot of one token.RawToken: its
// byte offsets are kept, its IsSuffixed flag is not.
type CachedToken struct {
	Kind     uint16
	Start    uint32
	End      uint32
	IsDotted bool
	Err      uint8
}

// CachedDiagnostic is a file-independent snapshot (byte offsets kept) of one
// diag.Diagnostic.
type CachedDiagnostic struct {
	Severity uint8
	Code     string
	Start    uint32
	End      uint32
	Message  string
}

// Cache is a thread-safe, content-hash-keyed disk cache of Artifacts,
// stored as individual msgpack files under dir.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a Cache rooted at dir, creating it if necessary.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenDefault opens a Cache under the user's standard cache directory
// (XDG_CACHE_HOME, falling back to ~/.cache), namespaced by app.
func OpenDefault(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return Open(filepath.Join(base, app))
}

func (c *Cache) pathFor(key ContentHash) string {
	return filepath.Join(c.dir, "files", hex.EncodeToString(key[:])+".mp")
}

// Put serializes artifact and writes it to disk under key, atomically
// (write to a temp file in the same directory, then rename).
func (c *Cache) Put(key ContentHash, artifact *Artifact) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	artifact.Schema = schemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	removeTemp := true
	defer func() {
		if removeTemp {
			os.Remove(tmpName)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(artifact); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, p); err != nil {
		return err
	}
	removeTemp = false
	return nil
}

// Get reads and deserializes the Artifact stored under key. ok is false,
// with a nil error, on a cache miss; a schema mismatch is treated as a
// miss rather than an error, since it just means the entry predates a
// format change.
func (c *Cache) Get(key ContentHash) (artifact *Artifact, ok bool, err error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out Artifact
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, err
	}
	if out.Schema != schemaVersion {
		return nil, false, nil
	}
	return &out, true, nil
}

// Invalidate removes the cache entry for key, if any. A missing entry is
// not an error.
func (c *Cache) Invalidate(key ContentHash) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.pathFor(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
