// Package assets fingerprints published assets and resolves their names.
//
// Publishing writes each asset under a content-hashed name and records the
// mapping in manifest.json:
//
//	{
//	  "controls.css": "controls.3f9a1c2e.css"
//	}
//
// Pages link assets through a Resolver so cached copies are replaced
// whenever the content changes:
//
//	m := assets.NewManifest()
//	m.Fingerprint("controls.css", css)
//	assets.NewResolver(m, "/static/").Asset("controls.css")
//	// "/static/controls.3f9a1c2e.css"
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"path"
	"strings"
	"sync"
)

// hashLen is the number of hex digits of the content hash kept in names.
const hashLen = 8

// Manifest maps source asset names to fingerprinted names. It is safe for
// concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// Load decodes a manifest written by WriteTo.
func Load(r io.Reader) (*Manifest, error) {
	entries := make(map[string]string)
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}
	return &Manifest{entries: entries}, nil
}

// Fingerprint records source under a name carrying the hash of body and
// returns that name. "css/controls.css" becomes "css/controls.<hash>.css".
func (m *Manifest) Fingerprint(source string, body []byte) string {
	sum := sha256.Sum256(body)
	hash := hex.EncodeToString(sum[:])[:hashLen]

	dir, file := path.Split(source)
	ext := path.Ext(file)
	resolved := dir + strings.TrimSuffix(file, ext) + "." + hash + ext

	m.Set(source, resolved)
	return resolved
}

// Resolve returns the fingerprinted name of source, or source itself when
// it is not in the manifest.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Set adds or replaces an entry.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[source] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// WriteTo writes the manifest as indented JSON.
func (m *Manifest) WriteTo(w io.Writer) (int64, error) {
	m.mu.RLock()
	data, err := json.MarshalIndent(m.entries, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(data, '\n'))
	return int64(n), err
}

// Resolver turns source asset names into URL paths.
type Resolver interface {
	Asset(source string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver resolves through m and prepends prefix. A nil manifest
// passes names through unchanged.
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(source string) string {
	if r.manifest == nil {
		return r.prefix + source
	}
	return r.prefix + r.manifest.Resolve(source)
}
