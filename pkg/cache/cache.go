// Package cache implements a persisted key/value cache with per-entry TTL
// and a staleness flag. Entries past their TTL are still readable; staleness
// is reported, never enforced by deletion, so callers can serve stale data
// while a refresh runs.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// namespace keeps cache entries in their own directory under the base path
// so InvalidateAll cannot touch unrelated persisted state (device id etc).
const namespace = "cache"

// Hit is a successful read: the stored payload plus whether its TTL has
// lapsed.
type Hit struct {
	Data  json.RawMessage
	Stale bool
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ExpiresAt int64           `json:"expires_at"` // unix milliseconds
}

// Store is a diskv-backed TTL cache. The zero value is not usable; construct
// with New.
type Store struct {
	d *diskv.Diskv

	// Clock is injectable for tests and defaults to time.Now.
	Clock func() time.Time
}

// New creates a Store rooted at basePath. The directory is created lazily on
// first write.
func New(basePath string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{namespace} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		Clock: time.Now,
	}
}

// Get reads an entry. It never fails: a missing key, an unreadable file, or
// a corrupt envelope all read as a miss.
func (s *Store) Get(key string) (*Hit, bool) {
	raw, err := s.d.Read(key)
	if err != nil {
		return nil, false
	}
	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil || len(e.Data) == 0 {
		return nil, false
	}
	stale := s.Clock().UnixMilli() > e.ExpiresAt
	return &Hit{Data: e.Data, Stale: stale}, true
}

// GetJSON reads an entry and decodes its payload into v. A payload that no
// longer deserializes to the declared type is treated as a miss, not an
// error.
func (s *Store) GetJSON(key string, v any) (stale, ok bool) {
	hit, ok := s.Get(key)
	if !ok {
		return false, false
	}
	if err := json.Unmarshal(hit.Data, v); err != nil {
		return false, false
	}
	return hit.Stale, true
}

// Set stores v under key with the given TTL, replacing any previous entry
// wholesale. Failures are logged and swallowed: the cache is an
// optimization, never a required write path.
func (s *Store) Set(key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cache: marshal %s: %v\n", key, err)
		return
	}
	raw, err := json.Marshal(envelope{
		Data:      data,
		ExpiresAt: s.Clock().Add(ttl).UnixMilli(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cache: envelope %s: %v\n", key, err)
		return
	}
	if err := s.d.Write(key, raw); err != nil {
		fmt.Fprintf(os.Stderr, "cache: write %s: %v\n", key, err)
	}
}

// Invalidate removes the entry outright. Missing keys are not an error.
func (s *Store) Invalidate(key string) {
	if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "cache: erase %s: %v\n", key, err)
	}
}

// InvalidateAll removes every entry in the cache namespace, leaving anything
// else under the base path alone. Entries are erased through diskv, not the
// filesystem, so its in-memory read cache is flushed along with the files.
func (s *Store) InvalidateAll() {
	for key := range s.d.Keys(nil) {
		if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "cache: erase %s: %v\n", key, err)
		}
	}
}
