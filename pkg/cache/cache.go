// Package cache stores rendered diagram artifacts between CLI runs.
//
// Graphviz rendering is the slowest step of the diagram command, and the
// same scenario usually produces the same DOT source. Artifacts are keyed
// by a hash of their input so a changed plan never hits a stale entry.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.Key("svg", dot)
//	if svg, ok, _ := c.Get(ctx, key); ok {
//	    return svg
//	}
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Key builds a cache key of the form "kind:sha256(parts)".
func Key(kind string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// kindOf returns the part of key before the first colon.
func kindOf(key string) string {
	kind, _, ok := strings.Cut(key, ":")
	if !ok {
		return "misc"
	}
	return kind
}

// Null never stores anything. It is used when caching is disabled.
type Null struct{}

func (Null) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Null) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Null) Delete(context.Context, string) error                     { return nil }
