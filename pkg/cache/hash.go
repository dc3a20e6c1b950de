package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Key prefixes, also reported to cache hooks as the key type.
const (
	PrefixRender = "render"
)

// RenderKeyOpts are the render options that change the output bytes.
type RenderKeyOpts struct {
	Format   string  `json:"format"`
	Hide     bool    `json:"hide"`
	Detailed bool    `json:"detailed"`
	Labels   bool    `json:"labels"`
	Scale    float64 `json:"scale,omitempty"`
}

// RenderKey returns the cache key of a diagram rendered from the document
// with the given content hash.
func RenderKey(documentHash string, opts RenderKeyOpts) string {
	return hashKey(PrefixRender, documentHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// keyType returns the prefix of a key, or "unknown".
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
