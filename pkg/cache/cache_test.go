package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/valdigraph/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "render:x"); hit || err != nil {
		t.Fatalf("empty cache Get = %v, %v", hit, err)
	}
	if err := c.Set(ctx, "render:x", []byte("<svg/>"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "render:x")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "render:x"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "render:x"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "render:x"); err != nil {
		t.Errorf("deleting a missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "k", []byte("v"), 0)
	if err := os.WriteFile(c.path("k"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry survived Clear")
	}
}

func TestFileCacheStatsAndPrune(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "live", []byte("12345"), 0)
	_ = c.Set(ctx, "stale", []byte("x"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	st, err := c.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Entries != 1 || st.Expired != 1 || st.Bytes == 0 {
		t.Errorf("Stats = %+v, want 1 live and 1 expired", st)
	}

	n, err := c.Prune()
	if err != nil || n != 1 {
		t.Fatalf("Prune = %d, %v, want 1", n, err)
	}
	if data, hit, _ := c.Get(ctx, "live"); !hit || string(data) != "12345" {
		t.Errorf("Prune removed a live entry: %q, %v", data, hit)
	}
}

func TestFileCacheEmptyDir(t *testing.T) {
	c := &FileCache{dir: filepath.Join(t.TempDir(), "missing")}
	if st, err := c.Stats(); err != nil || st != (Stats{}) {
		t.Errorf("Stats on a missing dir = %+v, %v", st, err)
	}
	if n, err := c.Clear(); err != nil || n != 0 {
		t.Errorf("Clear on a missing dir = %d, %v", n, err)
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "valdigraph") {
		t.Errorf("DefaultDir = %s", dir)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestRenderKey(t *testing.T) {
	doc := Hash([]byte("<XMCDA/>"))
	k1 := RenderKey(doc, RenderKeyOpts{Format: "svg"})
	k2 := RenderKey(doc, RenderKeyOpts{Format: "svg", Hide: true})
	k3 := RenderKey(Hash([]byte("<XMCDA></XMCDA>")), RenderKeyOpts{Format: "svg"})
	if k1 == k2 || k1 == k3 {
		t.Error("different documents or options should produce different keys")
	}
	if k1 != RenderKey(doc, RenderKeyOpts{Format: "svg"}) {
		t.Error("RenderKey should be deterministic")
	}
	if keyType(k1) != PrefixRender {
		t.Errorf("keyType = %s, want %s", keyType(k1), PrefixRender)
	}
	if keyType("plain") != "unknown" {
		t.Error("keys without prefix should report unknown")
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
}

func (h *countingHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestFileCacheHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetCacheHooks(h)
	defer observability.Reset()

	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_, _, _ = c.Get(ctx, "render:a")
	_ = c.Set(ctx, "render:a", []byte("x"), 0)
	_, _, _ = c.Get(ctx, "render:a")

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("hits=%d misses=%d sets=%d, want 1 each", h.hits, h.misses, h.sets)
	}
}
