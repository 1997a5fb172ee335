package cache

import (
	"context"
	"testing"
	"time"
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
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before Set
	if _, hit, _ := c.Get(ctx, "icon"); hit {
		t.Error("unexpected hit before Set")
	}

	// Round-trip
	if err := c.Set(ctx, "icon", []byte("svg-bytes"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "icon")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit || string(data) != "svg-bytes" {
		t.Errorf("Get = (%q, %v), want (svg-bytes, true)", data, hit)
	}

	// Delete, then miss
	if err := c.Delete(ctx, "icon"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "icon"); hit {
		t.Error("unexpected hit after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "icon", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "icon"); hit {
		t.Error("expired entry should be a miss")
	}
	// The miss also removes the entry file.
	if _, hit, _ := c.Get(ctx, "icon"); hit {
		t.Error("expired entry should stay gone")
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "pinned", []byte("fresh"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "pinned"); !hit {
		t.Error("zero-TTL entry should not expire")
	}
}

func TestScoped(t *testing.T) {
	ctx := context.Background()
	inner, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer inner.Close()

	svg := Scoped(inner, "svg:")
	png := Scoped(inner, "png:")

	if err := svg.Set(ctx, "abc", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Same key in a different scope is a miss.
	if _, hit, _ := png.Get(ctx, "abc"); hit {
		t.Error("scopes should not share entries")
	}
	if data, hit, _ := svg.Get(ctx, "abc"); !hit || string(data) != "<svg/>" {
		t.Errorf("scoped Get = (%q, %v)", data, hit)
	}

	// The underlying cache sees the prefixed key.
	if _, hit, _ := inner.Get(ctx, "svg:abc"); !hit {
		t.Error("prefixed key missing in the underlying cache")
	}
}

func TestHash(t *testing.T) {
	// Determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestKey(t *testing.T) {
	k1 := Key("icon", 10, 64.0, "#333")
	k2 := Key("icon", 10, 64.0, "#333")
	if k1 != k2 {
		t.Error("Key should be deterministic")
	}

	k3 := Key("icon", 12, 64.0, "#333")
	if k1 == k3 {
		t.Error("Different parts should produce different keys")
	}

	if k1[:5] != "icon:" {
		t.Errorf("Key prefix = %q, want icon:", k1[:5])
	}
}
