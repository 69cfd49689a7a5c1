package cache

import (
	"testing"
	"time"
)

func TestCache_ExpiresAfterTTL(t *testing.T) {
	c := New[int](time.Minute)

	now := time.Date(2025, 9, 20, 18, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("k", 42)

	if v, ok := c.Get("k"); !ok || v != 42 {
		t.Fatalf("got %v,%v want 42,true", v, ok)
	}

	now = now.Add(2 * time.Minute)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[string](0)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Delete("a")

	if _, ok := c.Get("a"); ok {
		t.Fatalf("a should be deleted")
	}

	c.Clear()

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should be cleared")
	}
}

func TestCache_SetIfGenerationSkipsAfterClear(t *testing.T) {
	c := New[[]string](time.Minute)

	gen := c.Generation()

	// an invalidation lands while the caller is still loading
	c.Clear()

	if c.SetIfGeneration("list", []string{"stale"}, gen) {
		t.Fatalf("value loaded before Clear must not be stored")
	}
	if _, ok := c.Get("list"); ok {
		t.Fatalf("stale value cached")
	}

	if !c.SetIfGeneration("list", []string{"fresh"}, c.Generation()) {
		t.Fatalf("current generation should store")
	}
	if v, ok := c.Get("list"); !ok || v[0] != "fresh" {
		t.Fatalf("got %v,%v", v, ok)
	}
}
