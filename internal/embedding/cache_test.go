package embedding

import "testing"

func TestCachePutGet(t *testing.T) {
	cache := NewCache(0)

	if _, ok := cache.Get("hello"); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	cache.Put("hello", []float32{1, 2, 3})

	vector, ok := cache.Get("hello")
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if len(vector) != 3 || vector[0] != 1 || vector[2] != 3 {
		t.Fatalf("unexpected cached vector: %v", vector)
	}
}

func TestCacheExactTextOnly(t *testing.T) {
	cache := NewCache(0)
	cache.Put("hello world", []float32{1})

	if _, ok := cache.Get("hello world "); ok {
		t.Fatal("trailing whitespace must not match")
	}
	if _, ok := cache.Get("Hello world"); ok {
		t.Fatal("different casing must not match")
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	cache := NewCache(0)
	cache.Put("text", []float32{1, 2})

	vector, _ := cache.Get("text")
	vector[0] = 99

	fresh, _ := cache.Get("text")
	if fresh[0] != 1 {
		t.Fatalf("cached vector was mutated through a returned slice: %v", fresh)
	}
}

func TestCacheIgnoresNil(t *testing.T) {
	cache := NewCache(0)
	cache.Put("text", nil)

	if cache.Len() != 0 {
		t.Fatalf("nil vectors must not be cached, len = %d", cache.Len())
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache(0)
	cache.Put("a", []float32{1})
	cache.Put("b", []float32{2})

	if cache.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cache.Len())
	}

	cache.Clear()

	if cache.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", cache.Len())
	}
	if _, ok := cache.Get("a"); ok {
		t.Fatal("expected a miss after Clear")
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	cache := NewCache(2)
	cache.Put("a", []float32{1})
	cache.Put("b", []float32{2})
	cache.Put("c", []float32{3})

	if cache.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cache.Len())
	}
	if _, ok := cache.Get("a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if _, ok := cache.Get("c"); !ok {
		t.Fatal("newest entry should still be cached")
	}
}
