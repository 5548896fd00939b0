package cache

import "strconv"
import "testing"

import "github.com/ekelse/btxt/geom"

func TestDefaultCacheGetPass(t *testing.T) {
	cache := NewDefaultCache(16*1024)

	_, found := cache.GetSize(1, "hello")
	if found { t.Fatal("expected miss on empty cache") }

	size := geom.Size{ W: 42, H: 12 }
	cache.PassSize(1, "hello", size)
	got, found := cache.GetSize(1, "hello")
	if !found { t.Fatal("expected hit") }
	if got != size { t.Fatalf("expected %s, got %s", size, got) }

	// same text under a different metrics id is a different key
	_, found = cache.GetSize(2, "hello")
	if found { t.Fatal("expected miss for different metrics id") }

	if cache.NumEntries() != 1 { t.Fatalf("expected 1 entry, got %d", cache.NumEntries()) }
	if cache.ApproxByteSize() <= 0 { t.Fatal("expected non-zero byte size") }
}

func TestDefaultCacheEviction(t *testing.T) {
	// room for only a handful of entries
	cache := NewDefaultCache(entryBaseSize*4 + 64)

	for i := 0; i < 64; i += 1 {
		cache.PassSize(1, "entry-"+strconv.Itoa(i), geom.Size{ W: i, H: 10 })
	}
	if cache.NumEntries() > 5 {
		t.Fatalf("expected eviction to keep the cache small, got %d entries", cache.NumEntries())
	}
	if cache.ApproxByteSize() > entryBaseSize*4 + 64 {
		t.Fatal("cache exceeded its byte bound")
	}
}

func TestDefaultCacheOversizedEntry(t *testing.T) {
	cache := NewDefaultCache(entryBaseSize + 4)
	cache.PassSize(1, "this text is longer than the whole cache budget", geom.Size{ W: 1, H: 1 })
	if cache.NumEntries() != 0 { t.Fatal("oversized entries must be rejected") }
}

func TestNewDefaultCachePanicsOnNegativeSize(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatal("expected panic") }
	}()
	_ = NewDefaultCache(-1)
}
