package cache

import "sync"

import "github.com/ekelse/btxt/geom"

// The interface renderers use to cache text measurements. Keys are
// a (metrics id, text) pair; see font.Metrics.CacheID.
//
// Implementations must be concurrent-safe and must behave as pure
// key-value stores: a cached size is either the one passed earlier
// for the same key, or absent.
type MeasureCache interface {
	// Returns the cached size for the given key, if any.
	GetSize(id uint64, text string) (geom.Size, bool)

	// Offers a size to the cache. The cache may ignore it.
	PassSize(id uint64, text string, size geom.Size)
}

type sizeKey struct {
	id   uint64
	text string
}

type cachedSizeEntry struct {
	size   geom.Size
	access uint32
}

// Approximate map and key overhead per entry, on top of the text
// bytes themselves.
const entryBaseSize = 48

// The default measurement cache. It is concurrent-safe (though not
// optimized for heavily concurrent scenarios), has memory bounds and
// uses random sampling for evicting entries.
type DefaultCache struct {
	cachedSizes    map[sizeKey]*cachedSizeEntry
	spaceBytesLeft int
	byteSizeLimit  int
	mutex          sync.RWMutex
}

// Creates a new cache bounded by the given size, in bytes. Negative
// values will panic.
//
// A few KiB go a long way for typical UI workloads: each entry costs
// around 48 bytes plus the measured text itself.
func NewDefaultCache(maxByteSize int) *DefaultCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &DefaultCache{
		cachedSizes: make(map[sizeKey]*cachedSizeEntry, 64),
		spaceBytesLeft: maxByteSize,
		byteSizeLimit: maxByteSize,
	}
}

// Implements [MeasureCache].
func (self *DefaultCache) GetSize(id uint64, text string) (geom.Size, bool) {
	key := sizeKey{ id: id, text: text }
	self.mutex.RLock()
	entry, found := self.cachedSizes[key]
	self.mutex.RUnlock()
	if !found { return geom.Size{}, false }

	self.mutex.Lock()
	entry.access += 1
	size := entry.size
	self.mutex.Unlock()
	return size, true
}

// Implements [MeasureCache].
func (self *DefaultCache) PassSize(id uint64, text string, size geom.Size) {
	entrySize := entryBaseSize + len(text)
	if entrySize > self.byteSizeLimit { return } // can never fit

	key := sizeKey{ id: id, text: text }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, alreadyCached := self.cachedSizes[key]
	if alreadyCached { return }

	// free space through random sampling until the new entry fits
	for self.spaceBytesLeft < entrySize {
		freed := self.evictColdSample()
		if freed == 0 { return } // couldn't free anything, give up
		self.spaceBytesLeft += freed
	}

	self.cachedSizes[key] = &cachedSizeEntry{ size: size }
	self.spaceBytesLeft -= entrySize
}

// Returns the number of cached measurements.
func (self *DefaultCache) NumEntries() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.cachedSizes)
}

// Returns an approximation of the current memory used by the cache,
// in bytes.
func (self *DefaultCache) ApproxByteSize() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.byteSizeLimit - self.spaceBytesLeft
}

// Removes the least accessed entry of a small random sample and
// returns the freed space, or zero if nothing could be removed.
// Must be called with the write lock held. Go's random map iteration
// order provides the sampling.
func (self *DefaultCache) evictColdSample() int {
	const sampleSize = 10

	var coldestKey sizeKey
	coldestAccess := ^uint32(0)
	samplesTaken := 0
	for key, entry := range self.cachedSizes {
		if entry.access < coldestAccess {
			coldestAccess = entry.access
			coldestKey = key
		}
		samplesTaken += 1
		if samplesTaken >= sampleSize { break }
	}
	if samplesTaken == 0 { return 0 }

	delete(self.cachedSizes, coldestKey)
	return entryBaseSize + len(coldestKey.text)
}
