// The cache subpackage defines the glyph cache used by nfont fonts to
// map codepoints to their cells within the font atlas.
//
// Entries are never evicted: they are only cleared when the owning font
// is reloaded or freed. Since the atlas can't grow either, lookups that
// failed once (glyph not present in the source or atlas exhausted) can
// also be memoized with [GlyphCache.MarkMissing]() in order to avoid
// repeated rasterization attempts.
package cache

import "image"

import "github.com/tinne26/nfont/codepoint"

// A cached glyph. The rectangle locates the glyph cell within
// the atlas. Read-only once stored.
type Entry struct {
	Rect image.Rectangle
}

// Returns the width of the cached glyph cell.
func (self Entry) Width() int { return self.Rect.Dx() }

// Hit and miss counters, mostly useful for debugging and tests.
type Stats struct {
	Hits uint64
	Misses uint64
	Memoized uint64 // misses resolved from memoized failures
}

// A map from codepoints to atlas cells. The zero value is ready to use.
// Not safe for concurrent use.
type GlyphCache struct {
	entries map[codepoint.Code]Entry
	missing map[codepoint.Code]struct{}
	stats Stats
}

// Creates a new cache with space preallocated for the given
// number of entries.
func New(capacity int) *GlyphCache {
	return &GlyphCache{
		entries: make(map[codepoint.Code]Entry, capacity),
	}
}

// Returns the cached entry for the given code, if any.
func (self *GlyphCache) Get(code codepoint.Code) (Entry, bool) {
	entry, found := self.entries[code]
	if found {
		self.stats.Hits += 1
	} else {
		self.stats.Misses += 1
	}
	return entry, found
}

// Stores an entry for the given code. Storing an entry also
// clears any previous missing mark for the code.
func (self *GlyphCache) Put(code codepoint.Code, entry Entry) {
	if self.entries == nil {
		self.entries = make(map[codepoint.Code]Entry, 128)
	}
	self.entries[code] = entry
	delete(self.missing, code)
}

// Memoizes a failed lookup for the given code.
func (self *GlyphCache) MarkMissing(code codepoint.Code) {
	if self.missing == nil {
		self.missing = make(map[codepoint.Code]struct{}, 8)
	}
	self.missing[code] = struct{}{}
}

// Returns whether the given code was marked as missing.
func (self *GlyphCache) IsMissing(code codepoint.Code) bool {
	_, missing := self.missing[code]
	if missing { self.stats.Memoized += 1 }
	return missing
}

// Returns the number of cached entries, not counting missing marks.
func (self *GlyphCache) Len() int { return len(self.entries) }

// Calls the given function for each cached entry, in no
// particular order.
func (self *GlyphCache) Each(fn func(codepoint.Code, Entry)) {
	for code, entry := range self.entries {
		fn(code, entry)
	}
}

// Returns the cache lookup statistics.
func (self *GlyphCache) Stats() Stats { return self.stats }

// Removes all entries and missing marks, and clears the stats.
func (self *GlyphCache) Reset() {
	for code := range self.entries { delete(self.entries, code) }
	self.missing = nil
	self.stats = Stats{}
}
