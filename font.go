package nfont

import "image/color"

import "github.com/tinne26/nfont/atlas"
import "github.com/tinne26/nfont/cache"

// Default capacity of the formatting buffer, in bytes.
const DefaultBufferSize = 1024

// A Font owns a glyph source (bitmap sheet or TrueType font), the atlas
// where its glyphs are packed, the glyph cache and the metrics and layout
// parameters used to draw text.
//
// Fonts are created empty with [New]() and become usable after a
// successful load. Loading again replaces the previous source, freeing
// it first. Fonts are not safe for concurrent use.
type Font struct {
	source GlyphSource
	atlas *atlas.Atlas
	glyphs cache.GlyphCache

	height int
	ascent int
	descent int
	baseline int
	maxWidth int
	lineSpacing int
	letterSpacing int
	defaultColor color.NRGBA

	buffer []byte
	exhaustionLogged bool
}

// Creates a new empty font.
func New() *Font {
	return &Font{
		defaultColor: opaqueWhite,
		buffer: make([]byte, 0, DefaultBufferSize),
	}
}

// Releases the glyph source and the atlas. The font stays usable
// and can be loaded again. Calling Free on an empty font is a no-op.
func (self *Font) Free() {
	if tt, isTT := self.source.(*TrueTypeSource); isTT && tt.owned {
		tt.free()
	}
	self.source = nil
	self.atlas = nil
	self.glyphs.Reset()
	self.height, self.ascent, self.descent = 0, 0, 0
	self.baseline, self.maxWidth = 0, 0
	self.exhaustionLogged = false
}

// Returns whether the font has a glyph source loaded.
func (self *Font) IsLoaded() bool { return self.source != nil && self.atlas != nil }

// Returns the current glyph source, or nil if the font is empty.
func (self *Font) GetSource() GlyphSource { return self.source }

// Returns the font atlas, or nil if the font is empty.
func (self *Font) GetAtlas() *atlas.Atlas { return self.atlas }

// Returns the number of glyphs currently cached.
func (self *Font) NumCachedGlyphs() int { return self.glyphs.Len() }

// Returns the glyph cache lookup statistics.
func (self *Font) GetCacheStats() cache.Stats { return self.glyphs.Stats() }

// Sets the extra horizontal spacing between letters, in pixels.
// Can be negative.
func (self *Font) SetSpacing(letterSpacing int) { self.letterSpacing = letterSpacing }

// Returns the extra horizontal spacing between letters.
func (self *Font) GetSpacing() int { return self.letterSpacing }

// Sets the extra vertical spacing between lines, in pixels.
// Can be negative.
func (self *Font) SetLineSpacing(lineSpacing int) { self.lineSpacing = lineSpacing }

// Returns the extra vertical spacing between lines.
func (self *Font) GetLineSpacing() int { return self.lineSpacing }

// Sets the color used by draw calls that don't take an explicit one.
func (self *Font) SetDefaultColor(c color.NRGBA) { self.defaultColor = c }

// Returns the color used by draw calls that don't take an explicit one.
func (self *Font) GetDefaultColor() color.NRGBA { return self.defaultColor }

// Sets the initial capacity of the formatting buffer. The buffer still
// grows when formatted text doesn't fit. Non-positive values restore
// [DefaultBufferSize].
func (self *Font) SetBufferSize(size int) {
	if size <= 0 { size = DefaultBufferSize }
	self.buffer = make([]byte, 0, size)
}

// Returns the current capacity of the formatting buffer.
func (self *Font) GetBufferSize() int { return cap(self.buffer) }

// Shared state reset at the start of every load.
func (self *Font) prepareLoad() {
	self.Free()
	if self.buffer == nil { self.buffer = make([]byte, 0, DefaultBufferSize) }
}
