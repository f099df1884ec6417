package nfont

import "image"
import "image/color"
import "unicode/utf8"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/nfont/codepoint"
import "github.com/tinne26/nfont/mask"

// The glyph source of a loaded [Font]: either a *[BitmapSource] or a
// *[TrueTypeSource]. A font holds at most one source at a time.
type GlyphSource interface {
	isGlyphSource()
}

// A glyph source loaded from a glyph sheet image. Bitmap sources have
// a fixed repertoire: only the glyphs present in the sheet are available.
type BitmapSource struct {
	image image.Image
	background color.Color // pixel at the bottom-left corner
	separator color.Color
	columns map[codepoint.Code]image.Rectangle // glyph columns in the sheet
}

func (*BitmapSource) isGlyphSource() {}

// Returns the source sheet image.
func (self *BitmapSource) Image() image.Image { return self.image }

// Returns the horizontal span of the given glyph within the sheet,
// covering the whole sheet height.
func (self *BitmapSource) Column(code codepoint.Code) (image.Rectangle, bool) {
	column, found := self.columns[code]
	return column, found
}

// Returns the number of glyph columns in the sheet.
func (self *BitmapSource) NumGlyphs() int { return len(self.columns) }

// A glyph source backed by a TrueType or OpenType font. Glyphs are
// rasterized on demand the first time they are requested.
type TrueTypeSource struct {
	font *sfnt.Font
	buffer sfnt.Buffer
	ppem fixed.Int26_6
	style Style
	rasterizer mask.StyledRasterizer
	fg color.NRGBA
	bg *color.NRGBA
	owned bool
}

func (*TrueTypeSource) isGlyphSource() {}

var replacementCode = codepoint.FromRune(utf8.RuneError)

// Returns the underlying font.
func (self *TrueTypeSource) Font() *sfnt.Font { return self.font }

// Returns the font size in pixels per em.
func (self *TrueTypeSource) Size() float64 { return float64(self.ppem)/64 }

// Returns the style flags used to rasterize glyphs.
func (self *TrueTypeSource) Style() Style { return self.style }

// Returns whether the font was parsed by nfont itself (and is thus
// released when the source is freed), or provided by the caller.
func (self *TrueTypeSource) Owned() bool { return self.owned }

// Returns the glyph index for the given code, or zero
// if the font doesn't have it.
func (self *TrueTypeSource) glyphIndex(code codepoint.Code) sfnt.GlyphIndex {
	r := code.Rune()
	if r == utf8.RuneError && code != replacementCode { return 0 } // malformed
	index, err := self.font.GlyphIndex(&self.buffer, r)
	if err != nil { return 0 }
	return index
}

func (self *TrueTypeSource) free() {
	self.font = nil
	self.buffer = sfnt.Buffer{}
}
