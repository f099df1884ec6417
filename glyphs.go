package nfont

import "image"
import "image/draw"

import "github.com/pkg/errors"
import "golang.org/x/image/math/fixed"
import xfont "golang.org/x/image/font"

import "github.com/tinne26/nfont/cache"
import "github.com/tinne26/nfont/codepoint"
import "github.com/tinne26/nfont/mask"

var errGlyphNotInFont = errors.New("glyph not in font")

// Returns the cache entry for the given code, rasterizing and packing
// it first if the source is a TrueType font. Failed lookups are
// memoized, as the atlas can't grow and sources can't change without
// a reload.
func (self *Font) getGlyph(code codepoint.Code) (cache.Entry, bool) {
	entry, found := self.glyphs.Get(code)
	if found { return entry, true }
	if self.glyphs.IsMissing(code) { return cache.Entry{}, false }

	source, isTrueType := self.source.(*TrueTypeSource)
	if !isTrueType {
		self.glyphs.MarkMissing(code) // fixed repertoire
		return cache.Entry{}, false
	}

	entry, err := self.addTrueTypeGlyph(source, code)
	if err != nil {
		self.glyphs.MarkMissing(code)
		if err != errGlyphNotInFont { self.logPackFailure(code, err) }
		return cache.Entry{}, false
	}
	self.glyphs.Put(code, entry)
	return entry, true
}

// Returns the glyph for the given code, or the space glyph as
// a fallback. If neither is available, found will be false.
func (self *Font) getGlyphOrSpace(code codepoint.Code) (entry cache.Entry, isSpace bool, found bool) {
	if code != ' ' {
		entry, found = self.getGlyph(code)
		if found { return entry, false, true }
	}
	entry, found = self.getGlyph(' ')
	return entry, true, found
}

// Rasterizes a single glyph, packs it into the atlas and writes it.
func (self *Font) addTrueTypeGlyph(source *TrueTypeSource, code codepoint.Code) (cache.Entry, error) {
	index := source.glyphIndex(code)
	if index == 0 { return cache.Entry{}, errGlyphNotInFont }

	advance, err := source.font.GlyphAdvance(&source.buffer, index, source.ppem, xfont.HintingNone)
	if err != nil { return cache.Entry{}, errors.Wrap(err, "glyph advance") }
	advanceWidth := advance.Round() + source.rasterizer.GetExtraWidth()
	dotX := 0
	if source.style.Has(StyleOutline) {
		advanceWidth += 2
		dotX = 1
	}
	if advanceWidth < 0 { advanceWidth = 0 }

	segments, err := source.font.LoadGlyph(&source.buffer, index, source.ppem, nil)
	if err != nil { return cache.Entry{}, errors.Wrap(err, "loading glyph outline") }
	glyphMask, err := mask.Rasterize(segments, &source.rasterizer, fixed.Point26_6{})
	if err != nil { return cache.Entry{}, errors.Wrap(err, "rasterizing glyph") }

	// the cell covers both the advance and any ink overhang, and
	// the pen advances by the whole cell width
	width := advanceWidth
	if glyphMask != nil {
		shift := max(0, -(dotX + glyphMask.Rect.Min.X))
		dotX += shift
		width = max(advanceWidth + shift, dotX + glyphMask.Rect.Max.X)
	}

	cell, err := self.atlas.TryPack(width)
	if err != nil { return cache.Entry{}, err }

	cellMask := image.NewAlpha(image.Rect(0, 0, width, self.height))
	if glyphMask != nil {
		dst := glyphMask.Rect.Add(image.Pt(dotX, self.baseline))
		draw.Draw(cellMask, dst, glyphMask, glyphMask.Rect.Min, draw.Over)
	}
	self.drawDecorations(cellMask, source.style)

	fg := opaqueWhite
	if source.bg != nil { fg = source.fg }
	self.atlas.WriteAlpha(cell, cellMask, fg, source.bg)
	return cache.Entry{ Rect: cell }, nil
}

// Draws underline and strikethrough lines across the whole cell,
// so consecutive glyphs form continuous lines.
func (self *Font) drawDecorations(cellMask *image.Alpha, style Style) {
	thickness := max(1, self.height/16)
	if style.Has(StyleUnderline) {
		y := min(self.baseline + max(1, self.descent/3), self.height - thickness)
		fillAlphaRows(cellMask, y, thickness)
	}
	if style.Has(StyleStrikethrough) {
		y := self.baseline - (self.ascent*3)/10 - thickness/2
		fillAlphaRows(cellMask, y, thickness)
	}
}

func fillAlphaRows(img *image.Alpha, y, rows int) {
	rect := image.Rect(img.Rect.Min.X, y, img.Rect.Max.X, y + rows).Intersect(img.Rect)
	draw.Draw(img, rect, image.Opaque, image.Point{}, draw.Src)
}
