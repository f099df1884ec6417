package nfont

import "image"
import "image/color"

import "github.com/pkg/errors"
import "golang.org/x/text/encoding/charmap"

import "github.com/tinne26/nfont/atlas"
import "github.com/tinne26/nfont/cache"
import "github.com/tinne26/nfont/codepoint"

var ErrNilImage = errors.New("nil glyph sheet")
var ErrNoGlyphColumns = errors.New("glyph sheet has no glyph columns")
var ErrEmptySheet = errors.New("glyph sheet has no visible pixels")

// Default glyph separator color for bitmap sheets.
var Magenta = color.NRGBA{255, 0, 255, 255}

// Default atlas dimensions for bitmap sources.
const DefaultBitmapAtlasSize = 2048

// Glyph sheet columns assigned to the printable ASCII range.
const (
	firstSheetGlyph = 33
	lastSheetGlyph  = 126
	numASCIIColumns = lastSheetGlyph - firstSheetGlyph + 1
)

// Slots of the reference glyphs used to estimate the sheet baseline
// ('a', 'b' and 'c').
const refSlotStart, refSlotEnd = 64, 67

// Options for [Font.LoadBitmap](). The zero value uses magenta separators
// and a 2048x2048 atlas.
type BitmapOptions struct {
	Separator color.Color // glyph column separator in the first row
	AtlasWidth int
	AtlasHeight int

	// Assigns the columns following '~' to the extended range of the
	// given charmap (bytes 161 to 255). If nil, extra columns are ignored.
	Extended *charmap.Charmap
}

func (self *BitmapOptions) separator() color.Color {
	if self == nil || self.Separator == nil { return Magenta }
	return self.Separator
}

func (self *BitmapOptions) atlasSize() (int, int) {
	w, h := DefaultBitmapAtlasSize, DefaultBitmapAtlasSize
	if self != nil && self.AtlasWidth  > 0 { w = self.AtlasWidth  }
	if self != nil && self.AtlasHeight > 0 { h = self.AtlasHeight }
	return w, h
}

// Loads a glyph sheet image. The first row of the sheet delimits the
// glyph columns: runs of pixels different from the separator color are
// assigned to the codepoints 33 to 126, in order. If the load fails, the
// error is logged, false is returned and the font is left empty.
func (self *Font) LoadBitmap(sheet image.Image, opts *BitmapOptions) bool {
	err := self.LoadBitmapErr(sheet, opts)
	if err != nil {
		Logger().Error("nfont: bitmap font load failed", "err", err)
		return false
	}
	return true
}

// Same as [Font.LoadBitmap](), but returning the error.
func (self *Font) LoadBitmapErr(sheet image.Image, opts *BitmapOptions) error {
	self.prepareLoad()
	if sheet == nil { return ErrNilImage }
	bounds := sheet.Bounds()
	if bounds.Dx() < 2 || bounds.Dy() < 2 {
		return errors.Errorf("glyph sheet too small (%dx%d)", bounds.Dx(), bounds.Dy())
	}

	separator := opts.separator()
	columns := scanSheetColumns(sheet, separator)
	if len(columns) == 0 { return ErrNoGlyphColumns }

	source := &BitmapSource{
		image: sheet,
		background: sheet.At(bounds.Min.X, bounds.Max.Y - 1),
		separator: separator,
		columns: make(map[codepoint.Code]image.Rectangle, len(columns)),
	}
	codes := assignSheetCodes(len(columns), opts)
	for i, code := range codes {
		source.columns[code] = columns[i]
	}

	// metrics
	baseline := sheetBaseline(sheet, columns, source.background)
	ascent, descent := sheetAscentDescent(sheet, bounds, baseline, source.background)
	height := ascent + descent
	if height <= 0 { return ErrEmptySheet }
	maxWidth := 0
	for _, column := range columns { maxWidth = max(maxWidth, column.Dx()) }

	// atlas and glyph cells
	atlasWidth, atlasHeight := opts.atlasSize()
	if height > atlasHeight {
		return errors.Errorf("line height %d doesn't fit atlas height %d", height, atlasHeight)
	}
	self.atlas = atlas.New(atlasWidth, atlasHeight, height)
	self.source = source
	self.height, self.ascent, self.descent = height, ascent, descent
	self.baseline, self.maxWidth = baseline, maxWidth
	self.packBitmapGlyphs(source, columns, codes)

	Logger().Debug("nfont: bitmap font loaded",
		"glyphs", self.glyphs.Len(), "height", height, "ascent", ascent,
		"descent", descent, "baseline", baseline, "atlas", self.atlas.Bounds().Size())
	return nil
}

func (self *Font) packBitmapGlyphs(source *BitmapSource, columns []image.Rectangle, codes []codepoint.Code) {
	sheet := source.image
	cellTop := sheet.Bounds().Min.Y + self.baseline - self.ascent

	// synthetic space at the atlas origin, width of the first column
	spaceWidth := min(columns[0].Dx(), self.atlas.Bounds().Dx())
	self.glyphs.Put(' ', cache.Entry{ Rect: image.Rect(0, 0, spaceWidth, self.height) })
	self.atlas.Packer().SetRowWidth(spaceWidth)

	keys := []color.Color{ source.separator, Magenta }
	if isOpaqueImage(sheet) { keys = append(keys, source.background) }
	for i, code := range codes {
		column := columns[i]
		cell, err := self.atlas.TryPack(column.Dx())
		if err != nil {
			self.glyphs.MarkMissing(code)
			self.logPackFailure(code, err)
			continue
		}
		self.atlas.WriteImage(cell, sheet, image.Pt(column.Min.X, cellTop), keys...)
		self.glyphs.Put(code, cache.Entry{ Rect: cell })
	}
}

// Scans row 0 of the sheet from the second pixel for runs of
// non-separator pixels.
func scanSheetColumns(sheet image.Image, separator color.Color) []image.Rectangle {
	bounds := sheet.Bounds()
	y := bounds.Min.Y
	columns := make([]image.Rectangle, 0, numASCIIColumns)
	for x := bounds.Min.X + 1; x < bounds.Max.X; x++ {
		if sameColor(sheet.At(x, y), separator) { continue }
		start := x
		for x < bounds.Max.X && !sameColor(sheet.At(x, y), separator) { x++ }
		columns = append(columns, image.Rect(start, bounds.Min.Y, x, bounds.Max.Y))
	}
	return columns
}

// Returns the codes for the first n sheet columns. Columns beyond the
// supported ranges get no code.
func assignSheetCodes(n int, opts *BitmapOptions) []codepoint.Code {
	codes := make([]codepoint.Code, 0, n)
	for i := 0; i < n && i < numASCIIColumns; i++ {
		codes = append(codes, codepoint.Code(firstSheetGlyph + i))
	}
	if opts == nil || opts.Extended == nil { return codes }
	for i := numASCIIColumns; i < n; i++ {
		b := int(codepoint.ExtendedFirst) + i - numASCIIColumns
		if b > int(codepoint.ExtendedLast) { break }
		codes = append(codes, codepoint.FromCharmapByte(opts.Extended, byte(b)))
	}
	return codes
}

// Averages the lowest non-background row of the reference glyphs,
// scanning the width of the first reference glyph. Sheets with fewer
// columns use their first (up to three) columns instead.
func sheetBaseline(sheet image.Image, columns []image.Rectangle, bg color.Color) int {
	refs := columns
	if len(columns) >= refSlotEnd {
		refs = columns[refSlotStart : refSlotEnd]
	} else if len(refs) > 3 {
		refs = refs[:3]
	}

	bounds := sheet.Bounds()
	scanWidth := refs[0].Dx()
	sum := 0
	for _, ref := range refs {
		endX := min(ref.Min.X + scanWidth, bounds.Max.X)
		for j := bounds.Dy() - 1; j > 0; j-- {
			if rowHasInk(sheet, ref.Min.X, endX, bounds.Min.Y + j, bg) {
				sum += j
				break
			}
		}
	}
	return int(float32(sum)/float32(len(refs)) + 0.5)
}

// Scans the given area rows for the first ink row from the top (above
// the baseline) and from the bottom (below the baseline). Rows are
// relative to area.Min.Y; row 0 is the separator row and is skipped.
func sheetAscentDescent(sheet image.Image, area image.Rectangle, baseline int, bg color.Color) (int, int) {
	var ascent, descent int
	for j := 1; j < baseline && j < area.Dy(); j++ {
		if rowHasInk(sheet, area.Min.X, area.Max.X, area.Min.Y + j, bg) {
			ascent = baseline - j
			break
		}
	}
	for j := area.Dy() - 1; j > 0 && j > baseline; j-- {
		if rowHasInk(sheet, area.Min.X, area.Max.X, area.Min.Y + j, bg) {
			descent = j - baseline
			break
		}
	}
	return ascent, descent
}

func rowHasInk(sheet image.Image, startX, endX, y int, bg color.Color) bool {
	for x := startX; x < endX; x++ {
		if !sameColor(sheet.At(x, y), bg) { return true }
	}
	return false
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func isOpaqueImage(img image.Image) bool {
	opaquer, ok := img.(interface{ Opaque() bool })
	return ok && opaquer.Opaque()
}

func (self *Font) logPackFailure(code codepoint.Code, err error) {
	if errors.Is(err, atlas.ErrExhausted) {
		if self.exhaustionLogged { return }
		self.exhaustionLogged = true
		Logger().Warn("nfont: atlas exhausted", "glyph", code.String(), "cached", self.glyphs.Len())
		return
	}
	Logger().Warn("nfont: glyph can't be packed", "glyph", code.String(), "err", err)
}
