package nfont

import "os"
import "fmt"
import "image"
import "image/png"
import "image/color"
import "testing"

import "github.com/tinne26/nfont/atlas"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// Exports the image as a PNG when NFONT_DEBUG_EXPORT is set,
// for manual inspection of test results.
func debugExport(name string, img image.Image) {
	if os.Getenv("NFONT_DEBUG_EXPORT") == "" { return }
	file, err := os.Create(name)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	err = png.Encode(file, img)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	err = file.Close()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// --- recording target ---

type blitRecord struct {
	src image.Rectangle
	dst Rect
	modulation color.NRGBA
	clip Rect
	clipOn bool
}

// A target that records blits instead of drawing them.
type recordingTarget struct {
	blits []blitRecord
	clip Rect
	clipOn bool
}

func (self *recordingTarget) Blit(src *atlas.Atlas, srcRect image.Rectangle, dst Rect) {
	self.blits = append(self.blits, blitRecord{
		src: srcRect, dst: dst, modulation: src.Modulation(),
		clip: self.clip, clipOn: self.clipOn,
	})
}

func (self *recordingTarget) GetClip() (Rect, bool) { return self.clip, self.clipOn }
func (self *recordingTarget) SetClip(rect Rect) { self.clip, self.clipOn = rect, true }
func (self *recordingTarget) UnsetClip() { self.clipOn = false }
func (self *recordingTarget) reset() { self.blits = self.blits[:0] }

// --- synthetic glyph sheets ---

// Test sheets are 12 pixels high. Glyph ink covers rows 2 to 9, so the
// baseline is 9 and the ascent 7. The 'g' column also has ink on rows
// 10 and 11, for a descent of 2.
const testSheetHeight = 12
const testInkTop, testBaseline = 2, 9
const testAscent, testDescent = 7, 2

var testInk = color.NRGBA{255, 255, 255, 255}

// Creates a glyph sheet with one column for each printable ASCII
// glyph from '!' to '~', all of the given width.
func newTestSheet(columnWidth int) *image.NRGBA {
	return newTestSheetN(numASCIIColumns, columnWidth)
}

func newTestSheetN(numColumns int, columnWidth int) *image.NRGBA {
	return newTestSheetFunc(numColumns, func(rune) int { return columnWidth })
}

// Creates a glyph sheet with the given number of columns, starting
// at '!', and the widths returned by widthOf for each glyph.
func newTestSheetFunc(numColumns int, widthOf func(rune) int) *image.NRGBA {
	sheetWidth := 1
	for i := 0; i < numColumns; i++ { sheetWidth += widthOf(rune(firstSheetGlyph + i)) + 1 }
	sheet := image.NewNRGBA(image.Rect(0, 0, sheetWidth, testSheetHeight))
	x := 0
	sheet.SetNRGBA(x, 0, Magenta)
	x += 1
	for i := 0; i < numColumns; i++ {
		glyph := rune(firstSheetGlyph + i)
		bottom := testBaseline
		if glyph == 'g' { bottom = testSheetHeight - 1 }
		columnWidth := widthOf(glyph)
		for cx := x; cx < x + columnWidth; cx++ {
			for y := testInkTop; y <= bottom; y++ { sheet.SetNRGBA(cx, y, testInk) }
		}
		x += columnWidth
		sheet.SetNRGBA(x, 0, Magenta)
		x += 1
	}
	return sheet
}

// Returns a font loaded from a test sheet with 4 pixel wide glyphs.
func newTestBitmapFont(t testing.TB) *Font {
	t.Helper()
	font := New()
	err := font.LoadBitmapErr(newTestSheet(4), nil)
	if err != nil { t.Fatal(err) }
	return font
}
