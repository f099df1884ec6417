package nfont

import "strings"

import xfont "golang.org/x/image/font"

import "github.com/tinne26/nfont/codepoint"

// Returns the font line height, in pixels.
func (self *Font) GetHeight() int { return self.height }

// Returns the height of the formatted text, counting the line spacing
// between lines but not after the last one.
func (self *Font) GetTextHeight(format string, args ...any) int {
	if format == "" { return 0 }
	numLines := strings.Count(self.format(format, args), "\n") + 1
	return self.height*numLines + self.lineSpacing*(numLines - 1)
}

// Returns the width of the widest line of the formatted text. The
// widths match the pen advance used when drawing, without the letter
// spacing after the last glyph of each line.
func (self *Font) GetWidth(format string, args ...any) int {
	if format == "" || !self.IsLoaded() { return 0 }
	return self.textWidth(self.format(format, args))
}

func (self *Font) textWidth(text string) int {
	var width float32
	for _, line := range strings.Split(text, "\n") {
		width = max(width, self.measureLine(line))
	}
	return ceilInt(width)
}

// Returns the height that [Font.DrawColumn]() would take to draw the
// formatted text wrapped to the given width. If the width is zero or
// the format is empty, the line height is returned.
func (self *Font) GetColumnHeight(width float32, format string, args ...any) int {
	if width == 0 || format == "" || !self.IsLoaded() { return self.height }
	return len(self.wrapLines(self.format(format, args), width))*self.height
}

// Returns the width of the wrapped line prefix that contains the first
// pos bytes of the formatted text, when wrapped to the given width. This
// is useful to place carets. Positions past the end of the text return
// the width of the last line.
func (self *Font) GetColumnPosWidth(width float32, pos int, format string, args ...any) int {
	if width == 0 || pos <= 0 || format == "" || !self.IsLoaded() { return 0 }
	lines := self.wrapLines(self.format(format, args), width)
	for _, line := range lines {
		if pos <= line.span {
			end := seqBoundary(line.text, min(pos, len(line.text)))
			return ceilInt(self.measureLine(line.text[:end]))
		}
		pos -= line.span
	}
	return ceilInt(self.measureLine(lines[len(lines) - 1].text))
}

// Returns the vertical offset of the wrapped line that contains the
// byte at the given position (counting from 1), when the formatted text
// is wrapped to the given width.
func (self *Font) GetColumnPosHeight(width float32, pos int, format string, args ...any) int {
	if width == 0 || pos <= 0 || format == "" || !self.IsLoaded() { return 0 }
	lines := self.wrapLines(self.format(format, args), width)
	for i, line := range lines {
		if pos <= line.span { return i*self.height }
		pos -= line.span
	}
	return (len(lines) - 1)*self.height
}

// Moves end forward until it's not in the middle of a UTF-8 sequence.
func seqBoundary(text string, end int) int {
	for end < len(text) && text[end] >= 0x80 && text[end] < 0xC0 { end++ }
	return end
}

// Returns the font ascent, in pixels.
func (self *Font) GetAscent() int { return self.ascent }

// Returns the font descent, in pixels.
func (self *Font) GetDescent() int { return self.descent }

// Returns the ascent of the given rune, or 0 if the font
// doesn't have it.
func (self *Font) GetRuneAscent(r rune) int {
	ascent, _ := self.codeAscentDescent(codepoint.FromRune(r))
	return ascent
}

// Returns the descent of the given rune, or 0 if the font
// doesn't have it.
func (self *Font) GetRuneDescent(r rune) int {
	_, descent := self.codeAscentDescent(codepoint.FromRune(r))
	return descent
}

// Returns the maximum ascent among the glyphs of the formatted text.
func (self *Font) GetTextAscent(format string, args ...any) int {
	var ascent int
	self.eachCode(format, args, func(code codepoint.Code) {
		codeAscent, _ := self.codeAscentDescent(code)
		ascent = max(ascent, codeAscent)
	})
	return ascent
}

// Returns the maximum descent among the glyphs of the formatted text.
func (self *Font) GetTextDescent(format string, args ...any) int {
	var descent int
	self.eachCode(format, args, func(code codepoint.Code) {
		_, codeDescent := self.codeAscentDescent(code)
		descent = max(descent, codeDescent)
	})
	return descent
}

func (self *Font) eachCode(format string, args []any, fn func(codepoint.Code)) {
	if format == "" || !self.IsLoaded() { return }
	text := self.format(format, args)
	for i := 0; i < len(text); {
		code, n := codepoint.Decode(text[i:])
		i += n
		fn(code)
	}
}

func (self *Font) codeAscentDescent(code codepoint.Code) (int, int) {
	switch source := self.source.(type) {
	case *BitmapSource:
		column, found := source.Column(code)
		if !found { return 0, 0 }
		return sheetAscentDescent(source.image, column, self.baseline, source.background)
	case *TrueTypeSource:
		index := source.glyphIndex(code)
		if index == 0 { return 0, 0 }
		bounds, _, err := source.font.GlyphBounds(&source.buffer, index, source.ppem, xfont.HintingNone)
		if err != nil { return 0, 0 }
		return max(0, (-bounds.Min.Y).Ceil()), max(0, bounds.Max.Y.Ceil())
	default:
		return 0, 0
	}
}

// Returns the baseline row, measured from the top of the glyph cells
// for TrueType sources or from the top of the sheet for bitmap sources.
func (self *Font) GetBaseline() int { return self.baseline }

// Overrides the baseline value. This only affects the values reported
// by the baseline and per glyph ascent and descent queries; glyphs
// already packed are not modified.
func (self *Font) SetBaseline(baseline int) { self.baseline = baseline }

// Returns the width of the widest glyph loaded during the font load.
func (self *Font) GetMaxWidth() int { return self.maxWidth }
