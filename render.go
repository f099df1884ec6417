package nfont

import "strings"

import "github.com/tinne26/nfont/codepoint"

// Draws the given text with its top-left corner at (x, y), returning the
// union of all the glyph destination rects. Line breaks move the pen back
// to x and down by the scaled line height plus line spacing.
func (self *Font) renderLeft(target Target, x, y float32, scale Scale, text string) Rect {
	dirty := Rect{ X: x, Y: y }
	startX := x
	lineAdvance := float32(self.height + self.lineSpacing)*scale.Y
	letterSpacing := float32(self.letterSpacing)*scale.X
	height := float32(self.height)*scale.Y

	for i := 0; i < len(text); {
		code, n := codepoint.Decode(text[i:])
		i += n
		if code == '\n' {
			x = startX
			y += lineAdvance
			continue
		}

		entry, isSpace, found := self.getGlyphOrSpace(code)
		if !found { continue }
		width := float32(entry.Width())*scale.X
		if !isSpace {
			dst := Rect{ x, y, width, height }
			target.Blit(self.atlas, entry.Rect, dst)
			dirty = unionDirty(dirty, dst)
		}
		x += width + letterSpacing
	}
	return dirty
}

// Draws each line of the text centered (or right aligned) at x.
func (self *Font) renderAligned(target Target, x, y float32, scale Scale, align Align, text string) Rect {
	if align == Left { return self.renderLeft(target, x, y, scale, text) }

	dirty := Rect{ X: x, Y: y }
	lineAdvance := float32(self.height + self.lineSpacing)*scale.Y
	for _, line := range strings.Split(text, "\n") {
		width := self.measureLine(line)*scale.X
		lineX := x - width
		if align == Center { lineX = x - width/2 }
		dirty = unionDirty(dirty, self.renderLeft(target, lineX, y, scale, line))
		y += lineAdvance
	}
	return dirty
}

// Returns the pen advance for the given single line, without the
// letter spacing after the last glyph. Glyphs are resolved as in
// renderLeft, so missing glyphs measure as spaces.
func (self *Font) measureLine(line string) float32 {
	width := 0
	counted := false
	for i := 0; i < len(line); {
		code, n := codepoint.Decode(line[i:])
		i += n
		entry, _, found := self.getGlyphOrSpace(code)
		if !found { continue }
		width += entry.Width() + self.letterSpacing
		counted = true
	}
	if counted { width -= self.letterSpacing }
	return float32(width)
}
