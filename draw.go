package nfont

import "image/color"

// All draw functions take printf-style formats. If the format is empty,
// the target is nil or the font is not loaded, nothing is drawn and a
// zero size rect at the given position is returned.

func (self *Font) canDraw(target Target, format string) bool {
	return format != "" && target != nil && self.IsLoaded()
}

// Sets the atlas modulation and returns the function that
// resets it to opaque white.
func (self *Font) modulate(c color.NRGBA) func() {
	self.atlas.SetModulation(c)
	return self.atlas.ResetModulation
}

// Draws the formatted text with its top-left corner at (x, y), using
// the default color. Returns the rect covering all the drawn glyphs.
func (self *Font) Draw(target Target, x, y float32, format string, args ...any) Rect {
	if !self.canDraw(target, format) { return Rect{ X: x, Y: y } }
	defer self.modulate(self.defaultColor)()
	return self.renderLeft(target, x, y, NoScale, self.format(format, args))
}

// Draws the formatted text aligned horizontally to x. Each line is
// aligned independently.
func (self *Font) DrawAlign(target Target, x, y float32, align Align, format string, args ...any) Rect {
	if !self.canDraw(target, format) { return Rect{ X: x, Y: y } }
	defer self.modulate(self.defaultColor)()
	return self.renderAligned(target, x, y, NoScale, align, self.format(format, args))
}

// Draws the formatted text scaled by the given factors.
func (self *Font) DrawScale(target Target, x, y float32, scale Scale, format string, args ...any) Rect {
	if !self.canDraw(target, format) { return Rect{ X: x, Y: y } }
	defer self.modulate(self.defaultColor)()
	return self.renderLeft(target, x, y, scale, self.format(format, args))
}

// Draws the formatted text with the given color instead of the
// default one.
func (self *Font) DrawColor(target Target, x, y float32, c color.NRGBA, format string, args ...any) Rect {
	if !self.canDraw(target, format) { return Rect{ X: x, Y: y } }
	defer self.modulate(c)()
	return self.renderLeft(target, x, y, NoScale, self.format(format, args))
}

// Draws the formatted text with the alignment, scale and color set in
// the given effect.
func (self *Font) DrawEffect(target Target, x, y float32, effect Effect, format string, args ...any) Rect {
	if !self.canDraw(target, format) { return Rect{ X: x, Y: y } }
	c := self.defaultColor
	if effect.UseColor { c = effect.Color }
	defer self.modulate(c)()
	return self.renderAligned(target, x, y, effect.Scale, effect.Align, self.format(format, args))
}

// Draws the formatted text word wrapped within the given box, clipping
// anything that falls outside. The previous target clip is restored
// before returning. Returns the box itself.
func (self *Font) DrawBox(target Target, box Rect, format string, args ...any) Rect {
	return self.drawBox(target, box, Left, self.defaultColor, format, args)
}

// Same as [Font.DrawBox](), with each line aligned within the box.
func (self *Font) DrawBoxAlign(target Target, box Rect, align Align, format string, args ...any) Rect {
	return self.drawBox(target, box, align, self.defaultColor, format, args)
}

// Same as [Font.DrawBox](), with the given color instead of the
// default one.
func (self *Font) DrawBoxColor(target Target, box Rect, c color.NRGBA, format string, args ...any) Rect {
	return self.drawBox(target, box, Left, c, format, args)
}

func (self *Font) drawBox(target Target, box Rect, align Align, c color.NRGBA, format string, args []any) Rect {
	if !self.canDraw(target, format) { return Rect{ X: box.X, Y: box.Y } }
	defer acquireClip(target, box)()
	defer self.modulate(c)()

	x := box.X
	switch align {
	case Center: x += box.W/2
	case Right : x += box.W
	}
	self.drawWrapped(target, x, box.Y, box.W, align, self.format(format, args))
	return box
}

// Draws the formatted text word wrapped to the given width, without
// any vertical limit or clipping. Returns the rect covering the whole
// column, with the height taken by the text.
func (self *Font) DrawColumn(target Target, x, y, width float32, format string, args ...any) Rect {
	return self.DrawColumnAlign(target, x, y, width, Left, format, args...)
}

// Same as [Font.DrawColumn](), with each line aligned horizontally
// to x.
func (self *Font) DrawColumnAlign(target Target, x, y, width float32, align Align, format string, args ...any) Rect {
	if !self.canDraw(target, format) { return Rect{ X: x, Y: y } }
	defer self.modulate(self.defaultColor)()
	endY := self.drawWrapped(target, x, y, width, align, self.format(format, args))
	return Rect{ x, y, width, endY - y }
}

// Draws the wrapped text lines, one line height apart, and returns
// the y coordinate after the last line.
func (self *Font) drawWrapped(target Target, x, y, width float32, align Align, text string) float32 {
	for _, line := range self.wrapLines(text, width) {
		self.renderAligned(target, x, y, NoScale, align, line.text)
		y += float32(self.height)
	}
	return y
}
