package nfont

import "github.com/tinne26/nfont/codepoint"

// Time, amplitude and frequency parameters for animated drawing.
type AnimParams struct {
	T float32 // time, typically in seconds
	AmplitudeX float32
	AmplitudeY float32
	FrequencyX float32
	FrequencyY float32
}

// Creates animation parameters for the given time, with amplitudes
// of 20 pixels and frequencies of 1.
func NewAnimParams(t float32) AnimParams {
	return AnimParams{ T: t, AmplitudeX: 20, AmplitudeY: 20, FrequencyX: 1, FrequencyY: 1 }
}

// The layout state of an animated draw call, passed to the placement
// strategy for each glyph. A new context is created for each call.
type AnimContext struct {
	Font *Font
	Target Target
	Text string // the whole formatted text

	Index int     // index of the current glyph in the text, from 0
	LetterNum int // glyph number within the current word, from 1
	WordNum int   // word number within the current line, from 1
	LineNum int   // line number, from 1

	StartX float32 // pen position at the start of the call
	StartY float32
	Align Align

	UserData any // arbitrary data passed by the caller
	DirtyRect Rect

	textWidth int
	textWidthKnown bool
}

// Returns the width of the whole text, as given by [Font.GetWidth]().
// The value is computed only once per call.
func (self *AnimContext) TextWidth() float32 {
	if !self.textWidthKnown {
		self.textWidth = self.Font.textWidth(self.Text)
		self.textWidthKnown = true
	}
	return float32(self.textWidth)
}

// A PlacementStrategy decides where each glyph is drawn during animated
// draws. The pen is the natural glyph position. The returned position is
// only used to draw the glyph: the layout keeps advancing from the
// natural position, so strategies don't need to track any history.
type PlacementStrategy interface {
	Place(pen Point, params AnimParams, ctx *AnimContext) Point
}

// Adapter to use a function as a [PlacementStrategy].
type PlacementFunc func(pen Point, params AnimParams, ctx *AnimContext) Point

// Satisfies the [PlacementStrategy] interface.
func (self PlacementFunc) Place(pen Point, params AnimParams, ctx *AnimContext) Point {
	return self(pen, params, ctx)
}

// Draws the formatted text with the glyph positions decided by the given
// strategy. A nil strategy draws the text as [Font.Draw]() would.
func (self *Font) DrawAnimated(target Target, x, y float32, params AnimParams, strategy PlacementStrategy, format string, args ...any) Rect {
	return self.DrawAnimatedData(target, x, y, params, strategy, Left, nil, format, args...)
}

// Same as [Font.DrawAnimated](), passing the alignment to the strategy.
// The alignment is applied by the strategy itself, as the built-in
// effects do.
func (self *Font) DrawAnimatedAlign(target Target, x, y float32, params AnimParams, strategy PlacementStrategy, align Align, format string, args ...any) Rect {
	return self.DrawAnimatedData(target, x, y, params, strategy, align, nil, format, args...)
}

// Same as [Font.DrawAnimatedAlign](), also passing arbitrary user
// data to the strategy through [AnimContext].UserData.
func (self *Font) DrawAnimatedData(target Target, x, y float32, params AnimParams, strategy PlacementStrategy, align Align, userData any, format string, args ...any) Rect {
	if !self.canDraw(target, format) { return Rect{ X: x, Y: y } }
	defer self.modulate(self.defaultColor)()
	ctx := AnimContext{
		Font: self,
		Target: target,
		Text: self.format(format, args),
		StartX: x,
		StartY: y,
		Align: align,
		UserData: userData,
	}
	return self.renderAnimated(&ctx, params, strategy)
}

func (self *Font) renderAnimated(ctx *AnimContext, params AnimParams, strategy PlacementStrategy) Rect {
	x, y := ctx.StartX, ctx.StartY
	ctx.DirtyRect = Rect{ X: x, Y: y }
	ctx.Index, ctx.LetterNum, ctx.WordNum, ctx.LineNum = -1, 0, 1, 1
	height := float32(self.height)
	letterSpacing := float32(self.letterSpacing)

	text := ctx.Text
	for i := 0; i < len(text); {
		code, n := codepoint.Decode(text[i:])
		i += n
		ctx.Index += 1
		ctx.LetterNum += 1

		if code == '\n' {
			ctx.LetterNum = 1
			ctx.WordNum = 1
			ctx.LineNum += 1
			x = ctx.StartX
			y += height + float32(self.lineSpacing)
			continue
		}

		entry, isSpace, found := self.getGlyphOrSpace(code)
		if !found { continue }
		width := float32(entry.Width())
		if isSpace {
			ctx.LetterNum = 1
			ctx.WordNum += 1
			x += width + letterSpacing
			continue
		}

		pen := Point{ x, y }
		if strategy != nil { pen = strategy.Place(pen, params, ctx) }
		dst := Rect{ pen.X, pen.Y, width, height }
		ctx.Target.Blit(self.atlas, entry.Rect, dst)
		ctx.DirtyRect = unionDirty(ctx.DirtyRect, dst)
		x += width + letterSpacing
	}
	return ctx.DirtyRect
}
