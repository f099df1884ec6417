package atlas

import "image"

import "github.com/pkg/errors"

// Returned by [Packer.TryPack] once no more rows fit in the atlas.
// Exhaustion is permanent until the next [Packer.Reset].
var ErrExhausted = errors.New("atlas exhausted")

// Returned by [Packer.TryPack] when the requested width can't fit
// in a row even when the row is empty.
var ErrTooWide = errors.New("glyph wider than atlas")

// Returned by [Packer.TryPack] for negative widths.
var ErrInvalidWidth = errors.New("negative glyph width")

// The packing cursor. X and W identify the last packed cell in
// the current row, Y is the current row top and H the row height.
type Cursor struct {
	X, Y, W, H int
}

// A greedy row packer for fixed-height, variable-width cells. Cells are
// placed left to right with a 1px gutter, and rows are stacked top to
// bottom. Packed cells are never moved and the packer never grows.
//
// The zero value is not usable; use [NewPacker]() instead.
type Packer struct {
	cursor Cursor
	width int
	height int
	exhausted bool
}

// Creates a new packer for an area of the given dimensions.
// Non-positive dimensions will panic.
func NewPacker(width, height, lineHeight int) *Packer {
	if width <= 0 || height <= 0 { panic("atlas dimensions must be positive") }
	packer := &Packer{ width: width, height: height }
	packer.Reset(lineHeight)
	return packer
}

// Moves the cursor back to the origin, sets the row height and
// clears any previous exhaustion.
func (self *Packer) Reset(lineHeight int) {
	self.cursor = Cursor{ H: lineHeight }
	self.exhausted = false
}

// Reserves space for a cell of the given width and returns its
// rectangle, which will always have the configured line height.
func (self *Packer) TryPack(width int) (image.Rectangle, error) {
	if self.exhausted { return image.Rectangle{}, ErrExhausted }
	if width < 0 { return image.Rectangle{}, ErrInvalidWidth }
	if width + 1 > self.width {
		return image.Rectangle{}, errors.Wrapf(ErrTooWide, "width %d, atlas width %d", width, self.width)
	}
	if self.cursor.Y + self.cursor.H > self.height {
		self.exhausted = true
		return image.Rectangle{}, ErrExhausted
	}

	cur := &self.cursor
	if cur.X + cur.W + width >= self.width {
		if cur.Y + cur.H + cur.H >= self.height {
			self.exhausted = true
			return image.Rectangle{}, ErrExhausted
		}
		cur.X  = 0
		cur.Y += cur.H
		cur.W  = 0
	}

	cur.X += cur.W + 1
	cur.W  = width
	return image.Rect(cur.X, cur.Y, cur.X + width, cur.Y + cur.H), nil
}

// Overrides the current row width, keeping the cursor position. This
// is used after placing a cell manually at the origin so packing
// continues immediately after the gutter.
func (self *Packer) SetRowWidth(width int) { self.cursor.W = width }

// Returns the current cursor.
func (self *Packer) Cursor() Cursor { return self.cursor }

// Returns whether the packer has run out of space.
func (self *Packer) Exhausted() bool { return self.exhausted }

// Returns the packing area dimensions.
func (self *Packer) Size() (int, int) { return self.width, self.height }
