package nfont

import "image"
import "image/color"

// Horizontal text alignment.
type Align uint8

const (
	Left Align = iota
	Center
	Right
)

// Returns "Left", "Center" or "Right".
func (self Align) String() string {
	switch self {
	case Left   : return "Left"
	case Center : return "Center"
	case Right  : return "Right"
	default:
		return "UnknownAlign"
	}
}

// A 2D point with float32 coordinates.
type Point struct {
	X, Y float32
}

// Horizontal and vertical scaling factors.
type Scale struct {
	X, Y float32
}

// The identity scale.
var NoScale = Scale{ X: 1, Y: 1 }

// An axis-aligned rectangle with float32 coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Returns the right edge of the rect.
func (self Rect) Right() float32 { return self.X + self.W }

// Returns the bottom edge of the rect.
func (self Rect) Bottom() float32 { return self.Y + self.H }

// Returns whether the rect has zero area.
func (self Rect) Empty() bool { return self.W <= 0 || self.H <= 0 }

// Returns the smallest rect containing both rects.
func (self Rect) Union(other Rect) Rect {
	minX, minY := min(self.X, other.X), min(self.Y, other.Y)
	maxX, maxY := max(self.Right(), other.Right()), max(self.Bottom(), other.Bottom())
	return Rect{ minX, minY, maxX - minX, maxY - minY }
}

// Returns the intersection of both rects. If they don't overlap,
// the result is a zero size rect at the clamped position.
func (self Rect) Intersect(other Rect) Rect {
	minX, minY := max(self.X, other.X), max(self.Y, other.Y)
	maxX, maxY := min(self.Right(), other.Right()), min(self.Bottom(), other.Bottom())
	if maxX < minX { maxX = minX }
	if maxY < minY { maxY = minY }
	return Rect{ minX, minY, maxX - minX, maxY - minY }
}

// Converts the rect to an image.Rectangle, rounding outwards.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(floorInt(self.X), floorInt(self.Y), ceilInt(self.Right()), ceilInt(self.Bottom()))
}

// Dirty rect accumulation: a zero-area rect is replaced by the
// first non-empty one instead of extending it.
func unionDirty(dirty, rect Rect) Rect {
	if rect.W == 0 && rect.H == 0 { return dirty }
	if dirty.W == 0 && dirty.H == 0 { return rect }
	return dirty.Union(rect)
}

// Drawing parameters that can be passed together to [Font.DrawEffect]().
type Effect struct {
	Align Align
	Scale Scale
	UseColor bool // when false, the font default color is used
	Color color.NRGBA
}

// Creates an effect with the given alignment, no scaling and
// the font's default color.
func NewEffect(align Align) Effect {
	return Effect{ Align: align, Scale: NoScale }
}

var opaqueWhite = color.NRGBA{255, 255, 255, 255}

func floorInt(x float32) int {
	i := int(x)
	if float32(i) > x { i -= 1 }
	return i
}

func ceilInt(x float32) int {
	i := int(x)
	if float32(i) < x { i += 1 }
	return i
}
