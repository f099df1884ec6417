// The mask subpackage rasterizes TrueType glyph outlines into alpha
// masks that nfont then copies into the font atlas.
//
// Besides the plain [DefaultRasterizer], a [StyledRasterizer] is provided
// to emulate the oblique, bold and outline styles on fonts that don't
// include them.
package mask

import "image"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (only the fractional part
	// of the coordinates is considered). The mask bounds are relative to
	// the glyph origin, so a mask with Min.Y == -10 starts 10 pixels
	// above the baseline.
	Rasterize(sfnt.Segments, fixed.Point26_6) (*image.Alpha, error)
}

type vectorTracer interface {
	MoveTo(fixed.Point26_6)
	LineTo(fixed.Point26_6)
	QuadTo(fixed.Point26_6, fixed.Point26_6)
	CubeTo(fixed.Point26_6, fixed.Point26_6, fixed.Point26_6)
}

// A low level method to rasterize glyph masks. The image returned will
// be nil if the segments are empty or do not include any active lines or
// curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fixed.Point26_6) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}

// Given the glyph bounds and an origin position indicating the subpixel
// positioning (only lowest bits will be taken into account), it returns
// the bounding integer width and heights, the normalization offset to be
// applied to keep the coordinates in the positive plane, and the final
// offset to be applied on the final mask to align its bounds to the glyph
// origin.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6) (int, int, fixed.Point26_6, image.Point) {
	floorMinX := bounds.Min.X & ^fixed.Int26_6(63)
	floorMinY := bounds.Min.Y & ^fixed.Int26_6(63)
	maskCorrection := image.Pt(floorMinX.Floor(), floorMinY.Floor())

	var normOffset fixed.Point26_6
	normOffset.X = -floorMinX + (origin.X & 63)
	normOffset.Y = -floorMinY + (origin.Y & 63)
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width, height, normOffset, maskCorrection
}

func toFloat32s(point fixed.Point26_6) (float32, float32) {
	return float32(point.X)/64, float32(point.Y)/64
}
