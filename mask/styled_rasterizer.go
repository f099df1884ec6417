package mask

import "image"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

var _ Rasterizer = (*StyledRasterizer)(nil)

// Skew factor commonly used for faux italics (around 11 degrees).
const ItalicSkew float32 = 0.2

// A rasterizer to emulate oblique, bold and outlined text on top of
// a [DefaultRasterizer]. For high quality results, please use the
// font's italic and bold versions directly instead of these fake
// effects.
//
// The outline is applied first, followed by the bold dilation, while
// the skew is applied directly to the outline control points.
type StyledRasterizer struct {
	base DefaultRasterizer
	skew float32
	extraWidth int
	outline bool
	skewed sfnt.Segments // reusable buffer
}

// Sets the oblique skewing factor. Values outside [-1, 1] are clamped.
// A factor of 1 tilts glyphs 45 degrees right, -1 tilts them 45 degrees
// left and 0 disables the effect.
func (self *StyledRasterizer) SetSkewFactor(factor float32) {
	if factor >  1.0 { factor =  1.0 }
	if factor < -1.0 { factor = -1.0 }
	self.skew = factor
}

// Gets the skewing factor.
func (self *StyledRasterizer) GetSkewFactor() float32 { return self.skew }

// Sets the extra horizontal width, in whole pixels, used for the faux
// bold. Negative values are clamped to zero.
func (self *StyledRasterizer) SetExtraWidth(pixels int) {
	if pixels < 0 { pixels = 0 }
	self.extraWidth = pixels
}

// Gets the faux bold extra width.
func (self *StyledRasterizer) GetExtraWidth() int { return self.extraWidth }

// Enables or disables the 1px outline mode. In outline mode only the
// 1px ring around the glyph shape is kept.
func (self *StyledRasterizer) SetOutline(outline bool) { self.outline = outline }

// Returns whether the outline mode is enabled.
func (self *StyledRasterizer) GetOutline() bool { return self.outline }

// Satisfies the [Rasterizer] interface.
func (self *StyledRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	if self.skew != 0 { outline = self.skewOutline(outline) }
	mask, err := self.base.Rasterize(outline, origin)
	if err != nil || mask == nil { return mask, err }
	if self.outline { mask = OutlineRing(mask) }
	if self.extraWidth > 0 { mask = DilateHorz(mask, self.extraWidth) }
	return mask, nil
}

func (self *StyledRasterizer) skewOutline(outline sfnt.Segments) sfnt.Segments {
	self.skewed = append(self.skewed[:0], outline...)
	for i := range self.skewed {
		args := &self.skewed[i].Args
		for j := range args {
			// y grows downwards, so ascenders have negative y
			shift := fixed.Int26_6(float32(-args[j].Y)*self.skew)
			args[j].X += shift
		}
	}
	return self.skewed
}

// Returns a new mask widened by the given number of pixels to the right,
// where each pixel keeps the maximum coverage of the original pixels
// within that distance to its left.
func DilateHorz(mask *image.Alpha, pixels int) *image.Alpha {
	bounds := mask.Rect
	out := image.NewAlpha(image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X + pixels, bounds.Max.Y))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			value := mask.Pix[mask.PixOffset(x, y)]
			if value == 0 { continue }
			for k := 0; k <= pixels; k++ {
				offset := out.PixOffset(x + k, y)
				if out.Pix[offset] < value { out.Pix[offset] = value }
			}
		}
	}
	return out
}

// Returns a new mask 1px bigger on every side containing only the ring
// around the original shape: the 3x3 dilation of the mask minus the mask
// itself.
func OutlineRing(mask *image.Alpha) *image.Alpha {
	bounds := mask.Rect
	out := image.NewAlpha(bounds.Inset(-1))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			value := mask.Pix[mask.PixOffset(x, y)]
			if value == 0 { continue }
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					offset := out.PixOffset(x + dx, y + dy)
					if out.Pix[offset] < value { out.Pix[offset] = value }
				}
			}
		}
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			inner  := mask.Pix[mask.PixOffset(x, y)]
			offset := out.PixOffset(x, y)
			if out.Pix[offset] <= inner {
				out.Pix[offset] = 0
			} else {
				out.Pix[offset] -= inner
			}
		}
	}
	return out
}
