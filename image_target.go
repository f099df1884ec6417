package nfont

import "image"
import "image/color"
import "image/draw"
import "math"

import xdraw "golang.org/x/image/draw"

import "github.com/tinne26/nfont/atlas"

var _ Target = (*ImageTarget)(nil)

// A software [Target] for any [draw.Image]. Glyphs are scaled with
// nearest neighbor interpolation and composited over the existing
// pixels.
type ImageTarget struct {
	dst draw.Image
	clip Rect
	clipOn bool
	scratch *image.NRGBA
	interpolator xdraw.Interpolator
}

// Creates a new software target drawing into the given image.
func NewImageTarget(dst draw.Image) *ImageTarget {
	return &ImageTarget{ dst: dst, interpolator: xdraw.NearestNeighbor }
}

// Sets the interpolator used for scaled blits. By default,
// [xdraw.NearestNeighbor] is used.
func (self *ImageTarget) SetInterpolator(interpolator xdraw.Interpolator) {
	if interpolator == nil { interpolator = xdraw.NearestNeighbor }
	self.interpolator = interpolator
}

// Returns the underlying image.
func (self *ImageTarget) Image() draw.Image { return self.dst }

// Satisfies the [Target] interface.
func (self *ImageTarget) GetClip() (Rect, bool) { return self.clip, self.clipOn }

// Satisfies the [Target] interface.
func (self *ImageTarget) SetClip(rect Rect) {
	self.clip, self.clipOn = rect, true
}

// Satisfies the [Target] interface.
func (self *ImageTarget) UnsetClip() { self.clipOn = false }

// Satisfies the [Target] interface.
func (self *ImageTarget) Blit(src *atlas.Atlas, srcRect image.Rectangle, dst Rect) {
	srcRect = srcRect.Intersect(src.Bounds())
	if srcRect.Empty() { return }
	dr := image.Rect(roundInt(dst.X), roundInt(dst.Y), roundInt(dst.Right()), roundInt(dst.Bottom()))
	if dr.Empty() { return }

	var target draw.Image = self.dst
	if self.clipOn {
		target = clippedImage{ self.dst, self.dst.Bounds().Intersect(self.clip.ImageRect()) }
		if target.Bounds().Empty() { return }
	}

	var sr image.Image = src.Image().SubImage(srcRect)
	modulation := src.Modulation()
	if modulation != opaqueWhite {
		sr = self.modulate(src.Image(), srcRect, modulation)
	}
	self.interpolator.Scale(target, dr, sr, sr.Bounds(), draw.Over, nil)
}

// Copies the given atlas region into the scratch image, multiplying
// each pixel by the modulation color.
func (self *ImageTarget) modulate(img *image.NRGBA, rect image.Rectangle, mod color.NRGBA) *image.NRGBA {
	w, h := rect.Dx(), rect.Dy()
	if self.scratch == nil || self.scratch.Rect.Dx() < w || self.scratch.Rect.Dy() < h {
		self.scratch = image.NewNRGBA(image.Rect(0, 0, max(w, 64), max(h, 64)))
	}
	out := self.scratch.SubImage(image.Rect(0, 0, w, h)).(*image.NRGBA)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.NRGBAAt(rect.Min.X + x, rect.Min.Y + y)
			out.SetNRGBA(x, y, color.NRGBA{
				R: mul8(c.R, mod.R), G: mul8(c.G, mod.G),
				B: mul8(c.B, mod.B), A: mul8(c.A, mod.A),
			})
		}
	}
	return out
}

// A draw.Image with reduced bounds, so drawing outside the
// clip rect is discarded while keeping the original coordinates.
type clippedImage struct {
	draw.Image
	bounds image.Rectangle
}

func (self clippedImage) Bounds() image.Rectangle { return self.bounds }

func mul8(a, b uint8) uint8 { return uint8((uint32(a)*uint32(b) + 127)/255) }

func roundInt(x float32) int { return int(math.Floor(float64(x) + 0.5)) }
