// Package ebitentarget provides an nfont.Target that draws on
// Ebitengine images.
//
// Atlases are uploaded to the GPU the first time they are used, and
// their pixels are written again whenever new glyphs have been packed
// into them.
package ebitentarget

import "image"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/nfont"
import "github.com/tinne26/nfont/atlas"

var _ nfont.Target = (*Target)(nil)

type uploadedAtlas struct {
	image *ebiten.Image
	pixels []byte
	version uint64
}

// A [nfont.Target] drawing on an *ebiten.Image.
type Target struct {
	dst *ebiten.Image
	clip nfont.Rect
	clipOn bool
	filter ebiten.Filter
	atlases map[*atlas.Atlas]*uploadedAtlas
}

// Creates a new target drawing on the given image.
func New(dst *ebiten.Image) *Target {
	return &Target{
		dst: dst,
		filter: ebiten.FilterNearest,
		atlases: make(map[*atlas.Atlas]*uploadedAtlas, 1),
	}
}

// Changes the image to draw on. Uploaded atlases are kept.
func (self *Target) SetImage(dst *ebiten.Image) { self.dst = dst }

// Returns the image being drawn on.
func (self *Target) Image() *ebiten.Image { return self.dst }

// Sets the filter used for scaled blits. Defaults to [ebiten.FilterNearest].
func (self *Target) SetFilter(filter ebiten.Filter) { self.filter = filter }

// Satisfies the [nfont.Target] interface.
func (self *Target) GetClip() (nfont.Rect, bool) { return self.clip, self.clipOn }

// Satisfies the [nfont.Target] interface.
func (self *Target) SetClip(rect nfont.Rect) { self.clip, self.clipOn = rect, true }

// Satisfies the [nfont.Target] interface.
func (self *Target) UnsetClip() { self.clipOn = false }

// Satisfies the [nfont.Target] interface.
func (self *Target) Blit(src *atlas.Atlas, srcRect image.Rectangle, dst nfont.Rect) {
	if self.dst == nil || srcRect.Empty() || dst.Empty() { return }
	target := self.dst
	if self.clipOn {
		clipRect := self.dst.Bounds().Intersect(self.clip.ImageRect())
		if clipRect.Empty() { return }
		target = self.dst.SubImage(clipRect).(*ebiten.Image)
	}

	glyph := self.upload(src).SubImage(srcRect).(*ebiten.Image)
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(dst.W)/float64(srcRect.Dx()), float64(dst.H)/float64(srcRect.Dy()))
	opts.GeoM.Translate(float64(dst.X), float64(dst.Y))
	mod := src.Modulation()
	opts.ColorM.Scale(float64(mod.R)/255, float64(mod.G)/255, float64(mod.B)/255, float64(mod.A)/255)
	opts.Filter = self.filter
	target.DrawImage(glyph, &opts)
}

// Returns the GPU image for the given atlas, writing its pixels again
// if its contents changed since the last upload. The GPU image is only
// reallocated when the atlas size changes.
func (self *Target) upload(src *atlas.Atlas) *ebiten.Image {
	uploaded, found := self.atlases[src]
	if found && uploaded.version == src.Version() { return uploaded.image }

	img := src.Image()
	if !found {
		uploaded = &uploadedAtlas{}
		self.atlases[src] = uploaded
	}
	if uploaded.image == nil || uploaded.image.Bounds().Size() != img.Rect.Size() {
		if uploaded.image != nil { uploaded.image.Dispose() }
		uploaded.image = ebiten.NewImage(img.Rect.Dx(), img.Rect.Dy())
	}
	uploaded.pixels = premultiply(uploaded.pixels, img)
	uploaded.image.WritePixels(uploaded.pixels)
	uploaded.version = src.Version()
	return uploaded.image
}

// Converts the non-premultiplied atlas pixels to the premultiplied
// RGBA layout expected by [ebiten.Image.WritePixels], reusing buffer
// when it has enough capacity.
func premultiply(buffer []byte, img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if cap(buffer) < 4*w*h { buffer = make([]byte, 4*w*h) }
	buffer = buffer[ : 4*w*h]
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride + 4*w]
		out := buffer[4*w*y : 4*w*(y + 1)]
		for i := 0; i < len(row); i += 4 {
			a := uint32(row[i + 3])
			out[i + 0] = uint8((uint32(row[i + 0])*a + 127)/255)
			out[i + 1] = uint8((uint32(row[i + 1])*a + 127)/255)
			out[i + 2] = uint8((uint32(row[i + 2])*a + 127)/255)
			out[i + 3] = uint8(a)
		}
	}
	return buffer
}

// Releases the GPU image for the given atlas. Call it after
// freeing or reloading a font drawn with this target.
func (self *Target) Forget(src *atlas.Atlas) {
	uploaded, found := self.atlases[src]
	if !found { return }
	uploaded.image.Dispose()
	delete(self.atlases, src)
}

// Releases all the uploaded atlases.
func (self *Target) Dispose() {
	for src := range self.atlases { self.Forget(src) }
}
