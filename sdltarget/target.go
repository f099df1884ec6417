// Package sdltarget provides an nfont.Target that draws with an SDL2
// renderer.
//
// Atlases are converted to textures the first time
// they are used, and rebuilt whenever new glyphs have been packed into
// them. Color modulation uses the texture color and alpha mods.
package sdltarget

import "image"

import "github.com/pkg/errors"
import "github.com/veandco/go-sdl2/sdl"

import "github.com/tinne26/nfont"
import "github.com/tinne26/nfont/atlas"

var _ nfont.Target = (*Target)(nil)

type uploadedAtlas struct {
	texture *sdl.Texture
	version uint64
}

// A [nfont.Target] drawing with an *sdl.Renderer. Errors reported by
// SDL during blits are logged with the nfont logger.
type Target struct {
	renderer *sdl.Renderer
	clip nfont.Rect
	clipOn bool
	atlases map[*atlas.Atlas]*uploadedAtlas
}

// Creates a new target drawing with the given renderer.
func New(renderer *sdl.Renderer) *Target {
	return &Target{
		renderer: renderer,
		atlases: make(map[*atlas.Atlas]*uploadedAtlas, 1),
	}
}

// Returns the underlying renderer.
func (self *Target) Renderer() *sdl.Renderer { return self.renderer }

// Satisfies the [nfont.Target] interface.
func (self *Target) GetClip() (nfont.Rect, bool) { return self.clip, self.clipOn }

// Satisfies the [nfont.Target] interface.
func (self *Target) SetClip(rect nfont.Rect) {
	self.clip, self.clipOn = rect, true
	r := rect.ImageRect()
	sdlRect := sdl.Rect{ X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy()) }
	if err := self.renderer.SetClipRect(&sdlRect); err != nil {
		nfont.Logger().Warn("sdltarget: can't set clip rect", "err", err)
	}
}

// Satisfies the [nfont.Target] interface.
func (self *Target) UnsetClip() {
	self.clipOn = false
	if err := self.renderer.SetClipRect(nil); err != nil {
		nfont.Logger().Warn("sdltarget: can't unset clip rect", "err", err)
	}
}

// Satisfies the [nfont.Target] interface.
func (self *Target) Blit(src *atlas.Atlas, srcRect image.Rectangle, dst nfont.Rect) {
	if srcRect.Empty() || dst.Empty() { return }
	texture, err := self.upload(src)
	if err != nil {
		nfont.Logger().Error("sdltarget: atlas upload failed", "err", err)
		return
	}

	mod := src.Modulation()
	if err := texture.SetColorMod(mod.R, mod.G, mod.B); err != nil {
		nfont.Logger().Warn("sdltarget: can't set color mod", "err", err)
	}
	if err := texture.SetAlphaMod(mod.A); err != nil {
		nfont.Logger().Warn("sdltarget: can't set alpha mod", "err", err)
	}
	sr := sdl.Rect{ X: int32(srcRect.Min.X), Y: int32(srcRect.Min.Y), W: int32(srcRect.Dx()), H: int32(srcRect.Dy()) }
	dr := sdl.FRect{ X: dst.X, Y: dst.Y, W: dst.W, H: dst.H }
	if err := self.renderer.CopyF(texture, &sr, &dr); err != nil {
		nfont.Logger().Warn("sdltarget: glyph copy failed", "err", err)
	}
}

// Returns the texture for the given atlas, rebuilding it if
// the atlas contents changed since the last upload.
func (self *Target) upload(src *atlas.Atlas) (*sdl.Texture, error) {
	uploaded, found := self.atlases[src]
	if found && uploaded.version == src.Version() { return uploaded.texture, nil }

	texture, err := self.createTexture(src.Image())
	if err != nil { return nil, err }
	if found { uploaded.texture.Destroy() }
	self.atlases[src] = &uploadedAtlas{ texture: texture, version: src.Version() }
	return texture, nil
}

func (self *Target) createTexture(img *image.NRGBA) (*sdl.Texture, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil { return nil, errors.Wrap(err, "creating atlas surface") }
	defer surface.Free()

	if err := surface.Lock(); err != nil { return nil, errors.Wrap(err, "locking atlas surface") }
	pixels, pitch := surface.Pixels(), int(surface.Pitch)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride + w*4]
		copy(pixels[y*pitch : y*pitch + w*4], row)
	}
	surface.Unlock()

	texture, err := self.renderer.CreateTextureFromSurface(surface)
	if err != nil { return nil, errors.Wrap(err, "creating atlas texture") }
	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		texture.Destroy()
		return nil, errors.Wrap(err, "setting atlas blend mode")
	}
	return texture, nil
}

// Destroys the texture for the given atlas. Call it after freeing
// or reloading a font drawn with this target.
func (self *Target) Forget(src *atlas.Atlas) {
	uploaded, found := self.atlases[src]
	if !found { return }
	uploaded.texture.Destroy()
	delete(self.atlases, src)
}

// Destroys all the atlas textures.
func (self *Target) Destroy() {
	for src := range self.atlases { self.Forget(src) }
}
