package nfont

import "image"

import "github.com/tinne26/nfont/atlas"

// A Target wraps the rendering backend that fonts draw on.
//
// Fonts only keep a non-owning reference to targets for the duration
// of a draw call.
type Target interface {
	// Draws the srcRect region of the atlas image into the dst rect,
	// scaling as necessary and applying the atlas modulation
	// (see [atlas.Atlas.Modulation]()). The atlas pixels may change
	// between calls; [atlas.Atlas.Version]() can be used to detect it.
	Blit(src *atlas.Atlas, srcRect image.Rectangle, dst Rect)

	// Returns the current clip rect and whether clipping is enabled.
	GetClip() (Rect, bool)

	// Enables clipping to the given rect.
	SetClip(Rect)

	// Disables clipping.
	UnsetClip()
}

// Restores the clip state of a target. Returned by [acquireClip].
type clipRestorer func()

// Intersects the target clip with the given rect and returns a
// function that restores the previous clip state.
func acquireClip(target Target, rect Rect) clipRestorer {
	prevClip, hadClip := target.GetClip()
	if hadClip {
		target.SetClip(prevClip.Intersect(rect))
		return func() { target.SetClip(prevClip) }
	}
	target.SetClip(rect)
	return target.UnsetClip
}
