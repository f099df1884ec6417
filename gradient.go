package nfont

import "image/color"
import "image/draw"

// Recolors the glyph pixels of a bitmap glyph sheet with a vertical
// gradient from top to bottom, keeping their alpha. Row 0 (the separator
// row), separator pixels and pixels matching the background (the pixel
// at the bottom-left corner) are left untouched.
//
// The gradient starts at row 2 and spans the sheet height minus
// heightAdjust rows, so it can be fitted to the glyph area instead of
// the whole sheet. Use it before [Font.LoadBitmap]().
func VerticalGradient(sheet draw.Image, top, bottom color.Color, heightAdjust int) {
	bounds := sheet.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 1 { return }
	background := sheet.At(bounds.Min.X, bounds.Max.Y - 1)
	topRGBA := color.NRGBAModel.Convert(top).(color.NRGBA)
	bottomRGBA := color.NRGBAModel.Convert(bottom).(color.NRGBA)

	span := float32(bounds.Dy() - heightAdjust)
	if span <= 0 { span = 1 }
	for j := 1; j < bounds.Dy(); j++ {
		ratio := min(max(float32(j - 2)/span, 0), 1)
		mixed := lerpRGB(topRGBA, bottomRGBA, ratio)
		y := bounds.Min.Y + j
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			current := sheet.At(x, y)
			if sameColor(current, background) || sameColor(current, Magenta) { continue }
			mixed.A = color.NRGBAModel.Convert(current).(color.NRGBA).A
			sheet.Set(x, y, mixed)
		}
	}
}

func lerpRGB(from, to color.NRGBA, t float32) color.NRGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b) - float32(a))*t + 0.5)
	}
	return color.NRGBA{ lerp(from.R, to.R), lerp(from.G, to.G), lerp(from.B, to.B), 255 }
}
