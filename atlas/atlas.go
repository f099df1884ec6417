package atlas

import "image"
import "image/color"

// An Atlas is a single NRGBA surface holding many packed glyph cells,
// together with the packing cursor, the color modulation that backends
// must apply when blitting from it, and a version counter that changes
// whenever its pixels change.
//
// Atlases are not safe for concurrent use.
type Atlas struct {
	packer *Packer
	image *image.NRGBA
	modulation color.NRGBA
	version uint64
}

var white = color.NRGBA{255, 255, 255, 255}

// Creates a new transparent atlas of the given size.
func New(width, height, lineHeight int) *Atlas {
	return &Atlas{
		packer: NewPacker(width, height, lineHeight),
		image: image.NewNRGBA(image.Rect(0, 0, width, height)),
		modulation: white,
		version: 1,
	}
}

// See [Packer.TryPack]().
func (self *Atlas) TryPack(width int) (image.Rectangle, error) {
	return self.packer.TryPack(width)
}

// Returns the atlas packer.
func (self *Atlas) Packer() *Packer { return self.packer }

// Returns the atlas surface. Callers must not modify it directly;
// use the Write* methods so the version is updated.
func (self *Atlas) Image() *image.NRGBA { return self.image }

// Returns the atlas bounds.
func (self *Atlas) Bounds() image.Rectangle { return self.image.Rect }

// Returns a counter that increases every time the atlas pixels are
// modified. Backends can use it to know when to upload the atlas again.
func (self *Atlas) Version() uint64 { return self.version }

// Sets the color modulation to be applied by backends on blits.
func (self *Atlas) SetModulation(c color.NRGBA) { self.modulation = c }

// Returns the current color modulation.
func (self *Atlas) Modulation() color.NRGBA { return self.modulation }

// Resets the color modulation to opaque white.
func (self *Atlas) ResetModulation() { self.modulation = white }

// Writes an alpha coverage mask into the given cell. The mask is
// expected to have the same size as the cell and its bounds origin
// is mapped to the cell origin.
//
// Without background, pixels are written with the fg color and the
// mask coverage scaled by fg's alpha. With background, pixels are
// written opaque, blending fg over bg by coverage.
func (self *Atlas) WriteAlpha(cell image.Rectangle, mask *image.Alpha, fg color.NRGBA, bg *color.NRGBA) {
	cell = cell.Intersect(self.image.Rect)
	if cell.Empty() { return }
	mb := mask.Bounds()
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			mx, my := mb.Min.X + x - cell.Min.X, mb.Min.Y + y - cell.Min.Y
			var cov uint32
			if (image.Point{mx, my}).In(mb) {
				cov = uint32(mask.Pix[mask.PixOffset(mx, my)])
			}
			offset := self.image.PixOffset(x, y)
			pix := self.image.Pix[offset : offset + 4 : offset + 4]
			if bg == nil {
				pix[0], pix[1], pix[2] = fg.R, fg.G, fg.B
				pix[3] = uint8(cov*uint32(fg.A)/255)
			} else {
				pix[0] = blend8(bg.R, fg.R, cov)
				pix[1] = blend8(bg.G, fg.G, cov)
				pix[2] = blend8(bg.B, fg.B, cov)
				pix[3] = 255
			}
		}
	}
	self.version += 1
}

// Copies the pixels of src starting at srcMin into the given cell.
// Pixels whose RGB matches any of the given keys become fully
// transparent.
func (self *Atlas) WriteImage(cell image.Rectangle, src image.Image, srcMin image.Point, keys ...color.Color) {
	cell = cell.Intersect(self.image.Rect)
	if cell.Empty() { return }
	keyRGBs := make([][3]uint32, len(keys))
	for i, key := range keys {
		r, g, b, _ := key.RGBA()
		keyRGBs[i] = [3]uint32{r >> 8, g >> 8, b >> 8}
	}

	sb := src.Bounds()
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			sp := image.Pt(srcMin.X + x - cell.Min.X, srcMin.Y + y - cell.Min.Y)
			var out color.NRGBA
			if sp.In(sb) {
				c := src.At(sp.X, sp.Y)
				out = color.NRGBAModel.Convert(c).(color.NRGBA)
				if matchesKey(out, keyRGBs) { out = color.NRGBA{} }
			}
			self.image.SetNRGBA(x, y, out)
		}
	}
	self.version += 1
}

func matchesKey(c color.NRGBA, keys [][3]uint32) bool {
	for _, key := range keys {
		if uint32(c.R) == key[0] && uint32(c.G) == key[1] && uint32(c.B) == key[2] {
			return true
		}
	}
	return false
}

func blend8(a, b uint8, t uint32) uint8 {
	return uint8((uint32(a)*(255 - t) + uint32(b)*t)/255)
}
