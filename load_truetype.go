package nfont

import "io"
import "io/fs"
import "bytes"
import "image/color"

import "github.com/pkg/errors"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"
import xfont "golang.org/x/image/font"

import "github.com/tinne26/nfont/atlas"
import "github.com/tinne26/nfont/codepoint"
import "github.com/tinne26/nfont/font"
import "github.com/tinne26/nfont/mask"

var ErrNilFont = errors.New("nil font")
var ErrInvalidSize = errors.New("font size must be positive")

// Style flags for TrueType sources. Styles not natively present in the
// font are emulated: outline first, then bold, italic and decorations.
type Style uint8

const StyleNormal Style = 0
const (
	StyleBold Style = 1 << iota
	StyleItalic
	StyleUnderline
	StyleStrikethrough
	StyleOutline // 1px outline mode
)

// Returns whether all the given style flags are set.
func (self Style) Has(flags Style) bool { return self & flags == flags }

// Atlas side of TrueType sources, in line heights.
const trueTypeAtlasLines = 12

// Codepoints eagerly packed when loading TrueType sources.
const firstEagerGlyph, lastEagerGlyph = 32, 126

// Options for TrueType loads.
type TrueTypeOptions struct {
	Size float64 // in pixels per em, must be positive
	Style Style
	Color color.Color // foreground color, white if nil

	// If set, glyph cells are opaque, with the foreground blended over
	// this color, and the default font color becomes opaque white.
	// Otherwise cells are white with alpha, and the foreground color
	// becomes the default font color.
	Background *color.NRGBA

	AtlasSize int // atlas side in pixels, 12 line heights if zero
}

func (self *TrueTypeOptions) foreground() color.NRGBA {
	if self == nil || self.Color == nil { return opaqueWhite }
	return color.NRGBAModel.Convert(self.Color).(color.NRGBA)
}

// Loads the given TrueType or OpenType font. The font is not owned,
// so it's not modified or released by [Font.Free](). If the load fails,
// the error is logged, false is returned and the font is left empty.
func (self *Font) LoadTrueType(ttf *sfnt.Font, opts *TrueTypeOptions) bool {
	return logLoadErr(self.LoadTrueTypeErr(ttf, opts))
}

// Same as [Font.LoadTrueType](), but returning the error.
func (self *Font) LoadTrueTypeErr(ttf *sfnt.Font, opts *TrueTypeOptions) error {
	self.prepareLoad()
	return self.loadTrueType(ttf, false, opts)
}

// Parses and loads the font at the given path (.ttf, .otf, .ttf.gz
// or .otf.gz). See [Font.LoadTrueType]().
func (self *Font) LoadTrueTypeFile(path string, opts *TrueTypeOptions) bool {
	return logLoadErr(self.LoadTrueTypeFileErr(path, opts))
}

// Same as [Font.LoadTrueTypeFile](), but returning the error.
func (self *Font) LoadTrueTypeFileErr(path string, opts *TrueTypeOptions) error {
	self.prepareLoad()
	ttf, _, err := font.ParseFromPath(path)
	if err != nil { return err }
	return self.loadTrueType(ttf, true, opts)
}

// Same as [Font.LoadTrueTypeFile](), but for embedded or otherwise
// virtual filesystems.
func (self *Font) LoadTrueTypeFS(filesys fs.FS, path string, opts *TrueTypeOptions) bool {
	return logLoadErr(self.LoadTrueTypeFSErr(filesys, path, opts))
}

// Same as [Font.LoadTrueTypeFS](), but returning the error.
func (self *Font) LoadTrueTypeFSErr(filesys fs.FS, path string, opts *TrueTypeOptions) error {
	self.prepareLoad()
	ttf, _, err := font.ParseFromFS(filesys, path)
	if err != nil { return err }
	return self.loadTrueType(ttf, true, opts)
}

// Reads, parses and loads a font from the given reader. The reader
// is not closed.
func (self *Font) LoadTrueTypeReader(reader io.Reader, opts *TrueTypeOptions) bool {
	return logLoadErr(self.LoadTrueTypeReaderErr(reader, opts))
}

// Same as [Font.LoadTrueTypeReader](), but returning the error.
func (self *Font) LoadTrueTypeReaderErr(reader io.Reader, opts *TrueTypeOptions) error {
	self.prepareLoad()
	if reader == nil { return errors.New("nil font reader") }
	ttf, _, err := font.ParseFromReader(reader, false)
	if err != nil { return err }
	return self.loadTrueType(ttf, true, opts)
}

// Same as [Font.LoadTrueTypeReader]() with a bytes reader.
func (self *Font) LoadTrueTypeBytes(data []byte, opts *TrueTypeOptions) bool {
	return self.LoadTrueTypeReader(bytes.NewReader(data), opts)
}

func (self *Font) loadTrueType(ttf *sfnt.Font, owned bool, opts *TrueTypeOptions) error {
	if ttf == nil { return ErrNilFont }
	if opts == nil || !(opts.Size > 0) { return ErrInvalidSize }

	source := &TrueTypeSource{
		font: ttf,
		ppem: fixed.Int26_6(opts.Size*64 + 0.5),
		style: opts.Style,
		fg: opts.foreground(),
		owned: owned,
	}
	if opts.Background != nil {
		bg := *opts.Background
		source.bg = &bg
	}
	if source.ppem <= 0 { return ErrInvalidSize }
	source.rasterizer.SetOutline(source.style.Has(StyleOutline))
	if source.style.Has(StyleBold) { source.rasterizer.SetExtraWidth(1) }
	if source.style.Has(StyleItalic) { source.rasterizer.SetSkewFactor(mask.ItalicSkew) }

	metrics, err := ttf.Metrics(&source.buffer, source.ppem, xfont.HintingNone)
	if err != nil { return errors.Wrap(err, "reading font metrics") }
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	if source.style.Has(StyleOutline) { ascent, descent = ascent + 1, descent + 1 }
	height := ascent + descent
	if height <= 0 { return errors.Errorf("invalid font metrics (height %d)", height) }

	atlasSize := height*trueTypeAtlasLines
	if opts.AtlasSize > 0 { atlasSize = opts.AtlasSize }

	self.source = source
	self.atlas = atlas.New(atlasSize, atlasSize, height)
	self.height, self.ascent, self.descent = height, ascent, descent
	self.baseline = height - descent
	if source.bg == nil {
		self.defaultColor = source.fg
	} else {
		self.defaultColor = opaqueWhite
	}

	for code := codepoint.Code(firstEagerGlyph); code <= lastEagerGlyph; code++ {
		entry, found := self.getGlyph(code)
		if found { self.maxWidth = max(self.maxWidth, entry.Width()) }
	}

	Logger().Debug("nfont: TrueType font loaded",
		"size", opts.Size, "style", uint8(opts.Style), "height", height,
		"ascent", ascent, "descent", descent, "glyphs", self.glyphs.Len(),
		"atlas", self.atlas.Bounds().Size())
	return nil
}

func logLoadErr(err error) bool {
	if err == nil { return true }
	Logger().Error("nfont: TrueType font load failed", "err", err)
	return false
}
