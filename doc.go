// nfont is a package to draw formatted, aligned, word-wrapped and animated
// text from bitmap glyph sheets or TrueType fonts.
//
// Glyphs are packed into a single texture atlas per [Font], row by row,
// and drawn through a [Target], which wraps the actual rendering backend.
// An [ImageTarget] is provided for any [draw.Image], while the ebitentarget
// and sdltarget subpackages provide targets for Ebitengine and SDL2.
//
// First, you create a [Font] and load it:
//   font := nfont.New()
//   err := font.LoadTrueTypeFileErr("path/to/font.ttf", &nfont.TrueTypeOptions{ Size: 18 })
//   if err != nil { ... }
//
// Then you draw on a target:
//   target := nfont.NewImageTarget(img)
//   font.Draw(target, 16, 16, "Hello %s!", "world")
//
// Word wrapping is available through [Font.DrawBox]() and [Font.DrawColumn](),
// and all the measuring functions ([Font.GetWidth](), [Font.GetColumnHeight]()
// and others) use the same layout rules as drawing.
//
// Fonts are not safe for concurrent use: each draw call temporarily sets the
// atlas color modulation and uses the font's formatting buffer.
//
// [draw.Image]: https://pkg.go.dev/image/draw#Image
package nfont
