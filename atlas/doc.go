// The atlas subpackage implements the glyph atlas used by nfont fonts:
// a fixed-size NRGBA surface where glyph cells of a common line height
// are packed row by row by a greedy [Packer].
//
// Atlases never grow and packed cells never move. Once a new row would
// go past the bottom of the surface, packing fails with [ErrExhausted]
// for the rest of the atlas life.
package atlas
