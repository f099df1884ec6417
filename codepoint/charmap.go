package codepoint

import "golang.org/x/text/encoding/charmap"

// Default legacy encoding for the extended range of bitmap sheets.
var DefaultCharmap = charmap.ISO8859_1

// First and last bytes of the extended range stored after the
// printable ASCII range in extended bitmap sheets.
const (
	ExtendedFirst byte = 161
	ExtendedLast  byte = 255
)

// Returns the code for a byte of the given legacy 8-bit encoding. If the
// charmap is nil, [DefaultCharmap] is used. Bytes below 0x80 are
// returned as they are.
func FromCharmapByte(cm *charmap.Charmap, b byte) Code {
	if b < 0x80 { return Code(b) }
	if cm == nil { cm = DefaultCharmap }
	return FromRune(cm.DecodeByte(b))
}
