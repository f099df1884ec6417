// The codepoint subpackage converts between UTF-8 byte sequences and the
// 32-bit keys used to index glyphs within nfont.
//
// A [Code] is not a Unicode scalar value. Instead, it's the raw bytes of
// a single UTF-8 sequence packed into a uint32, with the first byte
// occupying the most significant used byte. For example, 'A' (0x41) is
// stored as 0x41, and 'é' (0xC3 0xA9) is stored as 0xC3A9. This is enough
// for unique lookups and lossless round-trips, and it avoids decoding the
// scalar value on hot text walking paths. Conversions to and from runes
// are only done at the boundary with the font engine ([FromRune] and
// [Code.Rune]).
package codepoint

import "unicode/utf8"

// A shifted concatenation of the bytes of a single UTF-8 sequence.
type Code uint32

// Returns the expected length in bytes of a UTF-8 sequence starting
// with the given lead byte. No validation is done: malformed lead bytes
// fall into the longest classification they match.
func SeqLen(lead byte) int {
	switch {
	case lead <= 0x7F: return 1
	case lead <  0xE0: return 2
	case lead <  0xF0: return 3
	default:
		return 4
	}
}

// Decodes the first UTF-8 sequence in the given text and returns
// its code and the number of bytes consumed. Empty text returns
// (0, 0).
//
// Continuation bytes are not validated. If the text ends before the
// sequence is complete, only the remaining bytes are consumed and the
// missing bytes are taken as zero.
func Decode(text string) (Code, int) { return decode(text) }

// Same as [Decode], but for byte slices.
func DecodeBytes(text []byte) (Code, int) { return decode(text) }

func decode[T string | []byte](text T) (Code, int) {
	if len(text) == 0 { return 0, 0 }
	n := SeqLen(text[0])
	var code Code
	for i := 0; i < n; i++ {
		code <<= 8
		if i < len(text) { code |= Code(text[i]) }
	}
	if n > len(text) { n = len(text) }
	return code, n
}

// Appends the bytes of the given code to dst, stripping any leading
// zero bytes, and returns the extended slice. The zero code is
// encoded as a single zero byte.
func AppendEncode(dst []byte, code Code) []byte {
	switch {
	case code > 0x00FFFFFF:
		return append(dst, byte(code >> 24), byte(code >> 16), byte(code >> 8), byte(code))
	case code > 0x0000FFFF:
		return append(dst, byte(code >> 16), byte(code >> 8), byte(code))
	case code > 0x000000FF:
		return append(dst, byte(code >> 8), byte(code))
	default:
		return append(dst, byte(code))
	}
}

// Returns the bytes of the given code. See [AppendEncode].
func Encode(code Code) []byte {
	return AppendEncode(make([]byte, 0, 4), code)
}

// Returns the code as a string of 1 to 4 bytes.
func (self Code) String() string {
	var buffer [4]byte
	return string(AppendEncode(buffer[:0], self))
}

// Returns the number of bytes used by the code once encoded.
func (self Code) Len() int {
	switch {
	case self > 0x00FFFFFF: return 4
	case self > 0x0000FFFF: return 3
	case self > 0x000000FF: return 2
	default:
		return 1
	}
}

// Converts the code to a Unicode rune. Invalid sequences
// return [utf8.RuneError].
func (self Code) Rune() rune {
	var buffer [4]byte
	r, _ := utf8.DecodeRune(AppendEncode(buffer[:0], self))
	return r
}

// Converts a Unicode rune to its code.
func FromRune(r rune) Code {
	var buffer [4]byte
	n := utf8.EncodeRune(buffer[:], r)
	code, _ := DecodeBytes(buffer[:n])
	return code
}
