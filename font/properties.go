package font

import "sync"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// sfnt.Buffer values can't be shared concurrently, but the property
// helpers can be called from anywhere.
var bufferPool = sync.Pool{
	New: func() any { return &sfnt.Buffer{} },
}

// Returns the requested font property for the given font.
// The returned property string might be empty even when error is nil.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	str, err := font.Name(buffer, property)
	bufferPool.Put(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases,
// the value will be one of: Regular, Italic, Bold, Bold Italic.
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns whether the font has a glyph for the given rune.
func HasRune(font *sfnt.Font, r rune) bool {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	index, err := font.GlyphIndex(buffer, r)
	bufferPool.Put(buffer)
	return err == nil && index != 0
}

// Returns the runes in the given text that can't be represented by the
// font. If runes are repeated in the input text, the returned slice may
// contain them multiple times too.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buffer)

	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
