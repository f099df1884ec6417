// The font subpackage contains helper methods to parse TrueType and
// OpenType fonts for nfont, and to obtain information from them (name,
// family, missing runes, etc.).
package font

import "os"
import "io"
import "io/fs"
import "strings"
import "compress/gzip"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](), but also including the font name
// in the returned values. The bytes must not be modified while
// the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", errors.Wrap(err, "parsing font")
	}
	fontName, err := GetName(newFont)
	if err == ErrNotFound { err = nil } // unnamed fonts are still usable
	return newFont, fontName, err
}

// Attempts to parse a font located at the given filepath and returns it
// along its name and any possible error. Supported formats are .ttf,
// .otf, .ttf.gz and .otf.gz.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	knownExt, gzipped := acceptFontPath(path)
	if !knownExt {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "opening font '%s'", path)
	}
	return parseFontFileAndClose(file, gzipped)
}

// Same as [ParseFromPath](), but for embedded or otherwise
// virtual filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	knownExt, gzipped := acceptFontPath(path)
	if !knownExt {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	file, err := filesys.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "opening font '%s'", path)
	}
	return parseFontFileAndClose(file, gzipped)
}

// Reads all the font bytes from the given reader and parses them.
// The reader is not closed.
func ParseFromReader(reader io.Reader, gzipped bool) (*sfnt.Font, string, error) {
	if gzipped {
		gzipReader, err := gzip.NewReader(reader)
		if err != nil { return nil, "", errors.Wrap(err, "reading gzipped font") }
		defer gzipReader.Close()
		reader = gzipReader
	}
	fontBytes, err := io.ReadAll(reader)
	if err != nil { return nil, "", errors.Wrap(err, "reading font") }
	return ParseFromBytes(fontBytes)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser, gzipped bool) (*sfnt.Font, string, error) {
	font, name, err := ParseFromReader(file, gzipped)
	closeErr := file.Close()
	if err != nil { return nil, "", err }
	if closeErr != nil { return nil, "", errors.Wrap(closeErr, "closing font file") }
	return font, name, nil
}

// Returns whether the font path ends in .ttf or .otf, optionally
// followed by .gz, and whether it's gzipped.
func acceptFontPath(path string) (bool, bool) {
	gzipped := strings.HasSuffix(path, ".gz")
	if gzipped { path = path[:len(path) - 3] }
	return hasValidFontExtension(path), gzipped
}

// Whether font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path) - 4] == '.'
}
