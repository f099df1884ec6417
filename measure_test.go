package nfont

import "bytes"
import "strings"
import "testing"
import "log/slog"

func TestMeasureWidth(t *testing.T) {
	font := newTestBitmapFont(t)
	if font.GetWidth("") != 0 { t.Fatal("expected zero width for empty text") }
	if font.GetWidth("ab") != 8 { t.Fatalf("expected width 8, got %d", font.GetWidth("ab")) }
	if font.GetWidth("ab\nabcd\na") != 16 { t.Fatal("expected width of the widest line") }
	font.SetSpacing(1)
	if font.GetWidth("ab") != 9 { t.Fatalf("expected width 9 with spacing, got %d", font.GetWidth("ab")) }
	if font.GetWidth("%d", 123) != 14 { t.Fatalf("expected width 14 for formatted text, got %d", font.GetWidth("%d", 123)) }
	if New().GetWidth("ab") != 0 { t.Fatal("expected zero width for empty font") }
}

func TestMeasureHeight(t *testing.T) {
	font := newTestBitmapFont(t)
	h := font.GetHeight()
	if font.GetTextHeight("") != 0 { t.Fatal("expected zero height for empty text") }
	if font.GetTextHeight("abc") != h { t.Fatal("expected single line height") }
	font.SetLineSpacing(3)
	if font.GetTextHeight("a\nb\nc") != 3*h + 2*3 {
		t.Fatalf("expected %d, got %d", 3*h + 6, font.GetTextHeight("a\nb\nc"))
	}
	if font.GetColumnHeight(0, "one two three four") != h { t.Fatal("expected line height for zero width") }
	if font.GetColumnHeight(40, "one two three four") != 2*h { t.Fatal("expected two wrapped lines") }
	if font.GetColumnHeight(40, "ab\ncd\nef") != 3*h { t.Fatal("expected one line per paragraph") }
}

func TestColumnPositions(t *testing.T) {
	font := newTestBitmapFont(t)
	h := font.GetHeight()
	text := "one two three four" // wraps as "one two " + "three four "
	tests := []struct { pos, width, height int }{
		{ 0, 0, 0 },
		{ 1, 4, 0 },
		{ 3, 12, 0 },
		{ 8, 32, 0 },
		{ 9, 4, h },
		{ 10, 8, h },
		{ 18, 40, h },
		{ 100, 44, h },
	}
	for _, test := range tests {
		width := font.GetColumnPosWidth(40, test.pos, text)
		if width != test.width { t.Fatalf("pos %d: expected width %d, got %d", test.pos, test.width, width) }
		height := font.GetColumnPosHeight(40, test.pos, text)
		if height != test.height { t.Fatalf("pos %d: expected height %d, got %d", test.pos, test.height, height) }
	}
}

func TestGlyphAscentDescent(t *testing.T) {
	font := newTestBitmapFont(t)
	if font.GetRuneAscent('a') != testAscent || font.GetRuneDescent('a') != 0 {
		t.Fatalf("unexpected 'a' metrics %d/%d", font.GetRuneAscent('a'), font.GetRuneDescent('a'))
	}
	if font.GetRuneDescent('g') != testDescent { t.Fatalf("expected 'g' descent %d", testDescent) }
	if font.GetRuneAscent('世') != 0 { t.Fatal("expected zero ascent for missing glyph") }
	if font.GetTextDescent("abc") != 0 || font.GetTextDescent("abg") != testDescent {
		t.Fatal("unexpected text descent")
	}
	if font.GetTextAscent("ab") != testAscent { t.Fatal("unexpected text ascent") }

	font.SetBaseline(5)
	if font.GetBaseline() != 5 { t.Fatal("expected overridden baseline") }
	if font.GetRuneAscent('a') != 3 { t.Fatalf("expected ascent 3 from baseline 5, got %d", font.GetRuneAscent('a')) }
}

func TestLogger(t *testing.T) {
	var buffer bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{ Level: slog.LevelDebug })))
	defer SetLogger(nil)

	font := New()
	if font.LoadBitmap(nil, nil) { t.Fatal("expected load failure") }
	if !strings.Contains(buffer.String(), "bitmap font load failed") {
		t.Fatalf("expected load error to be logged, got %q", buffer.String())
	}

	buffer.Reset()
	if !font.LoadBitmap(newTestSheet(4), &BitmapOptions{ AtlasWidth: 40, AtlasHeight: 20 }) {
		t.Fatal("load failed")
	}
	if strings.Count(buffer.String(), "atlas exhausted") != 1 {
		t.Fatalf("expected a single exhaustion warning, got %q", buffer.String())
	}
	if !strings.Contains(buffer.String(), "bitmap font loaded") { t.Fatal("expected load summary") }

	SetLogger(nil)
	buffer.Reset()
	font.LoadBitmap(nil, nil)
	if buffer.Len() != 0 { t.Fatal("expected silent default logger") }
}
