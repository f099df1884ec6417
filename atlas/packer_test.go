package atlas

import "image"
import "image/color"
import "testing"

import "github.com/pkg/errors"

func TestPackerSingleRow(t *testing.T) {
	packer := NewPacker(64, 64, 20)
	widths := []int{10, 12, 8, 10, 15}
	var prev image.Rectangle
	for i, width := range widths {
		rect, err := packer.TryPack(width)
		if err != nil { t.Fatalf("pack #%d: unexpected error %v", i, err) }
		if rect.Min.Y != 0 { t.Fatalf("pack #%d: expected no row wrap, got y = %d", i, rect.Min.Y) }
		if rect.Dx() != width || rect.Dy() != 20 {
			t.Fatalf("pack #%d: expected %dx20, got %dx%d", i, width, rect.Dx(), rect.Dy())
		}
		if i > 0 && rect.Min.X != prev.Max.X + 1 {
			t.Fatalf("pack #%d: expected 1px gutter after x = %d, got x = %d", i, prev.Max.X, rect.Min.X)
		}
		prev = rect
	}
	if prev.Max.X != 60 { t.Fatalf("expected last cell to end at 60, got %d", prev.Max.X) }
}

func TestPackerMonotonicity(t *testing.T) {
	packer := NewPacker(100, 200, 16)
	bounds := image.Rect(0, 0, 100, 200)
	var packed []image.Rectangle
	lastY := 0
	for i := 0; i < 500; i++ {
		width := 1 + (i*37) % 29
		rect, err := packer.TryPack(width)
		if err != nil {
			if !errors.Is(err, ErrExhausted) { t.Fatalf("unexpected error %v", err) }
			break
		}
		if !rect.In(bounds) { t.Fatalf("rect %v out of atlas bounds", rect) }
		if rect.Min.Y < lastY { t.Fatalf("cursor y decreased from %d to %d", lastY, rect.Min.Y) }
		lastY = rect.Min.Y
		for _, other := range packed {
			if rect.Overlaps(other) { t.Fatalf("rect %v overlaps %v", rect, other) }
		}
		packed = append(packed, rect)
	}
	if len(packed) == 0 { t.Fatal("expected some cells to be packed") }
}

func TestPackerExhaustion(t *testing.T) {
	packer := NewPacker(64, 64, 20)
	capacity := 64*(64/20)
	total := 0
	var failed bool
	for total <= capacity + 64 {
		_, err := packer.TryPack(15)
		if err != nil {
			if err != ErrExhausted { t.Fatalf("expected ErrExhausted, got %v", err) }
			failed = true
			break
		}
		total += 15
	}
	if !failed { t.Fatal("expected packing to fail eventually") }
	if !packer.Exhausted() { t.Fatal("expected packer to report exhaustion") }

	// exhaustion is sticky, even for tiny cells
	_, err := packer.TryPack(1)
	if err != ErrExhausted { t.Fatalf("expected sticky ErrExhausted, got %v", err) }

	packer.Reset(20)
	_, err = packer.TryPack(1)
	if err != nil { t.Fatalf("expected reset to clear exhaustion, got %v", err) }
}

func TestPackerTooWide(t *testing.T) {
	packer := NewPacker(32, 32, 8)
	_, err := packer.TryPack(32)
	if !errors.Is(err, ErrTooWide) { t.Fatalf("expected ErrTooWide, got %v", err) }
	if packer.Exhausted() { t.Fatal("too wide cells must not exhaust the packer") }
	rect, err := packer.TryPack(31)
	if err != nil { t.Fatalf("unexpected error %v", err) }
	if rect.Max.X != 32 { t.Fatalf("expected cell to end at 32, got %d", rect.Max.X) }
	_, err = packer.TryPack(-1)
	if err != ErrInvalidWidth { t.Fatalf("expected ErrInvalidWidth, got %v", err) }
}

func TestPackerRowWidth(t *testing.T) {
	packer := NewPacker(64, 64, 10)
	packer.SetRowWidth(6)
	rect, err := packer.TryPack(4)
	if err != nil { t.Fatal(err) }
	if rect.Min.X != 7 { t.Fatalf("expected x = 7 after a 6px origin cell, got %d", rect.Min.X) }
}

func TestAtlasWrites(t *testing.T) {
	atlas := New(16, 16, 4)
	if atlas.Modulation() != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatal("expected white default modulation")
	}
	startVersion := atlas.Version()

	cell, err := atlas.TryPack(3)
	if err != nil { t.Fatal(err) }
	mask := image.NewAlpha(image.Rect(0, 0, 3, 4))
	mask.SetAlpha(1, 2, color.Alpha{128})
	atlas.WriteAlpha(cell, mask, color.NRGBA{255, 255, 255, 255}, nil)
	got := atlas.Image().NRGBAAt(cell.Min.X + 1, cell.Min.Y + 2)
	if got.A != 128 || got.R != 255 { t.Fatalf("unexpected pixel %v", got) }
	if atlas.Version() == startVersion { t.Fatal("expected version to change") }

	bg := color.NRGBA{0, 0, 0, 255}
	atlas.WriteAlpha(cell, mask, color.NRGBA{255, 255, 255, 255}, &bg)
	got = atlas.Image().NRGBAAt(cell.Min.X, cell.Min.Y)
	if got != bg { t.Fatalf("expected opaque background, got %v", got) }

	src := image.NewNRGBA(image.Rect(0, 0, 3, 4))
	magenta := color.NRGBA{255, 0, 255, 255}
	src.SetNRGBA(0, 0, magenta)
	src.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 255})
	atlas.WriteImage(cell, src, image.Point{}, magenta)
	if atlas.Image().NRGBAAt(cell.Min.X, cell.Min.Y).A != 0 {
		t.Fatal("expected keyed pixel to be transparent")
	}
	if atlas.Image().NRGBAAt(cell.Min.X + 1, cell.Min.Y) != (color.NRGBA{10, 20, 30, 255}) {
		t.Fatal("expected regular pixel to be copied")
	}

	atlas.SetModulation(color.NRGBA{255, 0, 0, 128})
	atlas.ResetModulation()
	if atlas.Modulation() != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatal("expected modulation reset to white")
	}
}
