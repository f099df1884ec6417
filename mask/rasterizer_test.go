package mask

import "image"
import "testing"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

func moveTo(segments []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segments, sfnt.Segment{
		Op: sfnt.SegmentOpMoveTo,
		Args: [3]fixed.Point26_6{ fixed.Point26_6{X: x, Y: y} },
	})
}

func lineTo(segments []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segments, sfnt.Segment{
		Op: sfnt.SegmentOpLineTo,
		Args: [3]fixed.Point26_6{ fixed.Point26_6{X: x, Y: y} },
	})
}

// A square from (x0, y0) to (x1, y1), in whole pixels.
func squareSegments(x0, y0, x1, y1 int) sfnt.Segments {
	fx0, fy0 := fixed.I(x0), fixed.I(y0)
	fx1, fy1 := fixed.I(x1), fixed.I(y1)
	segments := make([]sfnt.Segment, 0, 5)
	segments = moveTo(segments, fx0, fy0)
	segments = lineTo(segments, fx1, fy0)
	segments = lineTo(segments, fx1, fy1)
	segments = lineTo(segments, fx0, fy1)
	segments = lineTo(segments, fx0, fy0)
	return sfnt.Segments(segments)
}

func TestDefaultRasterizerSquare(t *testing.T) {
	var rasterizer DefaultRasterizer
	mask, err := Rasterize(squareSegments(2, -8, 6, 0), &rasterizer, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if mask == nil { t.Fatal("expected a mask") }
	expected := image.Rect(2, -8, 6, 0)
	if mask.Rect != expected { t.Fatalf("expected bounds %v, got %v", expected, mask.Rect) }
	for y := -8; y < 0; y++ {
		for x := 2; x < 6; x++ {
			if mask.AlphaAt(x, y).A < 250 {
				t.Fatalf("expected full coverage at (%d, %d), got %d", x, y, mask.AlphaAt(x, y).A)
			}
		}
	}
}

func TestRasterizeEmpty(t *testing.T) {
	var rasterizer DefaultRasterizer
	segments := moveTo(nil, fixed.I(1), fixed.I(1))
	mask, err := Rasterize(sfnt.Segments(segments), &rasterizer, fixed.Point26_6{})
	if err != nil || mask != nil { t.Fatal("expected nil mask and no error for move-only outline") }
}

func TestStyledRasterizerSkew(t *testing.T) {
	var straight DefaultRasterizer
	var oblique StyledRasterizer
	oblique.SetSkewFactor(0.5)
	outline := squareSegments(0, -10, 4, 0)
	base, _ := straight.Rasterize(outline, fixed.Point26_6{})
	skewed, _ := oblique.Rasterize(outline, fixed.Point26_6{})
	if skewed.Rect.Max.X <= base.Rect.Max.X {
		t.Fatalf("expected skewed mask to extend further right (%v vs %v)", skewed.Rect, base.Rect)
	}
	if len(outline) != 5 || outline[1].Args[0].X != fixed.I(4) {
		t.Fatal("skewing must not modify the original outline")
	}

	oblique.SetSkewFactor(3)
	if oblique.GetSkewFactor() != 1 { t.Fatal("expected skew factor clamping") }
}

func TestDilateHorz(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 3, 1))
	mask.Pix[1] = 200
	out := DilateHorz(mask, 2)
	if out.Rect.Dx() != 5 { t.Fatalf("expected width 5, got %d", out.Rect.Dx()) }
	expected := []uint8{0, 200, 200, 200, 0}
	for i, value := range expected {
		if out.Pix[i] != value { t.Fatalf("pix[%d]: expected %d, got %d", i, value, out.Pix[i]) }
	}
}

func TestOutlineRing(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 3, 3))
	for i := range mask.Pix { mask.Pix[i] = 255 }
	ring := OutlineRing(mask)
	if ring.Rect != image.Rect(-1, -1, 4, 4) { t.Fatalf("unexpected ring bounds %v", ring.Rect) }
	if ring.AlphaAt(1, 1).A != 0 { t.Fatal("expected hollow interior") }
	if ring.AlphaAt(-1, -1).A != 255 || ring.AlphaAt(3, 1).A != 255 {
		t.Fatal("expected opaque ring around the shape")
	}

	var styled StyledRasterizer
	styled.SetOutline(true)
	styled.SetExtraWidth(1)
	out, err := styled.Rasterize(squareSegments(0, -6, 6, 0), fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if out.Rect != image.Rect(-1, -7, 8, 1) { t.Fatalf("unexpected styled bounds %v", out.Rect) }
	if out.AlphaAt(3, -3).A != 0 { t.Fatal("expected outlined glyph to be hollow") }
}
