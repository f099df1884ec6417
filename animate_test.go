package nfont

import "math"
import "testing"

func TestAnimatedCounters(t *testing.T) {
	font := newTestBitmapFont(t)
	type counters struct { index, letter, word, line int }
	var got []counters
	record := PlacementFunc(func(pen Point, _ AnimParams, ctx *AnimContext) Point {
		got = append(got, counters{ ctx.Index, ctx.LetterNum, ctx.WordNum, ctx.LineNum })
		return pen
	})

	target := &recordingTarget{}
	font.DrawAnimated(target, 0, 0, NewAnimParams(0), record, "ab c\nd")
	expected := []counters{ {0, 1, 1, 1}, {1, 2, 1, 1}, {3, 2, 2, 1}, {5, 2, 1, 2} }
	if len(got) != len(expected) { t.Fatalf("expected %d placements, got %d", len(expected), len(got)) }
	for i := range expected {
		if got[i] != expected[i] { t.Fatalf("placement #%d: expected %v, got %v", i, expected[i], got[i]) }
	}
}

func TestAnimatedPenRestore(t *testing.T) {
	font := newTestBitmapFont(t)
	target := &recordingTarget{}
	font.Draw(target, 10, 10, "abc")
	natural := append([]blitRecord(nil), target.blits...)

	target.reset()
	offset := PlacementFunc(func(pen Point, _ AnimParams, _ *AnimContext) Point {
		return Point{ pen.X + 100, pen.Y - 5 }
	})
	font.DrawAnimated(target, 10, 10, NewAnimParams(0), offset, "abc")
	for i, blit := range target.blits {
		if blit.dst.X != natural[i].dst.X + 100 || blit.dst.Y != natural[i].dst.Y - 5 {
			t.Fatalf("blit #%d: offsets accumulated (%v)", i, blit.dst)
		}
	}
}

func TestAnimatedUserData(t *testing.T) {
	font := newTestBitmapFont(t)
	var seen []any
	var texts []string
	strategy := PlacementFunc(func(pen Point, _ AnimParams, ctx *AnimContext) Point {
		seen = append(seen, ctx.UserData)
		texts = append(texts, ctx.Text)
		return pen
	})
	font.DrawAnimatedData(&recordingTarget{}, 0, 0, NewAnimParams(0), strategy, Center, "tag", "n=%d", 7)
	if len(seen) != 3 || seen[0] != "tag" { t.Fatalf("unexpected user data %v", seen) }
	if texts[0] != "n=7" { t.Fatalf("expected formatted text, got %q", texts[0]) }
}

func TestShakeWithoutAmplitude(t *testing.T) {
	font := newTestBitmapFont(t)
	font.SetSpacing(1)
	target := &recordingTarget{}
	font.Draw(target, 3, 4, "shake me\nnow")
	natural := append([]blitRecord(nil), target.blits...)

	target.reset()
	params := AnimParams{ T: 0.37, FrequencyX: 3, FrequencyY: 2 }
	rect := font.DrawAnimated(target, 3, 4, params, Shake, "shake me\nnow")
	if len(target.blits) != len(natural) { t.Fatalf("expected %d blits, got %d", len(natural), len(target.blits)) }
	for i := range natural {
		if target.blits[i].dst != natural[i].dst {
			t.Fatalf("blit #%d: expected %v, got %v", i, natural[i].dst, target.blits[i].dst)
		}
	}
	if rect.X != 3 || rect.Y != 4 { t.Fatalf("unexpected dirty rect %v", rect) }
}

func TestAnimatedColorScoped(t *testing.T) {
	font := newTestBitmapFont(t)
	target := &recordingTarget{}
	font.SetDefaultColor(testInk)
	font.DrawAnimated(target, 0, 0, NewAnimParams(1), Wave, "abc")
	if font.GetAtlas().Modulation() != opaqueWhite { t.Fatal("expected modulation reset after animated draw") }
	if rect := font.DrawAnimated(nil, 1, 2, NewAnimParams(1), Wave, "abc"); rect != (Rect{ X: 1, Y: 2 }) {
		t.Fatalf("expected empty rect for nil target, got %v", rect)
	}
}

func TestBuiltinEffects(t *testing.T) {
	font := newTestBitmapFont(t)
	const text = "abcd" // 16px wide
	near := func(a, b float32) bool { return math.Abs(float64(a - b)) < 0.001 }
	newCtx := func(align Align, index int) *AnimContext {
		return &AnimContext{ Font: font, Text: text, Index: index, StartX: 10, StartY: 20, Align: align }
	}
	params := NewAnimParams(0)

	// at t = 0 and the start position, bounce and wave only apply the alignment
	if got := Bounce.Place(Point{ 10, 20 }, params, newCtx(Left, 0)); got != (Point{ 10, 20 }) {
		t.Fatalf("unexpected bounce position %v", got)
	}
	if got := Wave.Place(Point{ 10, 20 }, params, newCtx(Center, 0)); got != (Point{ 2, 20 }) {
		t.Fatalf("unexpected wave position %v", got)
	}
	if got := Bounce.Place(Point{ 10, 20 }, params, newCtx(Right, 0)); got != (Point{ -6, 20 }) {
		t.Fatalf("unexpected right aligned bounce position %v", got)
	}

	// bounce never goes below the pen
	for i := 0; i < 20; i++ {
		p := NewAnimParams(float32(i)*0.1)
		if got := Bounce.Place(Point{ 14, 20 }, p, newCtx(Left, 1)); got.Y > 20 {
			t.Fatalf("bounce moved glyph down (%v)", got)
		}
	}

	// stretch at t = 0: full amplitude times the relative place
	got := Stretch.Place(Point{ 14, 20 }, params, newCtx(Left, 2))
	if !near(got.X, 14 + 20*0.5) || got.Y != 20 { t.Fatalf("unexpected stretch position %v", got) }
	got = Stretch.Place(Point{ 14, 20 }, params, newCtx(Center, 2))
	if !near(got.X, 14 - 8) { t.Fatalf("unexpected centered stretch position %v", got) }

	// circle: the last glyph completes the turn
	got = Circle.Place(Point{ 99, 99 }, params, newCtx(Left, len(text) - 1))
	if !near(got.X, 10 + 8 + 20) || !near(got.Y, 20) { t.Fatalf("unexpected circle position %v", got) }
	got = Circle.Place(Point{ 99, 99 }, params, newCtx(Center, 0))
	if !near(got.X, 10) || !near(got.Y, 20 + 20) { t.Fatalf("unexpected circle position %v", got) }

	// shake at a quarter period
	p := AnimParams{ T: 0.25, AmplitudeX: 5, AmplitudeY: 3, FrequencyX: 1, FrequencyY: 1 }
	got = Shake.Place(Point{ 10, 20 }, p, newCtx(Left, 0))
	if !near(got.X, 15) || !near(got.Y, 23) { t.Fatalf("unexpected shake position %v", got) }
}
