package nfont

import "math"

// Built-in placement strategies for [Font.DrawAnimated](). All of them
// are pure functions of the animation parameters and the context
// counters, and apply the context alignment using the text width.
var (
	Bounce  PlacementStrategy = PlacementFunc(bounce)
	Wave    PlacementStrategy = PlacementFunc(wave)
	Stretch PlacementStrategy = PlacementFunc(stretch)
	Shake   PlacementStrategy = PlacementFunc(shake)
	Circle  PlacementStrategy = PlacementFunc(circle)
)

// Horizontal offset for the context alignment.
func alignOffset(ctx *AnimContext) float32 {
	switch ctx.Align {
	case Center: return -ctx.TextWidth()/2
	case Right : return -ctx.TextWidth()
	default:
		return 0
	}
}

// Glyphs jump up and down, with a phase depending on their distance
// to the starting position.
func bounce(pen Point, params AnimParams, ctx *AnimContext) Point {
	phase := -math.Pi*float64(params.FrequencyX*params.T) + float64(pen.X - ctx.StartX)/40
	pen.Y -= params.AmplitudeX*float32(math.Abs(math.Sin(phase)))
	pen.X += alignOffset(ctx)
	return pen
}

// Glyphs move along a sine wave traveling through the text.
func wave(pen Point, params AnimParams, ctx *AnimContext) Point {
	phase := -2*math.Pi*float64(params.FrequencyX*params.T) + float64(pen.X - ctx.StartX)/40
	pen.Y += params.AmplitudeX*float32(math.Sin(phase))
	pen.X += alignOffset(ctx)
	return pen
}

// Glyphs spread apart and come back together horizontally.
func stretch(pen Point, params AnimParams, ctx *AnimContext) Point {
	place := float32(ctx.Index)/float32(len(ctx.Text))
	switch ctx.Align {
	case Center: place -= 0.5
	case Right : place -= 1.0
	}
	pen.X += alignOffset(ctx)
	pen.X += params.AmplitudeX*place*float32(math.Cos(2*math.Pi*float64(params.FrequencyX*params.T)))
	return pen
}

// The whole text oscillates on both axes. With zero amplitudes and
// left alignment, glyphs stay at their natural positions.
func shake(pen Point, params AnimParams, ctx *AnimContext) Point {
	pen.X += alignOffset(ctx)
	if params.AmplitudeX != 0 {
		pen.X += params.AmplitudeX*float32(math.Sin(2*math.Pi*float64(params.FrequencyX*params.T)))
	}
	if params.AmplitudeY != 0 {
		pen.Y += params.AmplitudeY*float32(math.Sin(2*math.Pi*float64(params.FrequencyY*params.T)))
	}
	return pen
}

// Glyphs are distributed along an ellipse centered on the text, with
// the amplitudes as radii, and rotate around it.
func circle(pen Point, params AnimParams, ctx *AnimContext) Point {
	pen.X, pen.Y = ctx.StartX, ctx.StartY
	switch ctx.Align {
	case Left : pen.X += ctx.TextWidth()/2
	case Right: pen.X -= ctx.TextWidth()/2
	}

	place := 2*math.Pi*float64(ctx.Index + 1)/float64(len(ctx.Text))
	pen.X += params.AmplitudeX*float32(math.Cos(place - 2*math.Pi*float64(params.FrequencyX*params.T)))
	pen.Y += params.AmplitudeY*float32(math.Sin(place - 2*math.Pi*float64(params.FrequencyY*params.T)))
	return pen
}
