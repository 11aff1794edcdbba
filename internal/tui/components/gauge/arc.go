package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

const (
	// screen coords: 0°=right, 90°=down, 180°=left, 270°=up
	// start at top (12 o'clock), fill clockwise
	arcStartAngle = 270.0
	arcSweep      = 360.0
	arcThickness  = 5
)

// drawArc draws a thick arc from startAngle sweeping through sweepAngle
// degrees, using the midpoint circle algorithm to avoid gaps.
func drawArc(canvas *drawille.Canvas, centerX, centerY, radius float64, startAngle, sweepAngle float64) {
	endAngle := startAngle + sweepAngle

	for t := range arcThickness {
		r := int(radius) - t
		if r <= 0 {
			continue
		}
		midpointCircleArc(canvas, int(centerX), int(centerY), r, startAngle, endAngle)
	}
}

func midpointCircleArc(canvas *drawille.Canvas, cx, cy, radius int, startAngle, endAngle float64) {
	x := radius
	y := 0
	d := 1 - radius

	for x >= y {
		drawOctantPoints(canvas, cx, cy, x, y, startAngle, endAngle)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// drawOctantPoints draws the 8 symmetric points of the circle that fall
// within the angle range.
func drawOctantPoints(canvas *drawille.Canvas, cx, cy, x, y int, startAngle, endAngle float64) {
	points := [][2]int{
		{cx + x, cy - y},
		{cx + y, cy - x},
		{cx - y, cy - x},
		{cx - x, cy - y},
		{cx - x, cy + y},
		{cx - y, cy + x},
		{cx + y, cy + x},
		{cx + x, cy + y},
	}

	for _, p := range points {
		if isInArcRange(cx, cy, p[0], p[1], startAngle, endAngle) {
			canvas.Set(p[0], p[1])
		}
	}
}

// isInArcRange checks if a point's angle from center falls within
// [startAngle, endAngle], handling sweeps that wrap past 360°.
func isInArcRange(cx, cy, px, py int, startAngle, endAngle float64) bool {
	dx := float64(px - cx)
	dy := float64(py - cy)

	angle := math.Atan2(dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	if endAngle > 360 {
		return angle >= startAngle || angle <= (endAngle-360)
	}
	return angle >= startAngle && angle <= endAngle
}

func drawFullArc(canvas *drawille.Canvas, centerX, centerY, radius float64) {
	drawArc(canvas, centerX, centerY, radius, arcStartAngle, arcSweep)
}

func drawFilledArc(canvas *drawille.Canvas, centerX, centerY, radius float64, fillFraction float64) {
	if fillFraction <= 0 {
		return
	}
	if fillFraction > 1 {
		fillFraction = 1
	}
	drawArc(canvas, centerX, centerY, radius, arcStartAngle, fillFraction*arcSweep)
}
