package scene

import "github.com/gogpu/pixcurve"

// defaultSegments is the sample count of the built-in curves.
const defaultSegments = 20

// Default returns the built-in demo scene laid out for a width×height grid:
// a Hermite arch across the middle, a cardinal spline along the top and a
// cubic Bezier along the bottom.
func Default(width, height int) *Scene {
	w, h := float64(width), float64(height)
	style := pixcurve.CurveStyle{
		ShowPoints:   true,
		ShowLine:     true,
		ShowControls: true,
		Color:        pixcurve.White,
	}

	curves := []Curve{
		{
			Name: "hermite",
			Type: pixcurve.Hermite,
			Controls: pixcurve.HermiteControls{
				{X: w / 10, Y: h / 2},
				{X: 150, Y: 200},
				{X: w * 9 / 10, Y: h / 2},
				{X: -200, Y: 300},
			},
			Segments: defaultSegments,
			Style:    style,
		},
		{
			Name: "cardinal",
			Type: pixcurve.Cardinal,
			Controls: pixcurve.CardinalControls{
				Points: []pixcurve.Point{
					{X: w / 100, Y: h / 100},
					{X: w / 4, Y: h / 20},
					{X: w * 2 / 4, Y: h / 3},
					{X: w * 2.5 / 4, Y: h / 20},
					{X: w * 99 / 100, Y: h / 100},
				},
			},
			Segments: defaultSegments,
			Style:    style,
		},
		{
			Name: "bezier",
			Type: pixcurve.Bezier,
			Controls: pixcurve.BezierControls{
				{X: w / 10, Y: h * 9 / 10},
				{X: w * 3 / 10, Y: h * 6 / 10},
				{X: w * 7 / 10, Y: h * 99 / 100},
				{X: w * 9 / 10, Y: h * 7 / 10},
			},
			Segments: defaultSegments,
			Style:    style,
		},
	}
	return New(width, height, curves)
}
