package pixcurve

import (
	"fmt"
	"math"

	"github.com/gogpu/pixcurve/basis"
)

// The evaluators below are pure functions of their inputs and the basis
// cache. Each returns segments+1 samples per curve piece (fewer for stitched
// cardinal splines, see EvaluateCardinal) or an error and a nil slice.

// Evaluate dispatches to the evaluator for typ. It fails with
// ErrInvalidControls when ctl does not belong to typ.
func Evaluate(c *basis.Cache, typ CurveType, ctl Controls, segments int) ([]Point, error) {
	switch typ {
	case Hermite, Cardinal, Bezier:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCurveType, int(typ))
	}
	if ctl == nil {
		return nil, fmt.Errorf("%w: %s curve has no controls", ErrInvalidControls, typ)
	}
	if ctl.CurveType() != typ {
		return nil, fmt.Errorf("%w: %s curve given %s controls", ErrInvalidControls, typ, ctl.CurveType())
	}
	return ctl.evaluate(c, segments)
}

// EvaluateHermite samples the Hermite curve at t = i/segments:
//
//	p(t) = h0·P0 + h1·P1 + h2·T0 + h3·T1
//
// The first and last samples equal P0 and P1.
func EvaluateHermite(c *basis.Cache, ctl HermiteControls, segments int) ([]Point, error) {
	if err := checkSegments(segments); err != nil {
		return nil, err
	}
	out := make([]Point, 0, segments+1)
	return appendHermite(out, c.HermiteBasis(segments), ctl[0], ctl[1], ctl[2], ctl[3]), nil
}

// appendHermite appends one sample per table row.
func appendHermite(out []Point, table basis.HermiteTable, p0, t0, p1, t1 Point) []Point {
	for _, h := range table {
		out = append(out, Point{
			X: h[0]*p0.X + h[1]*p1.X + h[2]*t0.X + h[3]*t1.X,
			Y: h[0]*p0.Y + h[1]*p1.Y + h[2]*t0.Y + h[3]*t1.Y,
		})
	}
	return out
}

// EvaluateCardinal samples a cardinal spline through ctl.Points.
//
// Each consecutive pair (p1, p2) is drawn as a Hermite piece with tangents
// alpha·(p2-p0) and alpha·(p3-p1), alpha = (1-tension)/2, where p0 and p3
// are the neighbouring points. At the ends the missing neighbour is the
// endpoint itself. Pieces share their join sample, which is emitted once,
// so the result has (len(Points)-1)·segments+1 samples.
func EvaluateCardinal(c *basis.Cache, ctl CardinalControls, segments int) ([]Point, error) {
	pts := ctl.Points
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: cardinal spline needs at least 2 points, got %d",
			ErrInvalidControls, len(pts))
	}
	if math.IsNaN(ctl.Tension) || ctl.Tension < -1 || ctl.Tension > 1 {
		return nil, fmt.Errorf("%w: cardinal tension %v outside [-1, 1]", ErrInvalidControls, ctl.Tension)
	}
	if err := checkSegments(segments); err != nil {
		return nil, err
	}

	alpha := (1 - ctl.Tension) / 2
	table := c.HermiteBasis(segments)
	last := len(pts) - 1

	out := make([]Point, 0, last*segments+1)
	for i := 0; i < last; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, last)]

		t1 := p2.Sub(p0).Mul(alpha)
		t2 := p3.Sub(p1).Mul(alpha)

		out = appendHermite(out, table, p1, t1, p2, t2)
		if i < last-1 {
			// The next piece starts with the same sample.
			out = out[:len(out)-1]
		}
	}
	return out, nil
}

// EvaluateBezier samples the Bezier curve defined by ctl.
//
// Cubic curves use the closed form: the power basis (t³, t², t, 1) times
// the cubic Bezier matrix. Every other degree blends the controls with the
// Bernstein weights C(d,k)·t^k·(1-t)^(d-k). A single control point yields
// segments+1 copies of that point.
func EvaluateBezier(c *basis.Cache, ctl BezierControls, segments int) ([]Point, error) {
	if len(ctl) == 0 {
		return nil, fmt.Errorf("%w: bezier curve needs at least 1 control point", ErrInvalidControls)
	}
	if ctl.Degree() > MaxBezierDegree {
		return nil, fmt.Errorf("%w: bezier degree %d exceeds %d",
			ErrInvalidControls, ctl.Degree(), MaxBezierDegree)
	}
	if err := checkSegments(segments); err != nil {
		return nil, err
	}

	out := make([]Point, 0, segments+1)
	if ctl.Degree() == 3 {
		for _, w := range c.CubicBlend(segments) {
			out = append(out, blend(ctl, w[:]))
		}
		return out, nil
	}

	for _, w := range c.BernsteinBlending(ctl.Degree(), segments) {
		out = append(out, blend(ctl, w))
	}
	return out, nil
}

// blend returns Σ weights[k]·pts[k].
func blend(pts []Point, weights []float64) Point {
	var p Point
	for k, w := range weights {
		p.X += w * pts[k].X
		p.Y += w * pts[k].Y
	}
	return p
}

func checkSegments(segments int) error {
	if segments <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSegments, segments)
	}
	return nil
}
