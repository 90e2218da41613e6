package pixcurve

import (
	"fmt"

	"github.com/gogpu/pixcurve/basis"
)

// CurveType selects the curve family drawn by Renderer.DrawCurve.
type CurveType int

const (
	// Hermite is a cubic curve defined by two endpoints and their tangents.
	Hermite CurveType = iota
	// Cardinal is a piecewise cubic spline through a sequence of points
	// with adjustable tension. Tension 0 gives a Catmull-Rom spline.
	Cardinal
	// Bezier is a Bezier curve of any degree.
	Bezier
)

// String returns the lower-case curve family name.
func (t CurveType) String() string {
	switch t {
	case Hermite:
		return "hermite"
	case Cardinal:
		return "cardinal"
	case Bezier:
		return "bezier"
	default:
		return fmt.Sprintf("CurveType(%d)", int(t))
	}
}

// ParseCurveType is the inverse of CurveType.String.
func ParseCurveType(s string) (CurveType, error) {
	for _, t := range []CurveType{Hermite, Cardinal, Bezier} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCurveType, s)
}

// MaxBezierDegree is the highest Bezier degree the evaluator accepts.
const MaxBezierDegree = basis.MaxBinomialN

// Controls is the control data of one curve: HermiteControls,
// CardinalControls or BezierControls.
type Controls interface {
	// CurveType reports the family the controls belong to.
	CurveType() CurveType

	// ControlPoints returns the positional control points, the ones drawn
	// as markers and joined by the control polygon. Hermite tangents are
	// not positions and are excluded.
	ControlPoints() []Point

	evaluate(c *basis.Cache, segments int) ([]Point, error)
}

// HermiteControls holds P0, T0, P1, T1: the start point, the tangent at
// the start, the end point and the tangent at the end.
type HermiteControls [4]Point

// NewHermiteControls builds HermiteControls from a slice that must hold
// exactly four entries in P0, T0, P1, T1 order.
func NewHermiteControls(pts []Point) (HermiteControls, error) {
	var h HermiteControls
	if len(pts) != len(h) {
		return h, fmt.Errorf("%w: hermite needs 4 controls (P0, T0, P1, T1), got %d",
			ErrInvalidControls, len(pts))
	}
	copy(h[:], pts)
	return h, nil
}

// CurveType implements Controls.
func (HermiteControls) CurveType() CurveType { return Hermite }

// ControlPoints returns the two endpoints.
func (h HermiteControls) ControlPoints() []Point { return []Point{h[0], h[2]} }

// Clone returns a copy of h. HermiteControls is an array, so plain
// assignment already copies; Clone exists for symmetry with the other
// control types.
func (h HermiteControls) Clone() HermiteControls { return h }

func (h HermiteControls) evaluate(c *basis.Cache, segments int) ([]Point, error) {
	return EvaluateHermite(c, h, segments)
}

// CardinalControls holds the points a cardinal spline passes through and
// its tension, usually in [-1, 1]. The spline tangent at each point is
// (1-Tension)/2 times the chord between its neighbours.
type CardinalControls struct {
	Points  []Point
	Tension float64
}

// CurveType implements Controls.
func (CardinalControls) CurveType() CurveType { return Cardinal }

// ControlPoints returns the interpolated points.
func (cc CardinalControls) ControlPoints() []Point { return cc.Points }

// Clone returns a deep copy of cc.
func (cc CardinalControls) Clone() CardinalControls {
	return CardinalControls{Points: clonePoints(cc.Points), Tension: cc.Tension}
}

func (cc CardinalControls) evaluate(c *basis.Cache, segments int) ([]Point, error) {
	return EvaluateCardinal(c, cc, segments)
}

// BezierControls holds the control points of a Bezier curve. The degree
// is len-1.
type BezierControls []Point

// CurveType implements Controls.
func (BezierControls) CurveType() CurveType { return Bezier }

// ControlPoints returns the control points.
func (b BezierControls) ControlPoints() []Point { return b }

// Degree returns len(b)-1.
func (b BezierControls) Degree() int { return len(b) - 1 }

// Clone returns a deep copy of b.
func (b BezierControls) Clone() BezierControls { return clonePoints(b) }

func (b BezierControls) evaluate(c *basis.Cache, segments int) ([]Point, error) {
	return EvaluateBezier(c, b, segments)
}

// NewControls builds the controls of a typ curve from a flat point list.
// For Hermite the list is P0, T0, P1, T1; tension is used only by Cardinal.
// The points are copied.
func NewControls(typ CurveType, pts []Point, tension float64) (Controls, error) {
	switch typ {
	case Hermite:
		h, err := NewHermiteControls(pts)
		if err != nil {
			return nil, err
		}
		return h, nil
	case Cardinal:
		return CardinalControls{Points: clonePoints(pts), Tension: tension}, nil
	case Bezier:
		return BezierControls(clonePoints(pts)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCurveType, int(typ))
	}
}
