package pixcurve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixcurve/basis"
)

const epsilon = 1e-9

func assertPoints(t *testing.T, want, got []Point, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].ApproxEqual(got[i], eps), "point %d = %v, want %v", i, got[i], want[i])
	}
}

func TestCurveTypeString(t *testing.T) {
	for _, typ := range []CurveType{Hermite, Cardinal, Bezier} {
		got, err := ParseCurveType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	assert.Equal(t, "CurveType(9)", CurveType(9).String())

	_, err := ParseCurveType("nurbs")
	assert.ErrorIs(t, err, ErrUnknownCurveType)
}

// -------------------------------------------------------------------
// Hermite
// -------------------------------------------------------------------

func TestEvaluateHermiteZeroTangents(t *testing.T) {
	ctl, err := NewHermiteControls([]Point{{0, 0}, {0, 0}, {10, 0}, {0, 0}})
	require.NoError(t, err)

	pts, err := EvaluateHermite(basis.New(), ctl, 4)
	require.NoError(t, err)

	// Zero tangents give a smoothstep, symmetric about the midpoint.
	require.Len(t, pts, 5)
	assertPoints(t, []Point{{0, 0}, {1.5625, 0}, {5, 0}, {8.4375, 0}, {10, 0}}, pts, epsilon)
}

func TestEvaluateHermiteChordTangents(t *testing.T) {
	// Tangents equal to the chord make the Hermite cubic degenerate to a
	// straight, evenly spaced interpolation.
	ctl := HermiteControls{{0, 0}, {10, 0}, {10, 0}, {10, 0}}
	pts, err := EvaluateHermite(basis.New(), ctl, 4)
	require.NoError(t, err)
	assertPoints(t, []Point{{0, 0}, {2.5, 0}, {5, 0}, {7.5, 0}, {10, 0}}, pts, epsilon)
}

func TestEvaluateHermiteEndpointsExact(t *testing.T) {
	ctl := HermiteControls{{100, 500}, {150, 200}, {900, 500}, {-200, 300}}
	for _, segments := range []int{1, 3, 20, 77} {
		pts, err := EvaluateHermite(basis.New(), ctl, segments)
		require.NoError(t, err)
		require.Len(t, pts, segments+1)
		assert.Equal(t, ctl[0], pts[0])
		assert.Equal(t, ctl[2], pts[segments])
	}
}

func TestNewHermiteControlsCount(t *testing.T) {
	for _, n := range []int{0, 3, 5} {
		_, err := NewHermiteControls(make([]Point, n))
		assert.ErrorIs(t, err, ErrInvalidControls, "n=%d", n)
	}
}

func TestEvaluateInvalidSegments(t *testing.T) {
	c := basis.New()
	h := HermiteControls{}
	cc := CardinalControls{Points: []Point{{0, 0}, {1, 1}}}
	b := BezierControls{{0, 0}, {1, 1}}

	for _, segments := range []int{0, -1} {
		pts, err := EvaluateHermite(c, h, segments)
		assert.ErrorIs(t, err, ErrInvalidSegments)
		assert.Empty(t, pts)

		pts, err = EvaluateCardinal(c, cc, segments)
		assert.ErrorIs(t, err, ErrInvalidSegments)
		assert.Empty(t, pts)

		pts, err = EvaluateBezier(c, b, segments)
		assert.ErrorIs(t, err, ErrInvalidSegments)
		assert.Empty(t, pts)
	}
}

// -------------------------------------------------------------------
// Cardinal
// -------------------------------------------------------------------

func TestEvaluateCardinalPassesThroughPoints(t *testing.T) {
	ctl := CardinalControls{Points: []Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}}}
	const segments = 10

	pts, err := EvaluateCardinal(basis.New(), ctl, segments)
	require.NoError(t, err)

	// Three pieces of 11 samples each, two shared joins dropped.
	require.Len(t, pts, 3*segments+1)
	for i, p := range ctl.Points {
		assert.True(t, p.ApproxEqual(pts[i*segments], epsilon), "sample %d = %v, want %v", i*segments, pts[i*segments], p)
	}

	for i := 1; i < len(pts); i++ {
		assert.NotEqual(t, pts[i-1], pts[i], "duplicate sample at %d", i)
	}
}

func TestEvaluateCardinalPieceMatchesHermite(t *testing.T) {
	c := basis.New()
	ctl := CardinalControls{Points: []Point{{0, 0}, {4, 2}, {8, 0}}, Tension: 0.5}
	pts, err := EvaluateCardinal(c, ctl, 6)
	require.NoError(t, err)
	require.Len(t, pts, 13)

	alpha := 0.25
	first, err := EvaluateHermite(c, HermiteControls{
		{0, 0}, Point{4, 2}.Sub(Point{0, 0}).Mul(alpha),
		{4, 2}, Point{8, 0}.Sub(Point{0, 0}).Mul(alpha),
	}, 6)
	require.NoError(t, err)
	second, err := EvaluateHermite(c, HermiteControls{
		{4, 2}, Point{8, 0}.Sub(Point{0, 0}).Mul(alpha),
		{8, 0}, Point{8, 0}.Sub(Point{4, 2}).Mul(alpha),
	}, 6)
	require.NoError(t, err)

	assertPoints(t, append(first[:6:6], second...), pts, epsilon)
}

func TestEvaluateCardinalTwoPoints(t *testing.T) {
	// With both neighbours clamped, two points give a straight line.
	pts, err := EvaluateCardinal(basis.New(), CardinalControls{Points: []Point{{0, 0}, {8, 0}}}, 4)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	for _, p := range pts {
		assert.InDelta(t, 0, p.Y, epsilon)
	}
	assert.Equal(t, Point{8, 0}, pts[4])
}

func TestEvaluateCardinalInvalid(t *testing.T) {
	c := basis.New()
	tests := []struct {
		name string
		ctl  CardinalControls
	}{
		{"no points", CardinalControls{}},
		{"one point", CardinalControls{Points: []Point{{1, 1}}}},
		{"tension too high", CardinalControls{Points: []Point{{0, 0}, {1, 1}}, Tension: 1.5}},
		{"tension too low", CardinalControls{Points: []Point{{0, 0}, {1, 1}}, Tension: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := EvaluateCardinal(c, tt.ctl, 10)
			assert.ErrorIs(t, err, ErrInvalidControls)
			assert.Nil(t, pts)
		})
	}
}

// -------------------------------------------------------------------
// Bezier
// -------------------------------------------------------------------

func TestEvaluateBezierCubicMatchesBernstein(t *testing.T) {
	c := basis.New()
	controls := []BezierControls{
		{{0, 0}, {0, 10}, {10, 10}, {10, 0}},
		{{100, 500}, {-40, 20}, {900, 900}, {300, 10}},
		{{1.5, -2.25}, {1e3, 7}, {-3e2, 44}, {0.5, 0.5}},
	}
	for _, ctl := range controls {
		for _, segments := range []int{1, 4, 10, 33} {
			closed, err := EvaluateBezier(c, ctl, segments)
			require.NoError(t, err)

			weights := c.BernsteinBlending(3, segments)
			require.Len(t, closed, len(weights))
			for i, w := range weights {
				want := blend(ctl, w)
				assert.True(t, want.ApproxEqual(closed[i], 1e-9), "segments=%d i=%d: %v vs %v", segments, i, closed[i], want)
			}
		}
	}
}

func TestEvaluateBezierDegreeZero(t *testing.T) {
	pts, err := EvaluateBezier(basis.New(), BezierControls{{5, 5}}, 3)
	require.NoError(t, err)
	assert.Equal(t, []Point{{5, 5}, {5, 5}, {5, 5}, {5, 5}}, pts)
}

func TestEvaluateBezierLinear(t *testing.T) {
	pts, err := EvaluateBezier(basis.New(), BezierControls{{0, 0}, {4, 8}}, 4)
	require.NoError(t, err)
	assertPoints(t, []Point{{0, 0}, {1, 2}, {2, 4}, {3, 6}, {4, 8}}, pts, epsilon)
}

func TestEvaluateBezierQuadratic(t *testing.T) {
	pts, err := EvaluateBezier(basis.New(), BezierControls{{0, 0}, {1, 2}, {2, 0}}, 2)
	require.NoError(t, err)
	assertPoints(t, []Point{{0, 0}, {1, 1}, {2, 0}}, pts, epsilon)
}

func TestEvaluateBezierEndpoints(t *testing.T) {
	ctl := BezierControls{{3, 1}, {9, 9}, {-4, 2}, {7, 7}, {0, 5}, {2, 2}}
	pts, err := EvaluateBezier(basis.New(), ctl, 16)
	require.NoError(t, err)
	assert.Equal(t, ctl[0], pts[0])
	assert.Equal(t, ctl[len(ctl)-1], pts[16])
}

func TestEvaluateBezierInvalid(t *testing.T) {
	c := basis.New()

	_, err := EvaluateBezier(c, nil, 10)
	assert.ErrorIs(t, err, ErrInvalidControls)

	_, err = EvaluateBezier(c, make(BezierControls, MaxBezierDegree+2), 10)
	assert.ErrorIs(t, err, ErrInvalidControls)
}

// -------------------------------------------------------------------
// Dispatch and controls
// -------------------------------------------------------------------

func TestEvaluateDispatch(t *testing.T) {
	c := basis.New()

	_, err := Evaluate(c, Hermite, BezierControls{{0, 0}, {1, 1}, {2, 2}}, 10)
	assert.ErrorIs(t, err, ErrInvalidControls)

	_, err = Evaluate(c, Cardinal, nil, 10)
	assert.ErrorIs(t, err, ErrInvalidControls)

	_, err = Evaluate(c, CurveType(7), BezierControls{{0, 0}}, 10)
	assert.ErrorIs(t, err, ErrUnknownCurveType)

	pts, err := Evaluate(c, Bezier, BezierControls{{0, 0}, {2, 2}}, 2)
	require.NoError(t, err)
	assert.Len(t, pts, 3)
}

func TestNewControls(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {2, 2}, {0, 1}}

	h, err := NewControls(Hermite, pts, 0)
	require.NoError(t, err)
	assert.Equal(t, Hermite, h.CurveType())
	assert.Equal(t, []Point{{0, 0}, {2, 2}}, h.ControlPoints())

	cc, err := NewControls(Cardinal, pts, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.3, cc.(CardinalControls).Tension)

	b, err := NewControls(Bezier, pts, 0)
	require.NoError(t, err)
	pts[0] = Point{99, 99}
	assert.Equal(t, Point{0, 0}, b.ControlPoints()[0], "points must be copied")

	_, err = NewControls(Hermite, pts[:3], 0)
	assert.True(t, errors.Is(err, ErrInvalidControls))

	_, err = NewControls(CurveType(-1), pts, 0)
	assert.ErrorIs(t, err, ErrUnknownCurveType)
}

func TestControlsClone(t *testing.T) {
	cc := CardinalControls{Points: []Point{{1, 1}, {2, 2}}, Tension: 0.2}
	cloned := cc.Clone()
	cloned.Points[0] = Point{9, 9}
	assert.Equal(t, Point{1, 1}, cc.Points[0])
	assert.Equal(t, 0.2, cloned.Tension)

	b := BezierControls{{1, 1}}
	bc := b.Clone()
	bc[0].X = 5
	assert.Equal(t, 1.0, b[0].X)

	h := HermiteControls{{1, 1}}
	hc := h.Clone()
	hc[0].X = 5
	assert.Equal(t, 1.0, h[0].X)

	assert.Nil(t, CardinalControls{}.Clone().Points)
}
