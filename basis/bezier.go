package basis

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
)

// cubicBezier is the cubic Bezier basis matrix. Row j holds the
// coefficients of t^(3-j); column k belongs to control point k.
var cubicBezier = [4][4]float64{
	{-1, 3, -3, 1},
	{3, -6, 3, 0},
	{-3, 3, 0, 0},
	{1, 0, 0, 0},
}

// CubicBezierMatrix returns the 4×4 cubic Bezier basis matrix.
// Multiplying a power basis row (t³, t², t, 1) by the matrix yields the four
// Bernstein weights of degree 3.
func (c *Cache) CubicBezierMatrix() [4][4]float64 {
	c.matrixOnce.Do(func() {
		c.matrix = cubicBezier
	})
	return c.matrix
}

// PowerBasis returns the rows (t³, t², t, 1) for t = i/segments.
// Returns nil if segments <= 0.
func (c *Cache) PowerBasis(segments int) PowerTable {
	if segments <= 0 {
		return nil
	}
	return c.power.GetOrCreate(segments, func() PowerTable {
		logger().Debug("basis: building power table", slog.Int("segments", segments))
		table := make(PowerTable, segments+1)
		for i := range table {
			t := sampleT(i, segments)
			table[i] = [4]float64{t * t * t, t * t, t, 1}
		}
		return table
	})
}

// CubicBlend returns the closed-form cubic Bezier weights for each sample:
// the product of PowerBasis(segments) and CubicBezierMatrix.
// Returns nil if segments <= 0.
func (c *Cache) CubicBlend(segments int) PowerTable {
	power := c.PowerBasis(segments)
	if power == nil {
		return nil
	}
	m := c.CubicBezierMatrix()
	return c.cubic.GetOrCreate(segments, func() PowerTable {
		logger().Debug("basis: building cubic blend table", slog.Int("segments", segments))
		return multiply(power, m)
	})
}

// multiply computes rows × m with gonum.
func multiply(rows PowerTable, m [4][4]float64) PowerTable {
	lhs := mat.NewDense(len(rows), 4, nil)
	for i, r := range rows {
		lhs.SetRow(i, r[:])
	}
	rhs := mat.NewDense(4, 4, nil)
	for j, r := range m {
		rhs.SetRow(j, r[:])
	}

	var product mat.Dense
	product.Mul(lhs, rhs)

	out := make(PowerTable, len(rows))
	for i := range out {
		for k := 0; k < 4; k++ {
			out[i][k] = product.At(i, k)
		}
	}
	return out
}

// BernsteinBlending returns, for t = i/segments, the weights
// C(degree, k)·t^k·(1-t)^(degree-k) for k = 0..degree.
//
// Returns nil if segments <= 0, degree < 0 or degree > MaxBinomialN.
func (c *Cache) BernsteinBlending(degree, segments int) BlendingTable {
	if segments <= 0 || degree < 0 || degree > MaxBinomialN {
		return nil
	}
	coeffs := c.binomial.row(degree)
	key := blendKey{degree: degree, segments: segments}
	return c.blending.GetOrCreate(key, func() BlendingTable {
		logger().Debug("basis: building bernstein table",
			slog.Int("degree", degree), slog.Int("segments", segments))
		table := make(BlendingTable, segments+1)
		for i := range table {
			t := sampleT(i, segments)
			weights := make([]float64, degree+1)
			for k := range weights {
				// math.Pow(0, 0) is 1, so the endpoints resolve to a single control.
				weights[k] = float64(coeffs[k]) * math.Pow(t, float64(k)) * math.Pow(1-t, float64(degree-k))
			}
			table[i] = weights
		}
		return table
	})
}
