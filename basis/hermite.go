package basis

import "log/slog"

// HermiteBasis returns the cubic Hermite basis sampled at t = i/segments,
// i = 0..segments:
//
//	h0 = 2t³ - 3t² + 1
//	h1 = -2t³ + 3t²
//	h2 = t³ - 2t² + t
//	h3 = t³ - t²
//
// h0 and h1 weight the endpoints, h2 and h3 the tangents. Returns nil if
// segments <= 0.
func (c *Cache) HermiteBasis(segments int) HermiteTable {
	if segments <= 0 {
		return nil
	}
	return c.hermite.GetOrCreate(segments, func() HermiteTable {
		logger().Debug("basis: building hermite table", slog.Int("segments", segments))
		return buildHermite(segments)
	})
}

func buildHermite(segments int) HermiteTable {
	table := make(HermiteTable, segments+1)
	for i := range table {
		t := sampleT(i, segments)
		t2 := t * t
		t3 := t2 * t
		table[i] = [4]float64{
			2*t3 - 3*t2 + 1,
			-2*t3 + 3*t2,
			t3 - 2*t2 + t,
			t3 - t2,
		}
	}
	return table
}
