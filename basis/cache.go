package basis

import (
	"sync"

	"github.com/gogpu/pixcurve/internal/cache"
)

// HermiteTable holds one (h0, h1, h2, h3) row per sample.
type HermiteTable [][4]float64

// PowerTable holds one four-coefficient row per sample. For PowerBasis the
// row is (t³, t², t, 1); for CubicBlend it is the Bernstein weight of each
// of the four cubic control points.
type PowerTable [][4]float64

// BlendingTable holds, per sample, the degree+1 Bernstein weights.
type BlendingTable [][]float64

// blendKey identifies a Bernstein blending table.
type blendKey struct {
	degree   int
	segments int
}

// Cache memoizes basis tables by their parameters.
//
// Tables are created lazily and never invalidated. The zero value is not
// usable; create caches with New.
type Cache struct {
	hermite  *cache.Memo[int, HermiteTable]
	power    *cache.Memo[int, PowerTable]
	cubic    *cache.Memo[int, PowerTable]
	blending *cache.Memo[blendKey, BlendingTable]

	matrixOnce sync.Once
	matrix     [4][4]float64

	binomial pascal
}

// New creates an empty basis cache.
func New() *Cache {
	return &Cache{
		hermite:  cache.New[int, HermiteTable](),
		power:    cache.New[int, PowerTable](),
		cubic:    cache.New[int, PowerTable](),
		blending: cache.New[blendKey, BlendingTable](),
	}
}

// Stats reports per-family cache statistics.
type Stats struct {
	Hermite  cache.Stats
	Power    cache.Stats
	Cubic    cache.Stats
	Blending cache.Stats
	// BinomialRows is the number of Pascal's-triangle rows built so far.
	BinomialRows int
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Hermite:      c.hermite.Stats(),
		Power:        c.power.Stats(),
		Cubic:        c.cubic.Stats(),
		Blending:     c.blending.Stats(),
		BinomialRows: c.binomial.len(),
	}
}

// sampleT returns the curve parameter of sample i out of segments.
func sampleT(i, segments int) float64 {
	return float64(i) / float64(segments)
}
