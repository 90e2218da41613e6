package basis

import (
	"log/slog"
	"sync"
)

// MaxBinomialN is the largest n for which every C(n, k) fits in a uint64.
const MaxBinomialN = 67

// Binomial returns the binomial coefficient C(n, k).
//
// Pascal's triangle is extended row by row up to n and every row is kept,
// so later calls for any n' <= n are lookups. Returns 0 when k is outside
// [0, n] or n is outside [0, MaxBinomialN].
func (c *Cache) Binomial(n, k int) uint64 {
	if n < 0 || n > MaxBinomialN || k < 0 || k > n {
		return 0
	}
	return c.binomial.row(n)[k]
}

// pascal holds the rows of Pascal's triangle built so far.
type pascal struct {
	mu   sync.Mutex
	rows [][]uint64
}

// row returns row n, extending the triangle iteratively when needed.
// The returned slice is shared and must not be modified.
func (p *pascal) row(n int) []uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n < len(p.rows) {
		return p.rows[n]
	}

	logger().Debug("basis: extending pascal triangle",
		slog.Int("from", len(p.rows)), slog.Int("to", n))
	for m := len(p.rows); m <= n; m++ {
		r := make([]uint64, m+1)
		r[0], r[m] = 1, 1
		for k := 1; k < m; k++ {
			r[k] = p.rows[m-1][k-1] + p.rows[m-1][k]
		}
		p.rows = append(p.rows, r)
	}
	return p.rows[n]
}

func (p *pascal) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.rows)
}
