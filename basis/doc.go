// Package basis computes and memoizes the coefficient tables used to
// evaluate parametric curves on a fixed sample grid.
//
// A table is built the first time a key is requested and reused for the
// lifetime of the owning [Cache]:
//
//	c := basis.New()
//	h := c.HermiteBasis(20)          // 21 rows of (h0, h1, h2, h3)
//	w := c.BernsteinBlending(5, 20)  // 21 rows of 6 Bernstein weights
//
// Sample i of a table with n segments sits at t = i/n, so every table has
// n+1 rows and includes both t=0 and t=1.
//
// Tables returned by a Cache are shared between callers and must be
// treated as read-only.
//
// A Cache is safe for concurrent use.
package basis
