// File: exact.go
// Role: the exact stage's shared machinery — lifting plain doubles and
// coordinate differences into expansions, a generic expansion*expansion
// product, and a recursive Laplace-expansion determinant over a matrix of
// expansions. Every predicate's exact stage is one call into detN below.
package predicate

import "github.com/dhale/delaunay/expansion"

// diffExpansion returns the exact value (a-b) as a 2-component expansion,
// lowest magnitude first, via expansion.TwoDiff.
func diffExpansion(a, b float64) []float64 {
	x, y := expansion.TwoDiff(a, b)
	return []float64{y, x}
}

// liftExpansion wraps a plain float64 as a trivial one-component expansion.
func liftExpansion(v float64) []float64 { return []float64{v} }

// negateExpansion returns -e component-wise; negation of a nonoverlapping
// expansion is itself nonoverlapping, so no zero-elimination is needed.
func negateExpansion(e []float64) []float64 {
	out := make([]float64, len(e))
	for i, c := range e {
		out[i] = -c
	}
	return out
}

// addExpansions sums two expansions via the linear-time zero-eliminating
// merge (component A).
func addExpansions(e, f []float64) []float64 {
	return expansion.ExpansionSumZeroElimFast(e, f)
}

// subExpansions computes e-f.
func subExpansions(e, f []float64) []float64 {
	return addExpansions(e, negateExpansion(f))
}

// mulExpansions computes the exact product of two arbitrary-length
// nonoverlapping expansions by distributing: for every component of f,
// scale e by it and accumulate. O(len(e)*len(f)) TwoProduct/TwoSum calls;
// simpler than Shewchuk's special-cased two_two_product, and not limited
// to short operands: detN multiplies matrix entries by whole minors, which
// can hold many components.
func mulExpansions(e, f []float64) []float64 {
	if len(e) == 0 || len(f) == 0 {
		return nil
	}
	var result []float64
	for _, c := range f {
		result = addExpansions(result, expansion.ScaleExpansionZeroElim(e, c))
	}
	return result
}

// sqDiffExpansion returns the exact value (a-b)^2 as an expansion.
func sqDiffExpansion(a, b float64) []float64 {
	d := diffExpansion(a, b)
	return mulExpansions(d, d)
}

// detN computes the exact determinant of an n x n matrix of expansions
// via recursive Laplace (cofactor) expansion along the first row. n is at
// most 4 for every predicate in this package (orient2d uses n=2, orient3d
// and incircle use n=3, insphere/inorthosphere use n=4), so the O(n!)
// recursive cost (at most 40 expansion multiplications, for n=4) never becomes a performance
// concern in practice.
func detN(m [][][]float64) []float64 {
	n := len(m)
	if n == 1 {
		return m[0][0]
	}
	if n == 2 {
		// Direct 2x2 for clarity: ad - bc.
		ad := mulExpansions(m[0][0], m[1][1])
		bc := mulExpansions(m[0][1], m[1][0])
		return subExpansions(ad, bc)
	}

	var total []float64
	positive := true
	for col := 0; col < n; col++ {
		minor := buildMinor(m, 0, col)
		sub := detN(minor)
		term := mulExpansions(m[0][col], sub)
		if !positive {
			term = negateExpansion(term)
		}
		total = addExpansions(total, term)
		positive = !positive
	}
	return total
}

// buildMinor returns the (n-1)x(n-1) submatrix of m with row r and
// column c removed.
func buildMinor(m [][][]float64, r, c int) [][][]float64 {
	n := len(m)
	minor := make([][][]float64, 0, n-1)
	for i := 0; i < n; i++ {
		if i == r {
			continue
		}
		row := make([][]float64, 0, n-1)
		for j := 0; j < n; j++ {
			if j == c {
				continue
			}
			row = append(row, m[i][j])
		}
		minor = append(minor, row)
	}
	return minor
}
