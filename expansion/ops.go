// File: ops.go
// Role: linear-time nonoverlapping-expansion merge (sum) and expansion-by-
// scalar product, both with zero-component elimination.
//
// Both routines assume their expansion-valued arguments are nonoverlapping
// and sorted by increasing magnitude (the representation produced
// throughout this package). They preserve that property in the result and
// additionally preserve "strongly nonoverlapping" inputs as strongly
// nonoverlapping outputs, which is what the adaptive predicate stage needs
// from its accumulated partial sums.
package expansion

// ExpansionSumZeroElimFast merges two nonoverlapping expansions e and f
// (each sorted by increasing magnitude) into their sum, a new
// nonoverlapping expansion with exact zero components dropped (a sum that
// is exactly zero comes back as the single component 0). This is
// the linear-time merge variant (as opposed to the quadratic
// repeated-TwoSum insertion), valid because both inputs are already
// internally nonoverlapping and sorted.
func ExpansionSumZeroElimFast(e, f []float64) []float64 {
	elen, flen := len(e), len(f)
	if elen == 0 {
		return appendNonZero(nil, f)
	}
	if flen == 0 {
		return appendNonZero(nil, e)
	}

	merged := make([]float64, 0, elen+flen)
	i, j := 0, 0
	// Merge by increasing magnitude, classical merge-sort merge step.
	var enow, fnow float64
	enow, fnow = e[i], f[j]
	var q float64
	if absf(fnow) > absf(enow) {
		q = enow
		i++
	} else {
		q = fnow
		j++
	}

	for i < elen && j < flen {
		enow, fnow = e[i], f[j]
		var g float64
		if absf(fnow) > absf(enow) {
			g = enow
			i++
		} else {
			g = fnow
			j++
		}
		qNew, hh := TwoSumFast(g, q)
		if absf(g) < absf(q) {
			// TwoSumFast(g, q) needs |g| >= |q|; when that is violated
			// (q bigger) fall back to the general TwoSum so the EFT
			// remains exact regardless of merge order.
			qNew, hh = TwoSum(q, g)
		}
		q = qNew
		if hh != 0 {
			merged = append(merged, hh)
		}
	}
	for ; i < elen; i++ {
		qNew, hh := TwoSum(q, e[i])
		q = qNew
		if hh != 0 {
			merged = append(merged, hh)
		}
	}
	for ; j < flen; j++ {
		qNew, hh := TwoSum(q, f[j])
		q = qNew
		if hh != 0 {
			merged = append(merged, hh)
		}
	}
	if q != 0 || len(merged) == 0 {
		merged = append(merged, q)
	}
	return merged
}

// ScaleExpansionZeroElim multiplies an expansion e by a scalar b, returning
// a new nonoverlapping expansion with zero components dropped. Linear in
// len(e) (two TwoProduct/TwoSum pairs per input component).
func ScaleExpansionZeroElim(e []float64, b float64) []float64 {
	if len(e) == 0 {
		return nil
	}
	bHi, bLo := Split(b)
	result := make([]float64, 0, 2*len(e)+1)

	q, hh := TwoProductPreSplit(e[0], b, bHi, bLo)
	if hh != 0 {
		result = append(result, hh)
	}
	for i := 1; i < len(e); i++ {
		prodX, prodY := TwoProductPreSplit(e[i], b, bHi, bLo)
		sumX, sumY := TwoSum(q, prodY)
		if sumY != 0 {
			result = append(result, sumY)
		}
		finalX, finalY := TwoSumFast(prodX, sumX)
		q = finalX
		if finalY != 0 {
			result = append(result, finalY)
		}
	}
	if q != 0 || len(result) == 0 {
		result = append(result, q)
	}
	return result
}

// Estimate returns the floating-point sum of an expansion's components,
// used by callers only as a magnitude estimate (e.g. the "permanent" bound
// in the adaptive fast stage), never as a replacement for the exact sign.
func Estimate(e []float64) float64 {
	var s float64
	for _, c := range e {
		s += c
	}
	return s
}

// MostSignificant returns the expansion's highest-magnitude (last) component,
// whose sign equals the sign of the value the expansion represents.
func MostSignificant(e []float64) float64 {
	if len(e) == 0 {
		return 0
	}
	return e[len(e)-1]
}

func appendNonZero(dst, src []float64) []float64 {
	for _, v := range src {
		if v != 0 {
			dst = append(dst, v)
		}
	}
	if len(dst) == 0 {
		return []float64{0}
	}
	return dst
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
