// Package expansion implements error-free floating-point transforms (EFTs)
// and the nonoverlapping-expansion arithmetic that the predicate package
// builds its exact fallback stage on.
//
// Everything here works in IEEE-754 binary64 with round-to-nearest-even and
// assumes the compiler neither reorders the arithmetic nor fuses any of it
// into an FMA — see the package-level note on build flags in eft.go.
//
// An "expansion" is a slice of float64 components, strictly increasing in
// magnitude and pairwise nonoverlapping in significand bits, whose exact
// sum (in infinite precision) equals the value the expansion represents.
// Summing or scaling two expansions with expansion_sum_zero_elim_fast /
// scale_expansion_zero_elim preserves that property and drops any exact
// zero component produced along the way.
package expansion
