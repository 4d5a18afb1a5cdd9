// Package predicate implements the adaptive, exact-sign geometric
// predicates the mesh engines use to decide topology: orient2d, orient3d,
// incircle, insphere, a weighted inorthosphere (power/orthogonal sphere
// test for future weighted sites), and the non-adaptive circumcenter
// helpers center_circle_2d, center_circle_3d and center_sphere_3d.
//
// Every sign-bearing predicate runs a two-stage adaptive scheme (spec
// §4.2): a fast floating-point evaluation certified against a roundoff
// bound ("permanent"); if that bound can't certify the sign, an exact
// stage re-derives the determinant with nonoverlapping-expansion
// arithmetic from the expansion package and returns the sign of its
// most significant component.
//
// The exact stage here is built from one general-purpose recursive
// Laplace-expansion determinant (exact.go) rather than Shewchuk's
// hand-unrolled, heavily special-cased per-predicate exact paths — see
// DESIGN.md for why that tradeoff was made. The guarantee the spec cares
// about (the returned sign is always mathematically correct) holds
// either way; only the constant-factor performance of the rarely-taken
// exact path differs.
package predicate
