// File: perturb.go
// Role: the package-local hook into perturb.Point2 (spec §4.3), kept as
// its own tiny file so insert.go/move.go read as "perturb, then locate"
// without an import alias at every call site.
package trimesh

import "github.com/dhale/delaunay/perturb"

func perturbCoords(x, y float32) (float64, float64) {
	return perturb.Point2(x, y)
}
