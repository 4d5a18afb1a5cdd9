// File: perturb.go
// Role: the package-local hook into perturb.Point3.
package tetmesh

import "github.com/dhale/delaunay/perturb"

func perturbCoords(x, y, z float32) (float64, float64, float64) {
	return perturb.Point3(x, y, z)
}
