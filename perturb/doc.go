// Package perturb maps user-supplied float32 coordinates into the float64
// coordinates the mesh actually stores, applying a deterministic low-order
// bit perturbation (spec §4.3) so that three or more sites are cocircular/
// coplanar/cospherical only with probability zero for generic input, while
// guaranteeing the perturbed double still rounds back to the original
// float32 the caller handed in.
//
// Perturbation is a pure function of a site's own coordinates: it is
// applied exactly once, at the moment a site's position is set while the
// site is not yet part of a mesh (see NewSite and MoveSite in trimesh and
// tetmesh).
package perturb
