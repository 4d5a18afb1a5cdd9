// File: errors.go
// Role: sentinel package errors, in the teacher's core/types.go style
// (one var block, doc comment per error).
package meshkit

import "errors"

var (
	// ErrDuplicateSite indicates an add/move landed exactly on an
	// existing in-mesh site's coordinates (spec §4.5/§4.6/§4.6c).
	ErrDuplicateSite = errors.New("meshkit: duplicate site coordinates")

	// ErrNotInMesh indicates an operation required an in-mesh site (a
	// non-nil witness) but the site supplied is not currently in the mesh.
	ErrNotInMesh = errors.New("meshkit: site is not in the mesh")

	// ErrStepTooLarge indicates a k-step nabor query asked for more than
	// Config.StepMax steps (spec §7 precondition violation).
	ErrStepTooLarge = errors.New("meshkit: step exceeds configured StepMax")

	// ErrCorrupt indicates validate() found a broken invariant. There is
	// no recovery path (spec §7): this is always fatal.
	ErrCorrupt = errors.New("meshkit: mesh invariant violated")
)
