// File: config.go
// Role: tunable mesh constants, exposed as functional options in the
// style of core.GraphOption / core.EdgeOption from the teacher.
package meshkit

// Config holds the tuning knobs spec.md leaves as named constants.
// Zero value is NOT valid; use NewConfig to get the documented defaults.
type Config struct {
	// RecyclerCap bounds the idle free-list of destroyed simplices
	// (spec §4.4: "bounded free-list (cap 256)").
	RecyclerCap int

	// SampleConstant2D / SampleConstant3D are the k in the sample-set
	// size formula ceil(k * N^(1/d)) from spec §4.5.
	SampleConstant2D float64
	SampleConstant3D float64

	// StepMax bounds k-step nabor traversal (spec §4.7); also the
	// precondition-violation ceiling for that query (spec §7).
	StepMax int

	// DebugValidate enables validate() after every mutation (spec §7,
	// §9 "keep validate() behind a compile-time or build-config switch").
	// Off by default so production builds do not pay its cost.
	DebugValidate bool
}

// DefaultRecyclerCap is the cap spec §4.4/§5 names explicitly.
const DefaultRecyclerCap = 256

// DefaultStepMax is the cap spec §4.7/§7 names explicitly.
const DefaultStepMax = 256

const (
	defaultSampleConstant2D = 2.22
	defaultSampleConstant3D = 2.0
)

// NewConfig returns the documented defaults, then applies opts.
func NewConfig(opts ...Option) Config {
	c := Config{
		RecyclerCap:      DefaultRecyclerCap,
		SampleConstant2D: defaultSampleConstant2D,
		SampleConstant3D: defaultSampleConstant3D,
		StepMax:          DefaultStepMax,
		DebugValidate:    false,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option configures a Config before a mesh is constructed.
type Option func(*Config)

// WithRecyclerCap overrides the idle free-list cap.
func WithRecyclerCap(cap int) Option {
	return func(c *Config) { c.RecyclerCap = cap }
}

// WithSampleConstant2D overrides the 2D sample-set constant k.
func WithSampleConstant2D(k float64) Option {
	return func(c *Config) { c.SampleConstant2D = k }
}

// WithSampleConstant3D overrides the 3D sample-set constant k.
func WithSampleConstant3D(k float64) Option {
	return func(c *Config) { c.SampleConstant3D = k }
}

// WithStepMax overrides the k-step nabor traversal ceiling.
func WithStepMax(stepMax int) Option {
	return func(c *Config) { c.StepMax = stepMax }
}

// WithDebugValidate turns on validate() after every mutation.
func WithDebugValidate() Option {
	return func(c *Config) { c.DebugValidate = true }
}
