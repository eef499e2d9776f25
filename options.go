package vgr

// BufferCount is the number of scenes the engine cycles through. A backend
// may still be consuming frame k-1 or k-2 while frame k is being built; it
// must be done with a buffer by the time the rotation returns to it.
const BufferCount = 3

const (
	// tileCols and tileRows define the fixed grid curve primitives are
	// decomposed into. Each tile restricts the shader's distance
	// evaluation to a quarter of the curve's bound.
	tileCols = 2
	tileRows = 2

	// boundMargin is the antialiasing margin, in local units, added around
	// every primitive's bound before it is turned into output quads.
	boundMargin = 1
)

// NoWrap disables line wrapping when passed as the break width of a text
// layout.
const NoWrap float32 = -1

// Options configures the per-frame pool capacities of a Context. Writes
// beyond a capacity are silently dropped; see Scene.
type Options struct {
	// MaxPrims is the primitive buffer capacity per frame.
	MaxPrims int

	// MaxCVs is the control-point pool capacity per frame.
	MaxCVs int

	// MaxXforms is the transform pool capacity per frame.
	MaxXforms int

	// MaxPaints is the paint pool capacity per frame.
	MaxPaints int
}

// DefaultOptions returns the default pool capacities.
func DefaultOptions() Options {
	return Options{
		MaxPrims:  65536,
		MaxCVs:    1024 * 1024,
		MaxXforms: 65536,
		MaxPaints: 65536,
	}
}

// withDefaults fills in zero fields with defaults.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxPrims <= 0 {
		o.MaxPrims = def.MaxPrims
	}
	if o.MaxCVs <= 0 {
		o.MaxCVs = def.MaxCVs
	}
	if o.MaxXforms <= 0 {
		o.MaxXforms = def.MaxXforms
	}
	if o.MaxPaints <= 0 {
		o.MaxPaints = def.MaxPaints
	}
	return o
}
