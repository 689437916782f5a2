package ecs

// Variant names one implementation strategy a VariantSystem can run under.
// The controller in the optimizer package switches a system's active variant
// at runtime based on live entity counts; the system itself decides what
// each variant actually does.
type Variant uint8

const (
	Scalar Variant = iota
	SIMD
	GPU
	Approximate
)

// String renders the variant using the same capitalized identifiers as the
// constant names, for logging and diagnostics.
func (v Variant) String() string {
	switch v {
	case Scalar:
		return "Scalar"
	case SIMD:
		return "SIMD"
	case GPU:
		return "GPU"
	case Approximate:
		return "Approximate"
	default:
		return "Unknown"
	}
}
