package outliner

// outlineOptions holds configuration for outline computation.
type outlineOptions struct {
	// Geometry adjustments
	borderWidth float64
	innerMargin float64

	// Text direction
	rtl bool

	// Processing options
	skipLineStrips bool
}

// defaultOptions returns the default outline options.
func defaultOptions() outlineOptions {
	return outlineOptions{
		borderWidth:    0,
		innerMargin:    0,
		rtl:            false,
		skipLineStrips: false,
	}
}

// clone creates a copy of outlineOptions.
func (o outlineOptions) clone() outlineOptions {
	return outlineOptions{
		borderWidth:    o.borderWidth,
		innerMargin:    o.innerMargin,
		rtl:            o.rtl,
		skipLineStrips: o.skipLineStrips,
	}
}
