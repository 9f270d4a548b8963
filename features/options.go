package features

// Option configures feature extraction.
//
// Example:
//
//	set := features.Extract("tag.gml", tag,
//	    features.WithNormalization(),
//	    features.WithSmoothing(),
//	)
type Option func(*options)

type options struct {
	normalize bool
	smooth    bool
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithNormalization rescales each tag so its longer side spans [0, 1] before
// measuring. Distances and areas become scale free; angles and counts are
// unaffected.
func WithNormalization() Option {
	return func(o *options) {
		o.normalize = true
	}
}

// WithSmoothing smooths every stroke before measuring, which suppresses
// digitizer jitter in joint angles and corner counts.
func WithSmoothing() Option {
	return func(o *options) {
		o.smooth = true
	}
}
