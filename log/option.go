package log

// Option is a functional option for configuring a [Logger].
type Option func(config) config

// apply returns the result of applying each non-nil option to c in order.
func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}
