package composite

type Option func(c *config)

type config struct {
	legacyBounds bool
}

// WithLegacyBounds clips source coordinates to a window the size of the
// bottom image rather than the top image. Porter-Duff operators then also
// rewrite bottom pixels inside that window that the top image does not cover,
// treating the missing source as transparent black.
func WithLegacyBounds() Option {
	return func(c *config) {
		c.legacyBounds = true
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
