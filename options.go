package htable

import "go.uber.org/zap"

// config holds the construction-time settings of a Table. None of them can
// change once the table exists.
type config struct {
	probe  Probe
	hasher Hasher
	logger *zap.Logger
}

// Option configures a Table in New.
type Option func(*config)

func defaultConfig() config {
	return config{
		probe:  Linear,
		hasher: FNV1a,
		logger: zap.NewNop(),
	}
}

// WithProbe selects the collision resolution strategy. Linear is the default.
func WithProbe(p Probe) Option {
	return func(c *config) {
		c.probe = p
	}
}

// WithHasher replaces the default FNV1a key hash. A nil hasher is ignored.
func WithHasher(h Hasher) Option {
	return func(c *config) {
		if h != nil {
			c.hasher = h
		}
	}
}

// WithLogger sets the logger used to trace table growth. A nil logger is
// ignored; by default nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
