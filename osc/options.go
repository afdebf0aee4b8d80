package osc

import "github.com/rs/zerolog"

// Option configures a Message or a Bundle at construction time.
type Option func(*options)

type options struct {
	bufCapacity int
	maxArgs     int
	logger      zerolog.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBufferCapacity fixes the encoded buffer at n bytes, rounded up to a
// multiple of 4. A non-positive n, the default, lets the buffer grow on
// demand.
func WithBufferCapacity(n int) Option {
	return func(o *options) {
		o.bufCapacity = n
	}
}

// WithMaxArgs fixes the number of arguments a Message can index. A
// non-positive n, the default, lets the table grow on demand. Bundles ignore
// it.
func WithMaxArgs(n int) Option {
	return func(o *options) {
		o.maxArgs = n
	}
}

// WithLogger sets the logger used to report rejected input and memory
// errors at debug level. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
