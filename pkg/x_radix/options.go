package x_radix

import (
	"github.com/rs/zerolog"
)

//---------------------
// Limits
//---------------------

const (
	MaxKeyLen    = 128 // global key-length bound
	MaxAlphabet  = 128 // fan-out ceiling for any node
	nodeInitSize = 6   // initial child slots of a fresh node
)

//---------------------
// Options
//---------------------

// Options holds the injected collaborators of a tree.
type Options struct {
	Allocator Allocator      // memory strategy, HeapAllocator when nil
	MaxKeyLen int            // key bound in [1, MaxKeyLen]
	Logger    zerolog.Logger // debug tracing of structural changes
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Allocator: HeapAllocator{},
		MaxKeyLen: MaxKeyLen,
		Logger:    zerolog.Nop(),
	}
}

// WithAllocator injects the memory strategy.
func WithAllocator(a Allocator) Option {
	return func(o *Options) {
		if a != nil {
			o.Allocator = a
		}
	}
}

// WithMaxKeyLen lowers the key bound. Values outside [1, MaxKeyLen] are clamped.
func WithMaxKeyLen(n int) Option {
	return func(o *Options) {
		o.MaxKeyLen = min(max(n, 1), MaxKeyLen)
	}
}

// WithLogger sets the logger used for split/grow tracing at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
