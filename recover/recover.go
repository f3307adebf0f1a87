package recover

import (
	"runtime/debug"

	"github.com/pkg/errors"

	"github.com/rskv-p/rtree/pkg/x_log"
)

// ErrPanic wraps a value recovered by Guard.
var ErrPanic = errors.New("panic")

// OnPanic, when set, is called with every recovered value.
var OnPanic func(label string, recovered any)

// Guard runs fn and turns a panic into an ErrPanic error. The panic value
// and the stack are logged under label.
func Guard(label string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			report(label, r)
			err = errors.Wrapf(ErrPanic, "%s: %v", label, r)
		}
	}()
	return fn()
}

// Safe runs fn, logging and swallowing any panic.
func Safe(label string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			report(label, r)
		}
	}()
	fn()
}

func report(label string, r any) {
	l := x_log.New("recover")
	l.Error().
		Str("label", label).
		Interface("panic", r).
		Bytes("stack", debug.Stack()).
		Msg("recovered")
	if OnPanic != nil {
		OnPanic(label, r)
	}
}
