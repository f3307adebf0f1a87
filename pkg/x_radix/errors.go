package x_radix

import (
	"github.com/pkg/errors"
)

// Error taxonomy. Operations wrap these with context; match with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrCapacityExhausted = errors.New("child capacity exhausted")
	ErrAllocation        = errors.New("allocation failure")
	ErrFreed             = errors.New("tree has been freed")
)
