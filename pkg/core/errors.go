package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates a coordinate outside [0,width) x [0,height).
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")

	// ErrInvalidConfiguration indicates a parameter that can never be valid,
	// such as a probability outside [0,1] or a non-positive dimension.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")

	// ErrDimensionMismatch indicates incompatible sizes, for example a step
	// count below one or a pattern that does not fit inside a grid. It is a
	// kind of ErrInvalidConfiguration.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidConfiguration)
)
