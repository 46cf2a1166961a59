package life

import "github.com/pkg/errors"

// Domain errors for grid operations.
var (
	// ErrInvalidSize indicates a grid size below one cell.
	ErrInvalidSize = errors.New("life: grid size must be positive")

	// ErrOutOfBounds indicates a pattern footprint that does not fit the grid.
	ErrOutOfBounds = errors.New("life: pattern does not fit inside the grid")

	// ErrUnknownPattern indicates a lookup of an unregistered pattern name.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)
