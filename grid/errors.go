package grid

import "errors"

var (
	// ErrBadDimensions indicates a negative row or column count.
	ErrBadDimensions = errors.New("grid: rows and cols must be non-negative")
	// ErrOutOfBounds indicates a (row, col) outside the plot.
	ErrOutOfBounds = errors.New("grid: cell address out of bounds")
	// ErrDuplicateCell indicates two cells with the same address.
	ErrDuplicateCell = errors.New("grid: duplicate cell address")
	// ErrMissingCell indicates an in-bounds address without a cell.
	ErrMissingCell = errors.New("grid: missing cell")
	// ErrForeignCell indicates a cell whose PlotID differs from its plot.
	ErrForeignCell = errors.New("grid: cell belongs to another plot")
)
