// Package grid models a rectangular planting bed as a graph of addressable
// cells and answers the neighbor query the rest of the engine is built on.
//
// What:
//
//   - Plot owns Rows×Cols cells stored row-major; each Cell carries its
//     (Row, Col) address and an optional vegetable id (a weak reference into
//     the catalog).
//   - Adjacent returns the Moore neighborhood of a cell (8-connectivity)
//     restricted to the cells that actually exist.
//
// Neighbor order is fixed: N, NE, E, SE, S, SW, W, NW, where north is row-1.
// Equal inputs always yield equal outputs, so scores computed from neighbor
// lists are reproducible.
//
// Complexity:
//
//   - Adjacent:        O(n) to index the cell slice, O(1) per neighbor.
//   - (*Plot).Cell:    O(1) for canonical row-major plots, O(n) otherwise.
//
// Errors:
//
//   - ErrBadDimensions: negative row or column count.
//   - ErrOutOfBounds:   address outside Rows×Cols.
//   - ErrDuplicateCell: two cells share one address.
//   - ErrMissingCell:   an in-bounds address has no cell.
//   - ErrForeignCell:   a cell names a different plot.
package grid
