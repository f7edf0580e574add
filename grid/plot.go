package grid

import "fmt"

// NewPlot builds an empty rows×cols plot with every cell present, row-major.
// Returns ErrBadDimensions if rows or cols is negative. A 0×N plot is valid
// and has no cells.
// Complexity: O(rows×cols).
func NewPlot(id string, rows, cols int) (*Plot, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	cells := make([]Cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, Cell{PlotID: id, Row: r, Col: c})
		}
	}

	return &Plot{ID: id, Rows: rows, Cols: cols, Cells: cells}, nil
}

// InBounds reports whether (row, col) lies within the plot.
func (p *Plot) InBounds(row, col int) bool {
	return row >= 0 && row < p.Rows && col >= 0 && col < p.Cols
}

// Validate checks that the plot holds exactly one cell for every in-bounds
// address and nothing else.
// Complexity: O(n).
func (p *Plot) Validate() error {
	if p.Rows < 0 || p.Cols < 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, p.Rows, p.Cols)
	}
	seen := make(map[addr]struct{}, len(p.Cells))
	for _, c := range p.Cells {
		if c.PlotID != p.ID {
			return fmt.Errorf("%w: (%d,%d) in %q names %q", ErrForeignCell, c.Row, c.Col, p.ID, c.PlotID)
		}
		if !p.InBounds(c.Row, c.Col) {
			return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, c.Row, c.Col, p.Rows, p.Cols)
		}
		a := addr{c.Row, c.Col}
		if _, dup := seen[a]; dup {
			return fmt.Errorf("%w: (%d,%d)", ErrDuplicateCell, c.Row, c.Col)
		}
		seen[a] = struct{}{}
	}
	if len(seen) != p.Rows*p.Cols {
		return fmt.Errorf("%w: have %d of %d", ErrMissingCell, len(seen), p.Rows*p.Cols)
	}

	return nil
}

// Cell returns the cell at (row, col).
func (p *Plot) Cell(row, col int) (Cell, bool) {
	i := p.find(row, col)
	if i < 0 {
		return Cell{}, false
	}
	return p.Cells[i], true
}

// Plant sets the vegetable of the cell at (row, col).
func (p *Plot) Plant(row, col int, vegetableID string) error {
	i := p.find(row, col)
	if i < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	p.Cells[i].VegetableID = vegetableID
	return nil
}

// Clear empties the cell at (row, col).
func (p *Plot) Clear(row, col int) error {
	return p.Plant(row, col, "")
}

// Planted returns the planted cells in storage order.
func (p *Plot) Planted() []Cell {
	var out []Cell
	for _, c := range p.Cells {
		if c.Planted() {
			out = append(out, c)
		}
	}
	return out
}

// Neighbors returns the Moore neighborhood of cell within p.
func (p *Plot) Neighbors(cell Cell) []Cell {
	return Adjacent(cell, p.Cells)
}

// PlantedNeighbors returns the neighbors of cell that hold a vegetable.
func (p *Plot) PlantedNeighbors(cell Cell) []Cell {
	var out []Cell
	for _, n := range p.Neighbors(cell) {
		if n.Planted() {
			out = append(out, n)
		}
	}
	return out
}

// find returns the index of (row, col) in p.Cells or -1.
// Canonical plots hit the row-major slot directly.
func (p *Plot) find(row, col int) int {
	if !p.InBounds(row, col) {
		return -1
	}
	if i := row*p.Cols + col; i < len(p.Cells) && p.Cells[i].Row == row && p.Cells[i].Col == col {
		return i
	}
	for i, c := range p.Cells {
		if c.Row == row && c.Col == col {
			return i
		}
	}
	return -1
}
