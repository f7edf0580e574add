package grid

// Cell is one square of a Plot. Its identity is (PlotID, Row, Col).
// VegetableID is empty when nothing is planted.
type Cell struct {
	PlotID      string `json:"plotId"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	VegetableID string `json:"vegetableId,omitempty"`
}

// Planted reports whether the cell holds a vegetable.
func (c Cell) Planted() bool {
	return c.VegetableID != ""
}

// Plot is a rectangular bed of Rows×Cols cells stored row-major.
// The engine reads plots and changes cell contents; creating and deleting
// plots is left to the caller.
type Plot struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Rows  int    `json:"gridRows"`
	Cols  int    `json:"gridCols"`
	Cells []Cell `json:"cells"`
}

// mooreOffsets lists (dRow, dCol) for N, NE, E, SE, S, SW, W, NW.
var mooreOffsets = [8][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

type addr struct{ row, col int }
