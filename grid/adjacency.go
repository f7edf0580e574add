package grid

// Adjacent returns the cells of cells that touch cell horizontally,
// vertically or diagonally, in N, NE, E, SE, S, SW, W, NW order.
// Matching is exact on (Row±1, Col±1); cell itself is never returned and
// addresses with no cell in the slice are skipped, so a corner of a full
// grid yields 3 neighbors, an edge 5 and an interior cell 8.
// If cells holds duplicate addresses, the first occurrence wins.
// Complexity: O(n) time and memory for n = len(cells).
func Adjacent(cell Cell, cells []Cell) []Cell {
	if len(cells) == 0 {
		return nil
	}
	index := make(map[addr]int, len(cells))
	for i, c := range cells {
		a := addr{c.Row, c.Col}
		if _, ok := index[a]; !ok {
			index[a] = i
		}
	}

	out := make([]Cell, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		if i, ok := index[addr{cell.Row + d[0], cell.Col + d[1]}]; ok {
			out = append(out, cells[i])
		}
	}
	return out
}
