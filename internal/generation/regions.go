package generation

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// unbounded disables the flood-fill expansion budget.
const unbounded = -1

// floodFill expands from start across 4-adjacent cells sharing the start
// cell's navigability class, breadth-first, and returns the visited cells in
// visit order. Grid-boundary neighbors are simply not expanded.
//
// When budget >= 0 it caps the number of cells added beyond the start; an
// exhausted budget returns the partial component visited so far. Callers
// that need a full component must pass unbounded.
func floodFill(grid *TerrainGrid, start int, budget int) []int {
	sx, sy := cellXY(start, grid.Width)
	class := grid.At(sx, sy).Navigable()

	visited := mapset.New[int]()
	visited.Put(start)
	cells := []int{start}
	frontier := []Point{{sx, sy}}

	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]

		for _, n := range p.Adjacent() {
			if n.X < 0 || n.X >= grid.Width || n.Y < 0 || n.Y >= grid.Height {
				continue
			}
			idx := cellIndex(n.X, n.Y, grid.Width)
			if visited.Has(idx) || grid.At(n.X, n.Y).Navigable() != class {
				continue
			}
			if budget >= 0 && len(cells)-1 >= budget {
				return cells
			}
			visited.Put(idx)
			cells = append(cells, idx)
			frontier = append(frontier, n)
		}
	}

	return cells
}

// largestWalkableRegion scans all cells in index order, flood-fills each
// unvisited navigable cell, and returns the biggest component found. The
// first region wins ties. A grid with no navigable cell at all is a
// generation failure.
func largestWalkableRegion(grid *TerrainGrid) ([]int, error) {
	visited := mapset.New[int]()
	var largest []int

	for idx := range grid.Cells {
		if visited.Has(idx) || !grid.Cells[idx].Navigable() {
			continue
		}
		region := floodFill(grid, idx, unbounded)
		for _, c := range region {
			visited.Put(c)
		}
		if len(region) > len(largest) {
			largest = region
		}
	}

	if len(largest) == 0 {
		return nil, fmt.Errorf("%w: no walkable region", ErrDegenerateMap)
	}
	return largest, nil
}

// interiorCells strips a region down to cells safe for permanent structures:
// cells on the grid's outer ring are dropped, as is any cell with water or
// blocking terrain in its 8-neighborhood.
func interiorCells(grid *TerrainGrid, region []int) []int {
	interior := make([]int, 0, len(region))
	for _, idx := range region {
		x, y := cellXY(idx, grid.Width)
		if x == 0 || x == grid.Width-1 || y == 0 || y == grid.Height-1 {
			continue
		}
		if grid.hazardAdjacent(x, y) {
			continue
		}
		interior = append(interior, idx)
	}
	return interior
}
