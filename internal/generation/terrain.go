package generation

import "fmt"

// Thresholds holds the cumulative height boundary for each terrain category.
// Cumulative[i] is the highest height classified as category i; the last
// entry doubles as the total height budget handed to the synthesizer.
type Thresholds struct {
	Cumulative [terrainCount]float64
}

// Total returns the full height budget.
func (t Thresholds) Total() float64 {
	return t.Cumulative[terrainCount-1]
}

// newThresholds draws four base weights from the RNG and rebalances them so
// the non-blocking categories (water, mud, grass) hold at least minWalkable
// of the total. The blocking weight is scaled so the four still sum to the
// original total, then the weights are prefix-summed.
func newThresholds(rng *RNG, minWalkable float64) Thresholds {
	var weights [terrainCount]float64
	total := 0.0
	for i := range weights {
		weights[i] = rng.Float64()
		total += weights[i]
	}

	open := weights[Water] + weights[Mud] + weights[Grass]
	if total > 0 && open/total < minWalkable {
		scale := minWalkable / (open / total)
		weights[Water] *= scale
		weights[Mud] *= scale
		weights[Grass] *= scale
		weights[Tree] = total - (weights[Water] + weights[Mud] + weights[Grass])
		if weights[Tree] < 0 {
			weights[Tree] = 0
		}
	}

	var t Thresholds
	sum := 0.0
	for i, w := range weights {
		sum += w
		t.Cumulative[i] = sum
	}
	return t
}

// classify returns the lowest-indexed category whose cumulative threshold
// covers the height. Heights beyond the budget land in the last category.
func (t Thresholds) classify(height float64) TerrainType {
	for i := 0; i < terrainCount; i++ {
		if height <= t.Cumulative[i] {
			return TerrainType(i)
		}
	}
	return Tree
}

// TerrainGrid is the immutable classified terrain, one category per cell,
// addressed by linear index (x + y*Width).
type TerrainGrid struct {
	Width  int
	Height int
	Cells  []TerrainType
}

// At returns the terrain category at (x, y). Out-of-range coordinates read
// as Water so boundary-probing callers see them as hazardous, not as errors.
func (g *TerrainGrid) At(x, y int) TerrainType {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return Water
	}
	return g.Cells[cellIndex(x, y, g.Width)]
}

// IsNavigable reports whether ground units can occupy (x, y).
// Out-of-range coordinates are never navigable.
func (g *TerrainGrid) IsNavigable(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}
	return g.Cells[cellIndex(x, y, g.Width)].Navigable()
}

// hazardAdjacent reports whether any of the 8 neighbors of (x, y) is water
// or blocking terrain. Out-of-range neighbors count as hazardous via At.
func (g *TerrainGrid) hazardAdjacent(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			t := g.At(x+dx, y+dy)
			if t == Water || t == Tree {
				return true
			}
		}
	}
	return false
}

// synthesizeTerrain runs the height field over every cell and classifies the
// result into a finished terrain grid.
func synthesizeTerrain(width, height int, field *heightField, thresholds Thresholds) (*TerrainGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d", ErrConfig, width, height)
	}

	grid := &TerrainGrid{
		Width:  width,
		Height: height,
		Cells:  make([]TerrainType, width*height),
	}
	budget := thresholds.Total()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.Cells[cellIndex(x, y, width)] = thresholds.classify(field.scaledAt(x, y, budget))
		}
	}
	return grid, nil
}
