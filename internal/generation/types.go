package generation

// TerrainType is one of the four ordered terrain categories. Order matters:
// classification walks the categories lowest-first and takes the first whose
// cumulative threshold covers the sampled height.
type TerrainType int

const (
	Water TerrainType = iota
	Mud
	Grass
	Tree
)

// terrainCount is the number of terrain categories.
const terrainCount = 4

// String returns the category name used in logs and artifacts.
func (t TerrainType) String() string {
	switch t {
	case Water:
		return "water"
	case Mud:
		return "mud"
	case Grass:
		return "grass"
	case Tree:
		return "tree"
	}
	return "unknown"
}

// Navigable reports whether ground units can occupy a cell of this category.
// Only mud and grass carry traffic; water and trees both block.
func (t TerrainType) Navigable() bool {
	return t == Mud || t == Grass
}

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Adjacent returns the 4 cardinal neighbors.
func (p Point) Adjacent() []Point {
	return []Point{
		{p.X, p.Y - 1}, // N
		{p.X + 1, p.Y}, // E
		{p.X, p.Y + 1}, // S
		{p.X - 1, p.Y}, // W
	}
}

// cellIndex converts (x, y) to a 0-based linear cell index.
func cellIndex(x, y, width int) int {
	return x + y*width
}

// cellXY converts a linear cell index back to (x, y).
func cellXY(index, width int) (int, int) {
	return index % width, index / width
}
