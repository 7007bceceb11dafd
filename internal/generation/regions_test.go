package generation

import "testing"

// buildGrid constructs a terrain grid from rows of glyphs:
// '~' water, '.' mud, '^' grass, 'T' tree.
func buildGrid(t *testing.T, rows []string) *TerrainGrid {
	t.Helper()
	height := len(rows)
	width := len(rows[0])
	grid := &TerrainGrid{Width: width, Height: height, Cells: make([]TerrainType, width*height)}
	for y, row := range rows {
		if len(row) != width {
			t.Fatalf("row %d has length %d, want %d", y, len(row), width)
		}
		for x, ch := range row {
			var tt TerrainType
			switch ch {
			case '~':
				tt = Water
			case '.':
				tt = Mud
			case '^':
				tt = Grass
			case 'T':
				tt = Tree
			default:
				t.Fatalf("unknown glyph %q at (%d, %d)", ch, x, y)
			}
			grid.Cells[cellIndex(x, y, width)] = tt
		}
	}
	return grid
}

// openGrid returns a width x height grid that is all grass.
func openGrid(width, height int) *TerrainGrid {
	grid := &TerrainGrid{Width: width, Height: height, Cells: make([]TerrainType, width*height)}
	for i := range grid.Cells {
		grid.Cells[i] = Grass
	}
	return grid
}

func TestFloodFillBudget(t *testing.T) {
	grid := openGrid(100, 100)
	start := cellIndex(50, 50, 100)

	cells := floodFill(grid, start, 5)
	if len(cells) != 6 {
		t.Fatalf("capped fill returned %d cells, want 6 (start + 5 expansions)", len(cells))
	}
	if cells[0] != start {
		t.Errorf("first visited cell = %d, want start %d", cells[0], start)
	}
}

func TestFloodFillUnboundedCoversComponent(t *testing.T) {
	grid := openGrid(10, 10)
	cells := floodFill(grid, 0, unbounded)
	if len(cells) != 100 {
		t.Fatalf("unbounded fill on open grid returned %d cells, want 100", len(cells))
	}
}

func TestFloodFillStaysInClass(t *testing.T) {
	grid := buildGrid(t, []string{
		"^^^T^^",
		"^^^T^^",
		"^^^T^^",
	})
	cells := floodFill(grid, 0, unbounded)
	if len(cells) != 9 {
		t.Fatalf("fill crossed the tree wall: got %d cells, want 9", len(cells))
	}
	for _, c := range cells {
		x, _ := cellXY(c, grid.Width)
		if x >= 3 {
			t.Errorf("cell %d at x=%d is beyond the tree wall", c, x)
		}
	}
}

func TestLargestWalkableRegionPicksBiggerIsland(t *testing.T) {
	// Island A is 4x3 = 12 cells, island B is 6x5 = 30 cells.
	grid := buildGrid(t, []string{
		"~~~~~~~~~~~~~~~~~~~~",
		"~^^^^~~~~~~~~~~~~~~~",
		"~^^^^~~~~~~~~~~~~~~~",
		"~^^^^~~~~~~~~~~~~~~~",
		"~~~~~~~~~~~~~~~~~~~~",
		"~~~~~~~~~~^^^^^^~~~~",
		"~~~~~~~~~~^^^^^^~~~~",
		"~~~~~~~~~~^^^^^^~~~~",
		"~~~~~~~~~~^^^^^^~~~~",
		"~~~~~~~~~~^^^^^^~~~~",
	})

	region, err := largestWalkableRegion(grid)
	if err != nil {
		t.Fatalf("largestWalkableRegion: %v", err)
	}
	if len(region) != 30 {
		t.Fatalf("largest region has %d cells, want 30", len(region))
	}
	for _, c := range region {
		x, y := cellXY(c, grid.Width)
		if x < 10 || y < 5 {
			t.Errorf("cell (%d, %d) belongs to the smaller island", x, y)
		}
	}
}

func TestLargestWalkableRegionAllWater(t *testing.T) {
	grid := buildGrid(t, []string{
		"~~~~",
		"~~~~",
	})
	if _, err := largestWalkableRegion(grid); err == nil {
		t.Fatal("expected degenerate map error on all-water grid")
	}
}

func TestInteriorFilterRemovesBorderAndHazardRing(t *testing.T) {
	// 10x10: one-tile tree border around solid grass. The filter must strip
	// the border plus the grass ring touching it, leaving a 6x6 interior.
	rows := make([]string, 10)
	rows[0] = "TTTTTTTTTT"
	rows[9] = "TTTTTTTTTT"
	for y := 1; y < 9; y++ {
		rows[y] = "T^^^^^^^^T"
	}
	grid := buildGrid(t, rows)

	region, err := largestWalkableRegion(grid)
	if err != nil {
		t.Fatalf("largestWalkableRegion: %v", err)
	}
	interior := interiorCells(grid, region)

	if len(interior) != 36 {
		t.Fatalf("interior has %d cells, want 36", len(interior))
	}
	for _, c := range interior {
		x, y := cellXY(c, grid.Width)
		if x < 2 || x > 7 || y < 2 || y > 7 {
			t.Errorf("interior cell (%d, %d) outside the 6x6 core", x, y)
		}
	}
}
