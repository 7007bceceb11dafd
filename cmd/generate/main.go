package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skirmish.dev/internal/generation"
	"skirmish.dev/internal/services"
)

func main() {
	terrainSeed := flag.Int64("terrain-seed", -1, "terrain seed (negative picks a curated seed)")
	locationsSeed := flag.Int64("locations-seed", -1, "locations seed (negative derives one from the clock)")
	outputDir := flag.String("out", "data", "output directory for the map artifact")
	preview := flag.Bool("preview", true, "print an ASCII preview of the map")
	flag.Parse()

	cfg := generation.DefaultConfig()
	cfg.TerrainSeed = *terrainSeed
	cfg.LocationsSeed = *locationsSeed

	m, err := generation.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	resolvedTerrain, resolvedLocations := m.Seeds()
	fmt.Printf("Generated %dx%d map (terrain seed %d, locations seed %d)\n",
		m.Width(), m.Height(), resolvedTerrain, resolvedLocations)

	artifact := services.NewMapService(m).Artifact()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := fmt.Sprintf("map_%d_%d.json", resolvedTerrain, resolvedLocations)
	path := filepath.Join(*outputDir, filename)

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s (%d ally units, %d enemy houses, %d enemy units)\n",
		path,
		len(artifact.Placements.AllyUnits),
		len(artifact.Placements.EnemyHouses),
		len(artifact.Placements.EnemyUnits))

	if *preview {
		printPreview(m)
	}
}

// printPreview renders the terrain to stdout with placement markers:
// 'A' ally house, 'a' ally unit, 'E' enemy house, 'e' enemy unit.
func printPreview(m *generation.Map) {
	glyphs := map[generation.TerrainType]byte{
		generation.Water: '~',
		generation.Mud:   '.',
		generation.Grass: '^',
		generation.Tree:  'T',
	}

	rows := make([][]byte, m.Height())
	for y := 0; y < m.Height(); y++ {
		rows[y] = make([]byte, m.Width())
		for x := 0; x < m.Width(); x++ {
			rows[y][x] = glyphs[m.TerrainAt(x, y)]
		}
	}

	mark := func(cells []int, glyph byte) {
		for _, c := range cells {
			x, y := m.CellXY(c)
			rows[y][x] = glyph
		}
	}
	mark(m.AllyUnitLocations(), 'a')
	mark(m.EnemyUnitLocations(), 'e')
	mark(m.EnemyHouseLocations(), 'E')
	mark([]int{m.AllyHouseLocation()}, 'A')

	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}
