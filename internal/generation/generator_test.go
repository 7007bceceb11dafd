package generation

import (
	"errors"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.TerrainSeed = 31337
	cfg.LocationsSeed = 77041
	return cfg
}

func mustGenerate(t *testing.T, cfg Config) *Map {
	t.Helper()
	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return m
}

func TestGenerateDeterminism(t *testing.T) {
	a := mustGenerate(t, testConfig())
	b := mustGenerate(t, testConfig())

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.TerrainAt(x, y) != b.TerrainAt(x, y) {
				t.Fatalf("terrain differs at (%d, %d)", x, y)
			}
		}
	}

	if a.AllyHouseLocation() != b.AllyHouseLocation() {
		t.Error("ally house differs between identical seeds")
	}
	pairs := [][2][]int{
		{a.AllyUnitLocations(), b.AllyUnitLocations()},
		{a.EnemyUnitLocations(), b.EnemyUnitLocations()},
		{a.EnemyHouseLocations(), b.EnemyHouseLocations()},
	}
	for _, pair := range pairs {
		if len(pair[0]) != len(pair[1]) {
			t.Fatalf("location list lengths differ: %d vs %d", len(pair[0]), len(pair[1]))
		}
		for i := range pair[0] {
			if pair[0][i] != pair[1][i] {
				t.Fatalf("location %d differs: %d vs %d", i, pair[0][i], pair[1][i])
			}
		}
	}
}

func TestGenerateNavigabilityInvariant(t *testing.T) {
	m := mustGenerate(t, testConfig())

	cells := append(m.AllyUnitLocations(), m.EnemyUnitLocations()...)
	cells = append(cells, m.EnemyHouseLocations()...)
	cells = append(cells, m.AllyHouseLocation())

	for _, c := range cells {
		x, y := m.CellXY(c)
		if !m.IsNavigable(x, y) {
			t.Errorf("cell (%d, %d) terrain %v is not navigable", x, y, m.TerrainAt(x, y))
		}
	}
}

func TestGenerateHouseSpacing(t *testing.T) {
	m := mustGenerate(t, testConfig())

	houses := append(m.EnemyHouseLocations(), m.AllyHouseLocation())
	for i := 0; i < len(houses); i++ {
		for j := i + 1; j < len(houses); j++ {
			x1, y1 := m.CellXY(houses[i])
			x2, y2 := m.CellXY(houses[j])
			if chebyshev(x1, y1, x2, y2) < 2 {
				t.Errorf("houses (%d, %d) and (%d, %d) closer than 2 tiles", x1, y1, x2, y2)
			}
		}
	}
}

func TestGenerateCapacityBounds(t *testing.T) {
	cfg := testConfig()
	m := mustGenerate(t, cfg)

	if n := len(m.AllyUnitLocations()); n != cfg.MaxAllyUnits {
		t.Errorf("ally units = %d, want %d (single house keeps the full cap)", n, cfg.MaxAllyUnits)
	}
	houses := len(m.EnemyHouseLocations())
	want := cfg.MaxEnemyUnits - cfg.MaxEnemyUnits%houses
	if n := len(m.EnemyUnitLocations()); n != want {
		t.Errorf("enemy units = %d, want %d for %d houses", n, want, houses)
	}
}

func TestGeneratePlacementsInsideLargestRegion(t *testing.T) {
	m := mustGenerate(t, testConfig())

	region, err := largestWalkableRegion(m.grid)
	if err != nil {
		t.Fatalf("largestWalkableRegion: %v", err)
	}
	member := make(map[int]bool, len(region))
	for _, c := range region {
		member[c] = true
	}

	cells := append(m.AllyUnitLocations(), m.EnemyUnitLocations()...)
	cells = append(cells, m.EnemyHouseLocations()...)
	cells = append(cells, m.AllyHouseLocation())
	for _, c := range cells {
		if !member[c] {
			x, y := m.CellXY(c)
			t.Errorf("cell (%d, %d) lies outside the largest walkable region", x, y)
		}
	}
}

func TestGenerateLocationCopiesAreIndependent(t *testing.T) {
	m := mustGenerate(t, testConfig())

	first := m.AllyUnitLocations()
	first[0] = -42
	second := m.AllyUnitLocations()
	if second[0] == -42 {
		t.Fatal("mutating a returned slice leaked into generator state")
	}
}

func TestGenerateSeedSubstitution(t *testing.T) {
	cfg := DefaultConfig() // both seeds negative
	m := mustGenerate(t, cfg)

	terrain, locations := m.Seeds()
	if terrain < 0 || locations < 0 {
		t.Errorf("resolved seeds (%d, %d) must be non-negative", terrain, locations)
	}

	found := false
	for _, s := range curatedTerrainSeeds {
		if s == terrain {
			found = true
		}
	}
	if !found {
		t.Errorf("terrain seed %d not drawn from the curated pool", terrain)
	}

	// The substituted pair must itself reproduce the same map.
	cfg.TerrainSeed, cfg.LocationsSeed = terrain, locations
	repro := mustGenerate(t, cfg)
	if repro.AllyHouseLocation() != m.AllyHouseLocation() {
		t.Error("resolved seed pair did not reproduce the map")
	}
}

func TestGenerateConfigErrors(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.MinWalkableFraction = -0.1 },
		func(c *Config) { c.MinWalkableFraction = 1.1 },
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -5 },
		func(c *Config) { c.BucketW = 2 },
		func(c *Config) { c.MaxAllyUnits = 0 },
		func(c *Config) { c.UnitAreaBudget = 0 },
	}
	for i, mutate := range cases {
		cfg := testConfig()
		mutate(&cfg)
		if _, err := Generate(cfg); !errors.Is(err, ErrConfig) {
			t.Errorf("case %d: err = %v, want ErrConfig", i, err)
		}
	}
}

func TestGenerateCuratedSeeds(t *testing.T) {
	// Every curated seed must produce a valid map with the reference
	// configuration; that is what makes them curated.
	for _, seed := range curatedTerrainSeeds {
		cfg := DefaultConfig()
		cfg.TerrainSeed = seed
		cfg.LocationsSeed = 1
		if _, err := Generate(cfg); err != nil {
			t.Errorf("curated seed %d failed: %v", seed, err)
		}
	}
}

func chebyshev(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
