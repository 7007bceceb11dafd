package generation

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the generation failure taxonomy. All of them abort
// construction before any partial map is published.
var (
	ErrConfig             = errors.New("invalid generation config")
	ErrDegenerateMap      = errors.New("degenerate map")
	ErrPlacementExhausted = errors.New("placement exhausted")
)

// curatedTerrainSeeds are known-good terrain seeds used when the caller does
// not supply one. Each produces a map with a dominant walkable landmass.
var curatedTerrainSeeds = []int64{31337, 33980, 471108, 90125, 55378}

// Config controls a single map generation run.
type Config struct {
	Width  int
	Height int

	// TerrainSeed shapes the height field and category thresholds;
	// LocationsSeed drives every placement decision. A negative value asks
	// for substitution: a curated seed for terrain, a time-derived one for
	// locations. Substituted seeds are recorded on the finished Map.
	TerrainSeed   int64
	LocationsSeed int64

	// MinWalkableFraction is the floor on the non-blocking share of the
	// category thresholds. Must lie in [0, 1].
	MinWalkableFraction float64

	// BucketW and BucketH size the placement sub-grids.
	BucketW int
	BucketH int

	MaxAllyUnits  int
	MaxEnemyUnits int

	// UnitAreaBudget caps the flood-fill expansion when collecting unit
	// spawn candidates around a house.
	UnitAreaBudget int
}

// DefaultConfig returns the reference configuration: a 100x100 grid, 5x5
// placement buckets, 15 ally and 25 enemy units, and a 48-cell spawn area
// (three growth rings: 8+16+24).
func DefaultConfig() Config {
	return Config{
		Width:               100,
		Height:              100,
		TerrainSeed:         -1,
		LocationsSeed:       -1,
		MinWalkableFraction: 0.7,
		BucketW:             5,
		BucketH:             5,
		MaxAllyUnits:        15,
		MaxEnemyUnits:       25,
		UnitAreaBudget:      48,
	}
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid dimensions %dx%d", ErrConfig, c.Width, c.Height)
	}
	if c.MinWalkableFraction < 0 || c.MinWalkableFraction > 1 {
		return fmt.Errorf("%w: min walkable fraction %v outside [0, 1]", ErrConfig, c.MinWalkableFraction)
	}
	if c.BucketW < 3 || c.BucketH < 3 {
		return fmt.Errorf("%w: bucket size %dx%d leaves no interior", ErrConfig, c.BucketW, c.BucketH)
	}
	if c.MaxAllyUnits <= 0 || c.MaxEnemyUnits <= 0 {
		return fmt.Errorf("%w: unit caps must be positive", ErrConfig)
	}
	if c.UnitAreaBudget <= 0 {
		return fmt.Errorf("%w: unit area budget must be positive", ErrConfig)
	}
	return nil
}

// Map is the finished, immutable generation result. Accessors hand out
// copies; nothing mutates a Map after Generate returns it.
type Map struct {
	width  int
	height int
	grid   *TerrainGrid

	terrainSeed   int64
	locationsSeed int64

	allyHouse   int
	allyUnits   []int
	enemyHouses []int
	enemyUnits  []int
}

// Generate runs the full pipeline: height synthesis, classification,
// connectivity analysis, interior filtering, bucket partitioning and faction
// placement. It either returns a fully valid map or an error with nothing
// published.
func Generate(cfg Config) (*Map, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	terrainSeed, locationsSeed := resolveSeeds(cfg.TerrainSeed, cfg.LocationsSeed)

	// 1. Thresholds and height field, both fed from the terrain stream.
	terrainRNG := NewRNG(uint64(terrainSeed))
	thresholds := newThresholds(terrainRNG, cfg.MinWalkableFraction)
	field := newHeightField(terrainSeed, terrainRNG)

	// 2. Classified terrain grid.
	grid, err := synthesizeTerrain(cfg.Width, cfg.Height, field, thresholds)
	if err != nil {
		return nil, err
	}

	// 3. Largest walkable component.
	region, err := largestWalkableRegion(grid)
	if err != nil {
		return nil, err
	}

	// 4. Structure-safe interior.
	interior := interiorCells(grid, region)
	if len(interior) == 0 {
		return nil, fmt.Errorf("%w: walkable region has no interior", ErrDegenerateMap)
	}

	// 5. Placement buckets.
	buckets := partitionBuckets(grid, interior, cfg.BucketW, cfg.BucketH)

	// 6. Faction layout from the locations stream.
	locationsRNG := NewRNG(uint64(locationsSeed))
	placements, err := planPlacements(grid, buckets, locationsRNG, cfg)
	if err != nil {
		return nil, err
	}

	return &Map{
		width:         cfg.Width,
		height:        cfg.Height,
		grid:          grid,
		terrainSeed:   terrainSeed,
		locationsSeed: locationsSeed,
		allyHouse:     placements.AllyHouse,
		allyUnits:     placements.AllyUnits,
		enemyHouses:   placements.EnemyHouses,
		enemyUnits:    placements.EnemyUnits,
	}, nil
}

// resolveSeeds substitutes negative seeds: terrain from the curated pool,
// locations from the clock. Both picks are themselves time-derived, so runs
// without explicit seeds differ; reproducibility requires passing both.
func resolveSeeds(terrain, locations int64) (int64, int64) {
	if terrain < 0 {
		now := time.Now().UnixNano()
		terrain = curatedTerrainSeeds[int(uint64(now)%uint64(len(curatedTerrainSeeds)))]
	}
	if locations < 0 {
		locations = time.Now().UnixNano() & 0x7FFFFFFFFFFFFFFF
	}
	return terrain, locations
}

// Width returns the grid width in cells.
func (m *Map) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *Map) Height() int { return m.height }

// Seeds returns the resolved (terrain, locations) seed pair. Persist these
// to regenerate the identical map later.
func (m *Map) Seeds() (int64, int64) { return m.terrainSeed, m.locationsSeed }

// TerrainAt returns the terrain category at (x, y); out-of-range reads as
// Water.
func (m *Map) TerrainAt(x, y int) TerrainType { return m.grid.At(x, y) }

// IsNavigable reports whether ground units can occupy (x, y); out-of-range
// is never navigable.
func (m *Map) IsNavigable(x, y int) bool { return m.grid.IsNavigable(x, y) }

// AllyHouseLocation returns the ally house cell index.
func (m *Map) AllyHouseLocation() int { return m.allyHouse }

// AllyUnitLocations returns a copy of the ally unit cell indices.
func (m *Map) AllyUnitLocations() []int { return copyCells(m.allyUnits) }

// EnemyUnitLocations returns a copy of the enemy unit cell indices.
func (m *Map) EnemyUnitLocations() []int { return copyCells(m.enemyUnits) }

// EnemyHouseLocations returns a copy of the enemy house cell indices.
func (m *Map) EnemyHouseLocations() []int { return copyCells(m.enemyHouses) }

// CellXY converts one of the map's linear cell indices to (x, y).
func (m *Map) CellXY(index int) (int, int) { return cellXY(index, m.width) }

func copyCells(cells []int) []int {
	out := make([]int, len(cells))
	copy(out, cells)
	return out
}
