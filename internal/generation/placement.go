package generation

import "fmt"

const (
	// Enemy house count is drawn from [minEnemyHouses, maxEnemyHouses);
	// the exclusive upper bound caps actual placement at 5 houses.
	minEnemyHouses = 2
	maxEnemyHouses = 6
)

// Placements holds the final faction start layout. Cell values are linear
// grid indices.
type Placements struct {
	AllyHouse   int
	AllyUnits   []int
	EnemyHouses []int
	EnemyUnits  []int
}

// planPlacements selects the ally and enemy start layout from the placement
// buckets. One shared RNG drives every location decision, in a fixed draw
// order, so a locations seed maps to exactly one layout.
func planPlacements(grid *TerrainGrid, buckets map[int][]int, rng *RNG, cfg Config) (*Placements, error) {
	pool := bucketKeys(buckets)
	if len(pool) < 1+minEnemyHouses {
		return nil, fmt.Errorf("%w: %d placement buckets, need at least %d",
			ErrDegenerateMap, len(pool), 1+minEnemyHouses)
	}

	p := &Placements{}

	// Ally bucket and house. Bucket cells already carry full 8-neighbor
	// clearance from the interior filter, so any cell is a valid site.
	allyAt := rng.Intn(len(pool))
	allyBucket := buckets[pool[allyAt]]
	pool = append(pool[:allyAt], pool[allyAt+1:]...)
	p.AllyHouse = allyBucket[rng.Intn(len(allyBucket))]

	allyUnits, err := unitLocations(grid, []int{p.AllyHouse}, cfg.MaxAllyUnits, cfg.UnitAreaBudget, rng)
	if err != nil {
		return nil, fmt.Errorf("ally units: %w", err)
	}
	p.AllyUnits = allyUnits

	// Prune the pool down to the drawn enemy house count.
	upper := maxEnemyHouses
	if len(pool) < upper {
		upper = len(pool)
	}
	houseCount := rng.IntRange(minEnemyHouses, upper)
	for len(pool) > houseCount {
		drop := rng.Intn(len(pool))
		pool = append(pool[:drop], pool[drop+1:]...)
	}

	for _, key := range pool {
		house, err := sampleHouseSite(grid, buckets[key], rng)
		if err != nil {
			return nil, fmt.Errorf("enemy bucket %d: %w", key, err)
		}
		p.EnemyHouses = append(p.EnemyHouses, house)
	}

	enemyUnits, err := unitLocations(grid, p.EnemyHouses, cfg.MaxEnemyUnits, cfg.UnitAreaBudget, rng)
	if err != nil {
		return nil, fmt.Errorf("enemy units: %w", err)
	}
	p.EnemyUnits = enemyUnits

	return p, nil
}

// sampleHouseSite draws random cells from the bucket until one passes the
// 8-neighbor hazard check. Tried cells are removed from the working set, so
// a bucket with no valid site fails instead of retrying forever.
func sampleHouseSite(grid *TerrainGrid, bucket []int, rng *RNG) (int, error) {
	candidates := make([]int, len(bucket))
	copy(candidates, bucket)

	for len(candidates) > 0 {
		i := rng.Intn(len(candidates))
		cell := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)

		x, y := cellXY(cell, grid.Width)
		if !grid.hazardAdjacent(x, y) {
			return cell, nil
		}
	}
	return 0, fmt.Errorf("%w: no hazard-free house site in bucket", ErrPlacementExhausted)
}

// unitLocations spreads maxUnits evenly across the houses: each house gets
// maxUnits/len(houses) units (integer division; the remainder is accepted
// slack, not an error). Candidates come from a capped flood fill around each
// house, so every unit cell shares the house's navigable component.
func unitLocations(grid *TerrainGrid, houses []int, maxUnits, areaBudget int, rng *RNG) ([]int, error) {
	quota := maxUnits / len(houses)
	units := make([]int, 0, quota*len(houses))

	for _, house := range houses {
		candidates := floodFill(grid, house, areaBudget)
		// The house cell itself is always element zero of the fill.
		candidates = candidates[1:]

		if len(candidates) < quota {
			return nil, fmt.Errorf("%w: %d spawn candidates around house for quota %d",
				ErrPlacementExhausted, len(candidates), quota)
		}
		for i := 0; i < quota; i++ {
			j := rng.Intn(len(candidates))
			units = append(units, candidates[j])
			candidates = append(candidates[:j], candidates[j+1:]...)
		}
	}
	return units, nil
}
