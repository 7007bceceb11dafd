package generation

import "sort"

// partitionBuckets groups candidate cells into coarse bucketW x bucketH
// sub-grids. Cells on a bucket's own border are excluded, so points chosen
// from different buckets sit at least two tiles apart.
//
// The bucket key is bucketX + bucketY*bucketW: the tile bucket width doubles
// as the key stride. Distant sub-grids can therefore share a key; each
// sub-grid still maps to exactly one key, which is all the spacing guarantee
// needs. Kept as-is for compatibility with existing seeds.
func partitionBuckets(grid *TerrainGrid, cells []int, bucketW, bucketH int) map[int][]int {
	// Canonical input order keeps bucket membership independent of how the
	// candidate set was discovered.
	sorted := make([]int, len(cells))
	copy(sorted, cells)
	sort.Ints(sorted)

	buckets := make(map[int][]int)
	for _, idx := range sorted {
		x, y := cellXY(idx, grid.Width)
		lx, ly := x%bucketW, y%bucketH
		if lx == 0 || lx == bucketW-1 || ly == 0 || ly == bucketH-1 {
			continue
		}
		key := (x/bucketW) + (y/bucketH)*bucketW
		buckets[key] = append(buckets[key], idx)
	}
	return buckets
}

// bucketKeys returns the keys of all non-empty buckets in ascending order,
// so random selection draws from a canonical sequence.
func bucketKeys(buckets map[int][]int) []int {
	keys := make([]int, 0, len(buckets))
	for k, cells := range buckets {
		if len(cells) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)
	return keys
}
