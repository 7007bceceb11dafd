package models

// Tile describes how a terrain category is presented to clients.
type Tile struct {
	Character string `json:"character"`
	Color     string `json:"color"`
	Type      string `json:"type"`
	Walkable  bool   `json:"walkable"`
}

// Cell is a grid location in both index and coordinate form.
type Cell struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// Placements holds the faction start layout of a generated map.
type Placements struct {
	AllyHouse   Cell   `json:"ally_house"`
	AllyUnits   []Cell `json:"ally_units"`
	EnemyHouses []Cell `json:"enemy_houses"`
	EnemyUnits  []Cell `json:"enemy_units"`
}

// MapArtifact is the full serialized form of a generated map: what
// cmd/generate writes to disk and GET /api/map returns. The seed pair is
// included so any artifact can be regenerated bit-identically.
type MapArtifact struct {
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	TerrainSeed     int64           `json:"terrain_seed"`
	LocationsSeed   int64           `json:"locations_seed"`
	Tiles           [][]string      `json:"tiles"`
	TileDefinitions map[string]Tile `json:"tile_definitions"`
	Placements      Placements      `json:"placements"`
}

// TerrainInfo is the response for a single-cell terrain probe.
type TerrainInfo struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Type      string `json:"type"`
	Navigable bool   `json:"navigable"`
}

// ViewportData is a rendered window of the map around a center cell.
type ViewportData struct {
	Tiles   [][]Tile `json:"tiles"`
	CenterX int      `json:"center_x"`
	CenterY int      `json:"center_y"`
}
