package services

import (
	"skirmish.dev/internal/generation"
	"skirmish.dev/internal/models"
)

// tileDefinitions maps each terrain glyph to its presentation. The glyphs
// are what the ASCII preview and the JSON artifact use.
var tileDefinitions = map[string]models.Tile{
	"~": {Character: "~", Color: "#2d6cdf", Type: "water", Walkable: false},
	".": {Character: ".", Color: "#8a6f4d", Type: "mud", Walkable: true},
	"^": {Character: "^", Color: "#3f9e4d", Type: "grass", Walkable: true},
	"T": {Character: "T", Color: "#1d5e28", Type: "tree", Walkable: false},
}

// voidTile is returned for viewport cells outside the map.
var voidTile = models.Tile{Character: "?", Color: "#2a2a2a", Type: "void", Walkable: false}

// MapService is the read-only facade over a generated map. It never mutates
// the map; every response is built fresh.
type MapService struct {
	m *generation.Map
}

// NewMapService wraps a generated map.
func NewMapService(m *generation.Map) *MapService {
	return &MapService{m: m}
}

// glyphFor returns the artifact glyph for a terrain category.
func glyphFor(t generation.TerrainType) string {
	switch t {
	case generation.Water:
		return "~"
	case generation.Mud:
		return "."
	case generation.Grass:
		return "^"
	default:
		return "T"
	}
}

// TerrainInfo returns the terrain probe response for (x, y). Out-of-range
// probes report water and non-navigable rather than failing.
func (s *MapService) TerrainInfo(x, y int) models.TerrainInfo {
	return models.TerrainInfo{
		X:         x,
		Y:         y,
		Type:      s.m.TerrainAt(x, y).String(),
		Navigable: s.m.IsNavigable(x, y),
	}
}

// Placements returns the faction start layout in coordinate form.
func (s *MapService) Placements() models.Placements {
	return models.Placements{
		AllyHouse:   s.cell(s.m.AllyHouseLocation()),
		AllyUnits:   s.cells(s.m.AllyUnitLocations()),
		EnemyHouses: s.cells(s.m.EnemyHouseLocations()),
		EnemyUnits:  s.cells(s.m.EnemyUnitLocations()),
	}
}

// Artifact builds the full serialized map.
func (s *MapService) Artifact() *models.MapArtifact {
	terrainSeed, locationsSeed := s.m.Seeds()

	tiles := make([][]string, s.m.Height())
	for y := 0; y < s.m.Height(); y++ {
		row := make([]string, s.m.Width())
		for x := 0; x < s.m.Width(); x++ {
			row[x] = glyphFor(s.m.TerrainAt(x, y))
		}
		tiles[y] = row
	}

	defs := make(map[string]models.Tile, len(tileDefinitions))
	for k, v := range tileDefinitions {
		defs[k] = v
	}

	return &models.MapArtifact{
		Width:           s.m.Width(),
		Height:          s.m.Height(),
		TerrainSeed:     terrainSeed,
		LocationsSeed:   locationsSeed,
		Tiles:           tiles,
		TileDefinitions: defs,
		Placements:      s.Placements(),
	}
}

// Viewport renders a width x height window centered on (centerX, centerY).
// Cells outside the map render as the void tile.
func (s *MapService) Viewport(centerX, centerY, width, height int) *models.ViewportData {
	vp := &models.ViewportData{
		Tiles:   make([][]models.Tile, height),
		CenterX: centerX,
		CenterY: centerY,
	}
	halfW, halfH := width/2, height/2

	for y := 0; y < height; y++ {
		row := make([]models.Tile, width)
		for x := 0; x < width; x++ {
			mapX := centerX - halfW + x
			mapY := centerY - halfH + y
			if mapX < 0 || mapX >= s.m.Width() || mapY < 0 || mapY >= s.m.Height() {
				row[x] = voidTile
				continue
			}
			row[x] = tileDefinitions[glyphFor(s.m.TerrainAt(mapX, mapY))]
		}
		vp.Tiles[y] = row
	}
	return vp
}

func (s *MapService) cell(index int) models.Cell {
	x, y := s.m.CellXY(index)
	return models.Cell{Index: index, X: x, Y: y}
}

func (s *MapService) cells(indices []int) []models.Cell {
	out := make([]models.Cell, len(indices))
	for i, idx := range indices {
		out[i] = s.cell(idx)
	}
	return out
}
