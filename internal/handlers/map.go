package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"skirmish.dev/internal/services"
)

// MapHandler serves the read-only map endpoints.
type MapHandler struct {
	mapService *services.MapService
}

// NewMapHandler creates a new MapHandler
func NewMapHandler(ms *services.MapService) *MapHandler {
	return &MapHandler{mapService: ms}
}

// GetMap handles GET /api/map - returns the full map artifact
func (h *MapHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.mapService.Artifact())
}

// GetPlacements handles GET /api/map/placements - returns the faction layout
func (h *MapHandler) GetPlacements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.mapService.Placements())
}

// GetTerrain handles GET /api/map/terrain/{x}/{y} - probes a single cell.
// Out-of-range coordinates are a valid probe, not an error.
func (h *MapHandler) GetTerrain(w http.ResponseWriter, r *http.Request) {
	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	y, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	respondJSON(w, http.StatusOK, h.mapService.TerrainInfo(x, y))
}

// GetViewport handles GET /api/map/viewport - returns a rendered window
func (h *MapHandler) GetViewport(w http.ResponseWriter, r *http.Request) {
	x := parseIntParam(r, "x", 0)
	y := parseIntParam(r, "y", 0)
	width := clamp(parseIntParam(r, "width", 40), 10, 200)
	height := clamp(parseIntParam(r, "height", 20), 10, 100)

	respondJSON(w, http.StatusOK, h.mapService.Viewport(x, y, width, height))
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
