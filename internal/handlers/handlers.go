package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skirmish.dev/internal/middleware"
	"skirmish.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(mapService *services.MapService) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	mapHandler := NewMapHandler(mapService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/map", mapHandler.GetMap)
		r.Get("/map/placements", mapHandler.GetPlacements)
		r.Get("/map/terrain/{x}/{y}", mapHandler.GetTerrain)
		r.Get("/map/viewport", mapHandler.GetViewport)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
