package main

import (
	"log"
	"net/http"
	"time"

	"skirmish.dev/internal/config"
	"skirmish.dev/internal/generation"
	"skirmish.dev/internal/handlers"
	"skirmish.dev/internal/services"
)

func main() {
	cfg := config.Load()

	start := time.Now()
	m, err := generation.Generate(cfg.Generation)
	if err != nil {
		log.Fatalf("map generation failed: %v", err)
	}
	terrainSeed, locationsSeed := m.Seeds()
	log.Printf("generated %dx%d map (terrain seed %d, locations seed %d) in %v",
		m.Width(), m.Height(), terrainSeed, locationsSeed, time.Since(start))

	mapService := services.NewMapService(m)
	router := handlers.SetupRoutes(mapService)

	log.Printf("listening on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
