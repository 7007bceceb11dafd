package config

import (
	"os"
	"strconv"

	"skirmish.dev/internal/generation"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string
	Generation generation.Config
}

// Load reads configuration from the environment. Unset values fall back to
// the reference defaults; malformed values fail fast.
func Load() *Config {
	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = ":8080"
	}

	gen := generation.DefaultConfig()
	gen.TerrainSeed = envInt64("SKIRMISH_TERRAIN_SEED", gen.TerrainSeed)
	gen.LocationsSeed = envInt64("SKIRMISH_LOCATIONS_SEED", gen.LocationsSeed)
	gen.MinWalkableFraction = envFloat("SKIRMISH_MIN_WALKABLE", gen.MinWalkableFraction)

	return &Config{
		ServerAddr: serverAddr,
		Generation: gen,
	}
}

// envInt64 reads an int64 environment variable
func envInt64(name string, defaultVal int64) int64 {
	val := os.Getenv(name)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		panic("Failed to parse " + name + ": " + err.Error())
	}
	return parsed
}

// envFloat reads a float64 environment variable
func envFloat(name string, defaultVal float64) float64 {
	val := os.Getenv(name)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		panic("Failed to parse " + name + ": " + err.Error())
	}
	return parsed
}
