package generation

import (
	"github.com/aquilax/go-perlin"
)

const (
	// heightOctaves is the number of fractal octaves summed per cell.
	heightOctaves = 2

	// noiseFrequency maps grid coordinates into noise space. Low enough
	// that terrain features span many cells instead of flickering per tile.
	noiseFrequency = 0.06

	// octaveOffsetRange bounds the random start offset drawn for each
	// octave, so different seeds sample disjoint parts of noise space.
	octaveOffsetRange = 1024.0
)

// heightField produces a continuous height per cell from seeded Perlin noise.
// Each octave samples the noise at its own random start offset; successive
// octaves halve amplitude and double frequency (classic fractal sum).
type heightField struct {
	noise   *perlin.Perlin
	offsets [heightOctaves]Point2f
}

// Point2f is a float offset into noise space.
type Point2f struct {
	X, Y float64
}

// newHeightField builds the synthesizer for a terrain seed. The octave
// offsets are drawn from the supplied RNG, so they are part of the seed's
// deterministic draw order.
func newHeightField(seed int64, rng *RNG) *heightField {
	h := &heightField{
		// alpha/beta per the library's recommended smooth defaults; a
		// single internal iteration since octave summing happens here.
		noise: perlin.NewPerlin(2.0, 2.0, 1, seed),
	}
	for i := range h.offsets {
		h.offsets[i] = Point2f{
			X: rng.Float64() * octaveOffsetRange,
			Y: rng.Float64() * octaveOffsetRange,
		}
	}
	return h
}

// at returns the accumulated height for cell (x, y), normalized to [0, 1].
func (h *heightField) at(x, y int) float64 {
	var total, maxAmplitude float64
	amplitude := 1.0
	frequency := 1.0

	for i := 0; i < heightOctaves; i++ {
		nx := (float64(x) + h.offsets[i].X) * noiseFrequency * frequency
		ny := (float64(y) + h.offsets[i].Y) * noiseFrequency * frequency
		// Noise2D is roughly [-1, 1]; recenter to [0, 1] before weighting.
		sample := (h.noise.Noise2D(nx, ny) + 1) / 2
		total += sample * amplitude
		maxAmplitude += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}

	return total / maxAmplitude
}

// scaledAt returns the height scaled into the classifier's budget. Octave
// overshoot is clamped rather than rescaled: only the resulting category is
// consumed downstream, so the literal height does not need to be exact.
func (h *heightField) scaledAt(x, y int, budget float64) float64 {
	v := h.at(x, y) * budget
	if v > budget {
		v = budget
	}
	return v
}
