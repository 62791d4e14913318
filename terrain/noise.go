package terrain

import "math"

// Fractal is a seeded fractal value-noise heightmap. It samples smoothed
// hash noise at Octaves successive frequencies and sums them with decaying
// amplitudes — the usual octave stack for procedural terrain.
//
// Sampling is purely arithmetic on world coordinates (no RNG walking, no
// lookup tables), so a Fractal is deterministic for a given Seed, carries no
// mutable state, and is safe to share across concurrent searches.
//
// Fields:
//   - Seed:        selects the terrain; equal seeds reproduce equal terrain.
//   - Octaves:     number of noise layers summed (≥ 1).
//   - Frequency:   spatial frequency of the first octave.
//   - Amplitude:   amplitude of the first octave.
//   - Persistence: per-octave amplitude multiplier (usually < 1).
//   - Lacunarity:  per-octave frequency multiplier (usually > 1).
type Fractal struct {
	Seed        int64
	Octaves     int
	Frequency   float64
	Amplitude   float64
	Persistence float64
	Lacunarity  float64
}

// NewFractal returns a Fractal with conventional defaults: 4 octaves,
// frequency 1, amplitude 1, persistence 0.5, lacunarity 2.
func NewFractal(seed int64) Fractal {
	return Fractal{
		Seed:        seed,
		Octaves:     4,
		Frequency:   1,
		Amplitude:   1,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// Elevation implements Oracle. It never fails.
func (f Fractal) Elevation(x, z float64) (float64, error) {
	freq := f.Frequency
	amp := f.Amplitude
	sum := 0.0
	for o := 0; o < f.Octaves; o++ {
		sum += amp * f.value(x*freq, z*freq)
		freq *= f.Lacunarity
		amp *= f.Persistence
	}

	return sum, nil
}

// value returns smoothed value noise at (x, z): the four surrounding lattice
// corners are hashed to stable pseudo-random values and blended with a
// smoothstep-eased bilinear interpolation.
func (f Fractal) value(x, z float64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	tx := smoothstep(x - x0)
	tz := smoothstep(z - z0)

	ix, iz := int64(x0), int64(z0)
	c00 := f.corner(ix, iz)
	c10 := f.corner(ix+1, iz)
	c01 := f.corner(ix, iz+1)
	c11 := f.corner(ix+1, iz+1)

	north := c00 + (c10-c00)*tx
	south := c01 + (c11-c01)*tx

	return north + (south-north)*tz
}

// corner hashes one lattice corner (with the seed) to a value in [-1, 1).
// The mix uses splitmix64-style avalanche constants so nearby corners are
// uncorrelated.
func (f Fractal) corner(ix, iz int64) float64 {
	h := uint64(ix)*0x9E3779B97F4A7C15 ^ uint64(iz)*0xC2B2AE3D27D4EB4F ^ uint64(f.Seed)
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33

	return float64(h>>11)/(1<<53)*2 - 1
}

// smoothstep eases t in [0,1] with 3t²−2t³, removing the derivative
// discontinuity plain bilinear interpolation would show at cell edges.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
