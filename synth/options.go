// SPDX-License-Identifier: MIT
// Package: lvphase/synth
//
// options.go — functional options for the stochastic surface builders.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   • Determinism is explicit: the same seed yields the same surface.

package synth

import "math"

// Defaults for Simplex.
const (
	DefaultSeed      int64   = 1
	DefaultAmplitude float64 = 4 * math.Pi // peak-to-peak height in radians
	DefaultScale     float64 = 0.05        // noise-space units per pixel
	DefaultOctaves   int     = 1
)

type config struct {
	seed      int64
	amplitude float64
	scale     float64
	octaves   int
}

func newConfig(opts ...Option) config {
	c := config{
		seed:      DefaultSeed,
		amplitude: DefaultAmplitude,
		scale:     DefaultScale,
		octaves:   DefaultOctaves,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// Option customizes a stochastic builder.
type Option func(*config)

// WithSeed fixes the noise seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithAmplitude sets the peak-to-peak height of the surface in radians.
// Panics unless a is finite and > 0.
func WithAmplitude(a float64) Option {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("synth: WithAmplitude: amplitude must be finite and > 0")
	}
	return func(c *config) { c.amplitude = a }
}

// WithScale sets the noise frequency in noise-space units per pixel.
// Smaller values give smoother surfaces. Panics unless s is finite and > 0.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("synth: WithScale: scale must be finite and > 0")
	}
	return func(c *config) { c.scale = s }
}

// WithOctaves sets the number of summed noise octaves (each doubles the
// frequency and halves the weight). Panics if n < 1.
func WithOctaves(n int) Option {
	if n < 1 {
		panic("synth: WithOctaves: n must be >= 1")
	}
	return func(c *config) { c.octaves = n }
}
