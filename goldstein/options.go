package goldstein

import (
	"math"
	"runtime"
)

// Defaults.
const (
	// DefaultEpsilon is the tolerance below which a loop integral counts as zero.
	DefaultEpsilon = 1e-3
	// DefaultMaxBoxSize of 0 resolves to max(rows, cols), a box large enough
	// to reach the border from anywhere, so every search terminates.
	DefaultMaxBoxSize = 0
	// DefaultWorkers of 0 resolves to runtime.GOMAXPROCS(0).
	DefaultWorkers = 0
)

// Options holds the resolved configuration of a Goldstein unwrapper.
type Options struct {
	epsilon    float64
	maxBoxSize int
	workers    int
}

// Epsilon returns the residue tolerance.
func (o Options) Epsilon() float64 { return o.epsilon }

// MaxBoxSize returns the configured bound (0 means max(rows, cols)).
func (o Options) MaxBoxSize() int { return o.maxBoxSize }

// Workers returns the effective worker bound (never < 1).
func (o Options) Workers() int {
	if o.workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.workers
}

func (o Options) boxLimit(rows, cols int) int {
	if o.maxBoxSize > 0 {
		return o.maxBoxSize
	}
	return max(rows, cols)
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithEpsilon sets the loop-integral tolerance. Panics unless eps is finite and >= 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("goldstein: WithEpsilon: eps must be finite, non-negative")
	}
	return func(o *Options) { o.epsilon = eps }
}

// WithMaxBoxSize bounds the half-width of the branch-cut box search.
// 0 restores the default. Panics if n < 0.
func WithMaxBoxSize(n int) Option {
	if n < 0 {
		panic("goldstein: WithMaxBoxSize: n must be >= 0")
	}
	return func(o *Options) { o.maxBoxSize = n }
}

// WithWorkers bounds the goroutines used by flag initialization and residue
// detection. 0 means runtime.GOMAXPROCS(0). Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("goldstein: WithWorkers: n must be >= 0")
	}
	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{epsilon: DefaultEpsilon, maxBoxSize: DefaultMaxBoxSize, workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
