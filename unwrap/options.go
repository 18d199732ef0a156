package unwrap

import (
	"fmt"
	"runtime"
)

// ColumnDifference selects how Itoh differences neighbouring samples of column 0.
type ColumnDifference int

const (
	// Forward integrates u[r,0] = u[r−1,0] + Wrap(w[r,0] − w[r−1,0]),
	// the same direction used along rows. Recovers smooth surfaces exactly.
	Forward ColumnDifference = iota
	// Backward integrates u[r,0] = u[r−1,0] + Wrap(w[r−1,0] − w[r,0]).
	// Column 0 then comes out mirrored about the seed; kept for comparison
	// with results produced that way.
	Backward
)

// String implements fmt.Stringer.
func (d ColumnDifference) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("ColumnDifference(%d)", int(d))
	}
}

// Defaults.
const (
	// DefaultWorkers of 0 resolves to runtime.GOMAXPROCS(0) at run time.
	DefaultWorkers = 0
	// DefaultColumnDifference is Forward.
	DefaultColumnDifference = Forward
)

// Options holds the resolved configuration of an Itoh unwrapper.
type Options struct {
	workers    int
	columnDiff ColumnDifference
}

// Workers returns the effective worker bound (never < 1).
func (o Options) Workers() int {
	if o.workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.workers
}

// ColumnDifference returns the configured column-0 direction.
func (o Options) ColumnDifference() ColumnDifference { return o.columnDiff }

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithWorkers bounds the number of goroutines used for row integration.
// 0 means runtime.GOMAXPROCS(0). Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("unwrap: WithWorkers: n must be >= 0")
	}
	return func(o *Options) { o.workers = n }
}

// WithColumnDifference selects the column-0 difference direction.
// Panics on an unknown value.
func WithColumnDifference(d ColumnDifference) Option {
	if d != Forward && d != Backward {
		panic("unwrap: WithColumnDifference: unknown direction")
	}
	return func(o *Options) { o.columnDiff = d }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers, columnDiff: DefaultColumnDifference}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
