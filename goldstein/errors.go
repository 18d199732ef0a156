package goldstein

import (
	"fmt"

	"github.com/katalvlaran/lvphase/grid"
)

// ErrShapeMismatch indicates the flag grid and the phase grids disagree in
// shape. It signals a bug in reassignment logic and is always fatal.
// It wraps grid.ErrShapeMismatch.
var ErrShapeMismatch = fmt.Errorf("goldstein: flag grid does not match phase grid: %w", grid.ErrShapeMismatch)
