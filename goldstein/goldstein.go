package goldstein

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvphase/flags"
	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/internal/logx"
	"github.com/katalvlaran/lvphase/unwrap"
)

// Report summarizes one Run.
type Report struct {
	Residues   int           // residues found by DetectResidues
	Dipoles    int           // adjacent pairs removed by BalanceDipoles
	Grounded   int           // searches that ended at the border
	Balanced   int           // searches that ended with zero net charge
	Unresolved []Residue     // residues left without a committed cut
	Cuts       int           // pixels flagged BranchCut
	Regions    int           // disconnected regions seeded during integration
	Elapsed    time.Duration // wall time of the whole run
}

// Goldstein is the branch-cut unwrapper.
//
// It embeds unwrap.Base for grid ownership and keeps its own derived state:
// the pixel flags, the residue list and the branch-cut set. All three are
// rebuilt whenever a new wrapped grid is assigned.
//
// A Goldstein is not safe for concurrent use.
type Goldstein struct {
	unwrap.Base
	opts Options

	flags    *flags.Grid
	residues *residueSet
	cuts     *cutSet
	report   Report
}

var _ unwrap.Unwrapper = (*Goldstein)(nil)

// New returns a Goldstein unwrapper. A non-nil wrapped grid is assigned
// immediately; a nil grid leaves the unwrapper unset.
func New(wrapped *grid.Grid, opts ...Option) (*Goldstein, error) {
	gs := &Goldstein{opts: gatherOptions(opts...)}
	if wrapped != nil {
		if err := gs.SetWrapped(wrapped); err != nil {
			return nil, err
		}
	}

	return gs, nil
}

// SetWrapped assigns a new wrapped grid (see unwrap.Base.SetWrapped) and
// discards flags, residues, cuts and the last report.
func (gs *Goldstein) SetWrapped(g *grid.Grid) error {
	if err := gs.Base.SetWrapped(g); err != nil {
		return err
	}
	return gs.reset()
}

func (gs *Goldstein) reset() error {
	f, err := flags.New(gs.Rows(), gs.Cols(), gs.opts.Workers())
	if err != nil {
		return err
	}
	gs.flags = f
	gs.residues = newResidueSet(f)
	gs.cuts = newCutSet(f)
	gs.report = Report{}

	return nil
}

// Options returns the resolved configuration.
func (gs *Goldstein) Options() Options { return gs.opts }

func (gs *Goldstein) ready() error {
	if err := gs.Ready(); err != nil {
		return err
	}
	w, _ := gs.Grids()
	if gs.flags == nil || !gs.flags.Matches(w) {
		return ErrShapeMismatch
	}

	return nil
}

// stageReady reports whether a stage may run. A shape mismatch between the
// flags and the phase grids is logged at Error level; an unset grid is not.
func (gs *Goldstein) stageReady(stage string) bool {
	err := gs.ready()
	if errors.Is(err, ErrShapeMismatch) {
		logx.Logger().Error("goldstein: stage skipped", "stage", stage, "err", err)
	}

	return err == nil
}

// Run executes the full pipeline on fresh derived state:
// DetectResidues → BalanceDipoles → ComputeBranchCuts → integration.
// Unresolved residues are reported, not returned as an error.
func (gs *Goldstein) Run() (Report, error) {
	if err := gs.Ready(); err != nil {
		return Report{}, err
	}
	if err := gs.reset(); err != nil {
		return Report{}, err
	}
	if err := gs.ready(); err != nil {
		return Report{}, err
	}
	start := time.Now()
	log := logx.Logger()

	found := gs.DetectResidues()
	log.Info("goldstein: residues detected", "count", found)

	dipoles := gs.BalanceDipoles()
	log.Info("goldstein: dipoles balanced", "count", dipoles, "remaining", gs.residues.len())

	rep := gs.ComputeBranchCuts()
	rep.Residues = found
	rep.Dipoles = dipoles
	if len(rep.Unresolved) > 0 {
		log.Warn("goldstein: unresolved residues", "count", len(rep.Unresolved), "max_box_size", gs.opts.boxLimit(gs.Rows(), gs.Cols()))
	}

	rep.Regions = gs.integrate()
	rep.Elapsed = time.Since(start)
	gs.report = rep
	log.Info("goldstein: unwrapped",
		"rows", gs.Rows(), "cols", gs.Cols(),
		"cuts", rep.Cuts, "regions", rep.Regions,
		"elapsed", rep.Elapsed)

	return rep, nil
}

// Unwrap runs the full pipeline and keeps the report for LastReport.
// Only precondition violations are returned.
func (gs *Goldstein) Unwrap() error {
	_, err := gs.Run()
	return err
}

// LastReport returns the report of the most recent Run or ComputeBranchCuts.
func (gs *Goldstein) LastReport() Report {
	rep := gs.report
	rep.Unresolved = append([]Residue(nil), rep.Unresolved...)
	return rep
}

// Residues returns the current residue list in detection order, or nil if unset.
func (gs *Goldstein) Residues() []Residue {
	if gs.residues == nil {
		return nil
	}
	return gs.residues.snapshot()
}

// BranchCuts returns the cut pixels in first-marked order, or nil if unset.
func (gs *Goldstein) BranchCuts() []grid.Point {
	if gs.cuts == nil {
		return nil
	}
	return append([]grid.Point(nil), gs.cuts.points...)
}

// Flags returns a copy of the pixel flags, or nil if unset.
func (gs *Goldstein) Flags() *flags.Grid {
	if gs.flags == nil {
		return nil
	}
	return gs.flags.Clone()
}

// ResidueMap returns a grid holding +1 on positive residues, −1 on negative
// ones and 0 elsewhere. Nil if unset.
func (gs *Goldstein) ResidueMap() *grid.Grid {
	return gs.flagMap(func(c flags.Cell) float64 { return float64(c.Charge()) })
}

// BranchCutMap returns a grid holding 1 on branch-cut pixels and 0 elsewhere.
// Nil if unset.
func (gs *Goldstein) BranchCutMap() *grid.Grid {
	return gs.flagMap(func(c flags.Cell) float64 {
		if c.Is(flags.BranchCut) {
			return 1
		}
		return 0
	})
}

func (gs *Goldstein) flagMap(value func(flags.Cell) float64) *grid.Grid {
	if gs.flags == nil {
		return nil
	}
	m, err := grid.New(gs.flags.Rows(), gs.flags.Cols())
	if err != nil {
		return nil
	}
	m.Apply(func(row, col int, _ float64) float64 {
		return value(gs.flags.Cell(row, col))
	})

	return m
}
