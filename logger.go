package lvphase

import (
	"log/slog"

	"github.com/katalvlaran/lvphase/internal/logx"
)

// SetLogger configures the logger for lvphase and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: per-residue, per-dipole and per-search diagnostics
//   - [slog.LevelInfo]: stage summaries (residue, dipole and cut counts)
//   - [slog.LevelWarn]: residues left unresolved by the branch-cut search
//
// Example:
//
//	lvphase.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) { logx.SetLogger(l) }

// Logger returns the current logger. Never nil.
func Logger() *slog.Logger { return logx.Logger() }
