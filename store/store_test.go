package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvphase/goldstein"
	"github.com/katalvlaran/lvphase/store"
)

func openDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestRecordGet(t *testing.T) {
	db := openDB(t)

	rep := goldstein.Report{
		Residues:   6,
		Dipoles:    2,
		Grounded:   1,
		Balanced:   0,
		Unresolved: []goldstein.Residue{{Row: 3, Col: 4, Charge: 1}},
		Cuts:       9,
		Elapsed:    1500 * time.Millisecond,
	}
	in := store.Run{Algorithm: "goldstein", Source: "synth:vortex", Rows: 32, Cols: 48}.FromReport(rep)
	got, err := db.Record(in)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.NotZero(t, got.CreatedAt)
	assert.Equal(t, 1, got.Unresolved)
	assert.Equal(t, int64(1500), got.DurationMs)

	back, err := db.Get(got.ID)
	require.NoError(t, err)
	assert.Equal(t, got, back)
	assert.WithinDuration(t, time.Now(), back.Created(), time.Minute)
}

func TestGet_NotFound(t *testing.T) {
	db := openDB(t)
	_, err := db.Get(uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecord_DuplicateID(t *testing.T) {
	db := openDB(t)
	run, err := db.Record(store.Run{Algorithm: "itoh", Source: "a.png", Rows: 2, Cols: 2})
	require.NoError(t, err)
	_, err = db.Record(run)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	db := openDB(t)
	for i := 0; i < 5; i++ {
		_, err := db.Record(store.Run{Algorithm: "itoh", Source: "synth:ramp", Rows: 4, Cols: 4, CreatedAt: int64(1000 + i)})
		require.NoError(t, err)
	}

	all, err := db.List(0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, int64(1004), all[0].CreatedAt)
	assert.Equal(t, int64(1000), all[4].CreatedAt)

	top, err := db.List(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, all[:2], top)
}

// TestOpen_Reopen keeps runs across connections.
func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	db, err := store.Open(path)
	require.NoError(t, err)
	run, err := db.Record(store.Run{Algorithm: "goldstein", Source: "x", Rows: 3, Cols: 3})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = store.Open(path)
	require.NoError(t, err)
	defer db.Close()
	back, err := db.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, back.ID)
}
