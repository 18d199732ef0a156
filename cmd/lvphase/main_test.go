package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvphase/imaging"
	"github.com/katalvlaran/lvphase/phase"
	"github.com/katalvlaran/lvphase/store"
	"github.com/katalvlaran/lvphase/synth"
)

func TestRun_SynthGoldstein(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "u.png")
	plotPath := filepath.Join(dir, "plot.png")
	dbPath := filepath.Join(dir, "runs.db")

	var stderr bytes.Buffer
	code := run([]string{"-synth", "vortex", "-rows", "24", "-cols", "28",
		"-out", out, "-plot", plotPath, "-db", dbPath}, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "goldstein report")

	for _, p := range []string{out, plotPath} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), p)
	}

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	runs, err := db.List(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "goldstein", runs[0].Algorithm)
	assert.Equal(t, "synth:vortex", runs[0].Source)
	assert.Equal(t, 24, runs[0].Rows)
	assert.Equal(t, 28, runs[0].Cols)
	assert.Positive(t, runs[0].Residues)
}

func TestRun_ImageItohWithConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "wrapped.png")
	require.NoError(t, imaging.SavePNG(in, phase.WrapGrid(synth.Ramp(16, 20, 0.2, 0.1))))
	cfgPath := filepath.Join(dir, "lvphase.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"algorithm": "itoh", "workers": 2}`), 0o600))
	out := filepath.Join(dir, "u.png")

	var stderr bytes.Buffer
	code := run([]string{"-in", in, "-config", cfgPath, "-out", out, "-v"}, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "algorithm=itoh")
	assert.Contains(t, stderr.String(), "level=DEBUG")

	u, err := imaging.Load(out, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 16, u.Rows())
	assert.Equal(t, 20, u.Cols())
}

func TestRun_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"no input":      {},
		"both inputs":   {"-in", "a.png", "-synth", "ramp"},
		"unknown synth": {"-synth", "spiral"},
		"unknown algo":  {"-synth", "ramp", "-rows", "4", "-cols", "4", "-algo", "quality"},
		"tiny":          {"-synth", "ramp", "-rows", "1"},
		"bad flag":      {"-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, 2, run(args, &stderr), stderr.String())
		})
	}
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-in", filepath.Join(dir, "missing.png")}, &stderr))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"epsilon": -1}`), 0o600))
	assert.Equal(t, 1, run([]string{"-synth", "ramp", "-config", bad}, &stderr))
}
