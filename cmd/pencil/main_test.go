package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStart = ` &INIT_PARS
 UNIT_LENGTH=1.00000000    ,
 UNIT_VELOCITY=1.00000000    ,
 UNIT_DENSITY=1.00000000    ,
 UNIT_TEMPERATURE=1.00000000    ,
 XYZ0=-3.14159274     ,-3.14159274     ,-3.14159274     ,
 /
 &HYDRO_INIT_PARS
 RHO0=1.00000000    ,
 /
 &DENSITY_INIT_PARS
 RHO0=2.00000000    ,
 /
`

const testSeries = `#--it-----t--------dt-------urms----
      0   0.000   1.000E-02   0.1000
     10   0.100   2.000E-02   0.2000
     20   0.200   1.500E-02   0.3000
`

func testDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "param.nml"), []byte(testStart), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "time_series.dat"), []byte(testSeries), 0o644))
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParamCommand(t *testing.T) {
	dir := testDataDir(t)

	out, logs, err := run(t, "--data", dir, "param")
	require.NoError(t, err)

	assert.Contains(t, out, "[hydro]")
	assert.Contains(t, out, "[density]")
	assert.Contains(t, out, "unit_time")
	assert.Contains(t, logs, "rho0 as 1.0 in hydro conflicts with 2.0 in density")
}

func TestParamCommand_ConflictsQuiet(t *testing.T) {
	dir := testDataDir(t)

	_, logs, err := run(t, "--data", dir, "param", "--conflicts-quiet")
	require.NoError(t, err)
	assert.NotContains(t, logs, "conflicts with")
}

func TestGetCommand(t *testing.T) {
	dir := testDataDir(t)

	out, _, err := run(t, "--data", dir, "get", "hydro.rho0")
	require.NoError(t, err)
	assert.Equal(t, "1.0\n", out)

	out, _, err = run(t, "--data", dir, "get", "xyz0")
	require.NoError(t, err)
	assert.Equal(t, "[-3.14159274, -3.14159274, -3.14159274]\n", out)

	_, _, err = run(t, "--data", dir, "get", "rho0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density.rho0")

	_, _, err = run(t, "--data", dir, "get", "nonexistent")
	assert.Error(t, err)
}

func TestGetCommand_NoNest(t *testing.T) {
	dir := testDataDir(t)

	out, _, err := run(t, "--data", dir, "get", "rho0", "--no-nest")
	require.NoError(t, err)
	assert.Equal(t, "2.0\n", out)
}

func TestExportCommand(t *testing.T) {
	dir := testDataDir(t)

	out, _, err := run(t, "--data", dir, "export", "--format", "yaml", "--no-units")
	require.NoError(t, err)
	assert.Contains(t, out, "hydro:\n  rho0: 1\n")
	assert.NotContains(t, out, "unit_time")

	path := filepath.Join(t.TempDir(), "params.json")
	_, _, err = run(t, "--data", dir, "export", "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"unit_time": 1`)
}

func TestPlotCommand(t *testing.T) {
	dir := testDataDir(t)

	out, _, err := run(t, "--data", dir, "plot", "urms", "--width", "30", "--height", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "samples: 3")
	assert.Contains(t, out, "urms vs t")

	_, _, err = run(t, "--data", dir, "plot", "brms")
	assert.Error(t, err)
}

func TestTsCommand(t *testing.T) {
	dir := testDataDir(t)

	out, _, err := run(t, "--data", dir, "ts")
	require.NoError(t, err)
	assert.Contains(t, out, "4 diagnostics, 3 rows")
	assert.Contains(t, out, "urms")
}

func TestSpectrumCommand(t *testing.T) {
	dir := testDataDir(t)

	out, _, err := run(t, "--data", dir, "spectrum", "urms", "--width", "30", "--height", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "frequency analysis: urms")
	assert.Contains(t, out, "dominant frequency")

	_, _, err = run(t, "--data", dir, "spectrum", "brms")
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	out, _, err := run(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "merged")

	dir := testDataDir(t)
	_, _, err = run(t, "--data", dir, "--preset", "bogus", "param")
	assert.ErrorContains(t, err, "unknown preset")

	out, _, err = run(t, "--data", dir, "--preset", "flat", "get", "rho0")
	require.NoError(t, err)
	assert.Equal(t, "2.0\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := testDataDir(t)
	cfgPath := filepath.Join(t.TempDir(), "pencil.yaml")
	content := "data_dir: " + dir + "\nread:\n  nest_dict: false\n  append_units: false\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	out, _, err := run(t, "--config", cfgPath, "get", "rho0")
	require.NoError(t, err)
	assert.Equal(t, "2.0\n", out)

	_, _, err = run(t, "--config", cfgPath, "get", "unit_time")
	assert.Error(t, err, "units disabled by config")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "presets")
	assert.Error(t, err)
}

func TestMissingData(t *testing.T) {
	_, _, err := run(t, "--data", t.TempDir(), "param")
	assert.ErrorContains(t, err, "file not found")
}
