package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/poissondisk/density"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestParseArgs_Defaults checks flag defaults and per-mode minimums.
func TestParseArgs_Defaults(t *testing.T) {
	job, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, modeFill, job.Mode)
	assert.Equal(t, []float64{100, 100}, job.Shape)
	assert.Equal(t, defaultFillMin, job.Min)
	assert.Equal(t, "csv", job.Format)
	assert.Equal(t, 1, job.Count)

	job, err = parseArgs([]string{"-mode", "terrain"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, defaultTerrainMin, job.Min)
	assert.Equal(t, defaultFieldTries, job.Tries)
	assert.Zero(t, job.canvasW)

	job, err = parseArgs([]string{"-mode", "map"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, defaultMapFreq, job.Freq)
	assert.Equal(t, 500, job.canvasW)
	assert.Equal(t, 500, job.canvasH)

	job, err = parseArgs([]string{"-mode", "terrain", "-pixels", "640x480", "-strength", "4"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 640, job.canvasW)
	assert.Equal(t, 480, job.canvasH)
	assert.Equal(t, 4.0, job.Strength)
}

// TestParseArgs_YAMLThenFlags checks that explicit flags win over the job file.
func TestParseArgs_YAMLThenFlags(t *testing.T) {
	cfg := writeFile(t, "job.yaml", `
mode: fill
shape: [20, 30, 40]
min: 1.5
tries: 12
seed: 9
format: json
count: 3
`)
	job, err := parseArgs([]string{"-config", cfg, "-seed", "4", "-shape", "5,6", "-o", "out.csv"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, job.Shape, "flag overrides YAML")
	assert.Equal(t, int64(4), job.Seed, "flag overrides YAML")
	assert.Equal(t, "out.csv", job.Output)
	assert.Equal(t, 1.5, job.Min, "YAML kept when the flag is absent")
	assert.Equal(t, 12, job.Tries)
	assert.Equal(t, "json", job.Format)
	assert.Equal(t, 3, job.Count)
}

// TestParseArgs_Errors checks rejected jobs.
func TestParseArgs_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"UnknownMode", []string{"-mode", "spiral"}},
		{"UnknownFormat", []string{"-format", "xml"}},
		{"ZeroCount", []string{"-count", "0"}},
		{"ImageWithoutPath", []string{"-mode", "image"}},
		{"ShortExtent", []string{"-mode", "terrain", "-extent", "0,1"}},
		{"NegativeStrength", []string{"-mode", "terrain", "-strength", "-1"}},
		{"PixelsNoSeparator", []string{"-mode", "map", "-pixels", "640"}},
		{"PixelsZero", []string{"-mode", "terrain", "-pixels", "0x10"}},
		{"PixelsNotNumber", []string{"-mode", "map", "-pixels", "axb"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseArgs(tc.args, io.Discard)
			assert.ErrorIs(t, err, errUsage)
		})
	}

	_, err := parseArgs([]string{"-shape", "1,x"}, io.Discard)
	assert.Error(t, err)

	cfg := writeFile(t, "bad.yaml", "colour: red\n")
	_, err = parseArgs([]string{"-config", cfg}, io.Discard)
	assert.ErrorContains(t, err, "job file")

	_, err = parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.Error(t, err)
}

// TestFloatList checks parsing and formatting.
func TestFloatList(t *testing.T) {
	var l floatList
	require.NoError(t, l.Set("1, 2.5,3e2"))
	assert.Equal(t, floatList{1, 2.5, 300}, l)
	assert.Equal(t, "1,2.5,300", l.String())
	assert.Error(t, l.Set(""))
}

// TestRun_FillCSV checks an end-to-end fill with parallel runs and statistics.
func TestRun_FillCSV(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-shape", "10,10", "-min", "1", "-seed", "3", "-count", "2", "-stats"}, &stdout, &stderr)
	require.NoError(t, err)

	rows, err := csv.NewReader(&stdout).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(rows), 10)
	assert.Equal(t, []string{"run", "x", "y"}, rows[0])

	runs := map[string]int{}
	for _, r := range rows[1:] {
		require.Len(t, r, 3)
		runs[r[0]]++
	}
	assert.Len(t, runs, 2)
	assert.Contains(t, stderr.String(), "spacing")
	assert.Contains(t, stderr.String(), "run complete")
}

// TestRun_StatsSpacing checks the logged spacing summary of a fixed fill
// reports a minimum of at least the minimum distance.
func TestRun_StatsSpacing(t *testing.T) {
	var stderr bytes.Buffer
	require.NoError(t, run([]string{"-shape", "20,20", "-min", "1", "-seed", "8", "-stats"}, io.Discard, &stderr))

	m := regexp.MustCompile(`min=([0-9.e+-]+)`).FindStringSubmatch(stderr.String())
	require.Len(t, m, 2, stderr.String())
	got, err := strconv.ParseFloat(m[1], 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, 1.0)
	assert.LessOrEqual(t, got, 2.0)
}

// TestRun_Deterministic checks equal seeds give equal output.
func TestRun_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	args := []string{"-shape", "8,8,8", "-min", "1.5", "-seed", "11"}
	require.NoError(t, run(args, &a, io.Discard))
	require.NoError(t, run(args, &b, io.Discard))
	assert.Equal(t, a.String(), b.String())
	assert.True(t, strings.HasPrefix(a.String(), "run,x,y,z\n"))
}

// TestRun_TerrainJSON checks terrain mode output carries densities.
func TestRun_TerrainJSON(t *testing.T) {
	var stdout bytes.Buffer
	err := run([]string{"-mode", "terrain", "-min", "0.05", "-max", "0.2", "-format", "json", "-seed", "2"}, &stdout, io.Discard)
	require.NoError(t, err)

	var runs []jsonRun
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &runs))
	require.Len(t, runs, 1)
	require.NotEmpty(t, runs[0].Points)
	require.Len(t, runs[0].Densities, len(runs[0].Points))
	for i, p := range runs[0].Points {
		require.Len(t, p, 2)
		assert.GreaterOrEqual(t, runs[0].Densities[i], 0.0)
		assert.LessOrEqual(t, runs[0].Densities[i], 1.0)
	}
}

// TestRun_TerrainDotsOnCanvas checks the strength filter and pixel output.
func TestRun_TerrainDotsOnCanvas(t *testing.T) {
	base := []string{"-mode", "terrain", "-min", "0.05", "-max", "0.2", "-format", "json", "-seed", "6", "-pixels", "200x280"}

	var all, dots bytes.Buffer
	require.NoError(t, run(base, &all, io.Discard))
	require.NoError(t, run(append(base, "-strength", "3"), &dots, io.Discard))

	var allRuns, dotRuns []jsonRun
	require.NoError(t, json.Unmarshal(all.Bytes(), &allRuns))
	require.NoError(t, json.Unmarshal(dots.Bytes(), &dotRuns))
	require.Len(t, dotRuns, 1)

	kept := dotRuns[0]
	require.NotEmpty(t, kept.Points)
	assert.Less(t, len(kept.Points), len(allRuns[0].Points))
	require.Len(t, kept.Densities, len(kept.Points))
	for i, p := range kept.Points {
		assert.Equal(t, 0, density.DotLevel(kept.Densities[i], 3), "density %g", kept.Densities[i])
		assert.True(t, p[0] >= -0.5 && p[0] < 199.5, "col %g", p[0])
		assert.True(t, p[1] >= -0.5 && p[1] < 279.5, "row %g", p[1])
	}
	for _, p := range allRuns[0].Points {
		assert.True(t, p[0] >= -0.5 && p[0] < 199.5, "col %g", p[0])
		assert.True(t, p[1] >= -0.5 && p[1] < 279.5, "row %g", p[1])
	}
}

// TestRun_Map checks noise-map stippling.
func TestRun_Map(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-mode", "map", "-pixels", "60x40", "-freq", "0.05", "-min", "1", "-seed", "5"}, &stdout, io.Discard))

	rows, err := csv.NewReader(&stdout).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "x", "y", "density"}, rows[0])
	require.Greater(t, len(rows), 10)
	for _, r := range rows[1:] {
		x, err := strconv.ParseFloat(r[1], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(r[2], 64)
		require.NoError(t, err)
		assert.True(t, x >= 0 && x < 60 && y >= 0 && y < 40, "(%g, %g)", x, y)
	}
}

// TestRun_ImageFile checks image mode on a PNG written to disk.
func TestRun_ImageFile(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			img.SetGray(x, y, color.Gray{Y: uint8(6 * x)})
		}
	}
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	out := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, run([]string{"-mode", "image", "-image", path, "-min", "1", "-o", out}, io.Discard, io.Discard))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "x", "y", "density"}, rows[0])
	assert.Greater(t, len(rows), 20)
}
