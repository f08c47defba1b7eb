package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replay(t *testing.T, script string) *replayer {
	t.Helper()
	r := newReplayer(defaultConfig())
	require.NoError(t, r.run(strings.NewReader(script)))
	return r
}

func report(t *testing.T, r *replayer, color bool) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, newReporter(color).write(&buf, r))
	return buf.String()
}

const disposeScript = `
# one svg layer and one canvas
block layer svg
block paint canvas
backbone main layer
drawable a svg
drawable b svg
drawable c canvas
add a layer main
add b layer main
add c paint
connect a b
rect c 0 0 4 4
frame

dispose b
frame
`

func TestReplayReport(t *testing.T) {
	r := replay(t, disposeScript)
	require.Len(t, r.frames, 2)

	want := "frame 1: visited 3, block changed 3, relinked 2, disposed 0, live 3, repainted paint\n" +
		"frame 2: visited 1, block changed 1, relinked 2, disposed 1, live 2\n" +
		"block layer (svg): a\n" +
		"block paint (canvas): c\n" +
		"2 frames, 4 visits, 4 block changes, 4 relinks, 1 disposals; pool created 3 reused 0 live 2 free 1\n"
	assert.Equal(t, want, report(t, r, false))
}

func TestReplayColor(t *testing.T) {
	r := replay(t, disposeScript)
	out := report(t, r, true)
	assert.Contains(t, out, ansiBold+"frame 1"+ansiReset)
}

func TestReplayImplicitFrame(t *testing.T) {
	r := replay(t, "block l svg\ndrawable a svg\nadd a l\n")
	require.Len(t, r.frames, 1)
	assert.Equal(t, 1, r.frames[0].result.Visited)
}

func TestReplayMove(t *testing.T) {
	r := replay(t, `
block one svg
block two svg
drawable a svg
add a one
frame
move a two
frame
`)
	out := report(t, r, false)
	assert.Contains(t, out, "block one (svg): \n")
	assert.Contains(t, out, "block two (svg): a\n")
}

func TestReplayBlockErrors(t *testing.T) {
	r := replay(t, "block l dom\ndrawable a svg\nadd a l\nframe\n")
	assert.Contains(t, report(t, r, false), "has backend svg, want dom")
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown command", "bogus", `line 1: bogus: unknown command "bogus"`},
		{"unknown drawable", "add x layer", `unknown drawable "x"`},
		{"unknown block", "drawable a svg\nadd a nowhere", `unknown block "nowhere"`},
		{"unknown backend", "drawable a vml", `unknown backend "vml"`},
		{"duplicate drawable", "drawable a svg\ndrawable a svg", `line 2: drawable: drawable "a" already exists`},
		{"remove detached", "drawable a svg\nremove a", "has no block"},
		{"self connect", "drawable a svg\nconnect a a", "to itself"},
		{"dispose pending", "block l svg\ndrawable a svg\nadd a l\ndispose a", "pending addition"},
		{"dispose-now attached", "block l svg\ndrawable a svg\nadd a l\nframe\ndispose-now a", "still belongs"},
		{"disposed name", "drawable a svg\ndispose-now a\ndirty a", `line 3: dirty: unknown drawable "a"`},
		{"bad bool", "drawable a svg\nvisible a maybe", "invalid syntax"},
		{"arity", "drawable a svg\nrect a 1 2", "want 5 arguments, got 3"},
		{"unclosed quote", `drawable "a svg`, "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReplayer(defaultConfig())
			err := r.run(strings.NewReader(tt.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWritePNG(t *testing.T) {
	r := replay(t, disposeScript)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, writePNG(path, r))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())

	_, _, _, a := img.At(1, 1).RGBA()
	assert.NotZero(t, a, "rect painted")
}

func TestWritePNGWithoutCanvas(t *testing.T) {
	r := replay(t, "block l svg\n")
	assert.Error(t, writePNG(filepath.Join(t.TempDir(), "out.png"), r))
}

func TestExampleScript(t *testing.T) {
	config, err := loadConfig("testdata/example.ini")
	require.NoError(t, err)

	f, err := os.Open("testdata/example.stitch")
	require.NoError(t, err)
	defer f.Close()

	r := newReplayer(config)
	require.NoError(t, r.run(f))
	require.Len(t, r.frames, 3)

	raster := r.firstRaster()
	require.NotNil(t, raster)
	assert.Equal(t, 1, raster.Moves())
	assert.Len(t, r.frames[1].result.BlockChanged, 1, "label moved")
	assert.Equal(t, []string{"paint"}, r.frames[1].repainted)
	assert.Equal(t, 1, r.frames[2].result.Disposed)

	out := report(t, r, false)
	assert.Contains(t, out, "block paint (canvas): fg bg\n")
	assert.Contains(t, out, "block right (svg): \n")
}
