package render

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/katalvlaran/placer/anneal"
	"github.com/katalvlaran/placer/netlist"
	"github.com/katalvlaran/placer/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario places cells 0, 1, 2 at (0,0), (0,1), (1,0) on a 2×2 grid.
func scenario(t *testing.T) *placement.State {
	t.Helper()
	st, err := placement.FromPositions(placement.Grid{Rows: 2, Cols: 2},
		[]placement.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}})
	require.NoError(t, err)

	return st
}

func TestText(t *testing.T) {
	st := scenario(t)

	assert.Equal(t, " 0  1\n 2 --\n\n", String(st, TextOptions{}))
	assert.Equal(t, "0 0\n0 1\n\n", String(st, OccupancyOptions()))

	ids := []int{7, 120, 3}
	got := String(st, TextOptions{
		Placeholder: ".",
		Label:       func(c int) string { return strconv.Itoa(ids[c]) },
	})
	assert.Equal(t, "  7 120\n  3   .\n\n", got)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, st, TextOptions{}))
	assert.Equal(t, String(st, TextOptions{}), buf.String())
}

func TestText_CellIDs(t *testing.T) {
	nl, err := netlist.New(placement.Grid{Rows: 2, Cols: 2}, [][]int{{40, 7}, {7, 12}})
	require.NoError(t, err)
	// Dense indices follow ascending identifiers: 7→0, 12→1, 40→2.
	st, err := placement.FromPositions(nl.Grid,
		[]placement.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 1}})
	require.NoError(t, err)

	assert.Equal(t, " 7 40\n-- 12\n\n", String(st, IDOptions(nl)))
	assert.Equal(t, " 0  2\n--  1\n\n", String(st, TextOptions{}), "zero value prints dense indices")
	assert.Equal(t, "12", CellIDs(nl)(1))
}

func TestNewPainter_Invalid(t *testing.T) {
	_, err := NewPainter(ImageOptions{CellSize: 4, FontSize: 14})
	assert.ErrorIs(t, err, placement.ErrInvalidParameter)
	_, err = NewPainter(ImageOptions{CellSize: 50})
	assert.ErrorIs(t, err, placement.ErrInvalidParameter)
}

func TestPainter_Image(t *testing.T) {
	st := scenario(t)
	p, err := NewPainter(DefaultImageOptions())
	require.NoError(t, err)

	img := p.Image(st)
	assert.Equal(t, 101, img.Bounds().Dx())
	assert.Equal(t, 101, img.Bounds().Dy())

	assert.Equal(t, colorGridLine, img.RGBAAt(0, 0))
	assert.Equal(t, colorGridLine, img.RGBAAt(50, 75))
	assert.Equal(t, colorOccupied, img.RGBAAt(3, 3), "occupied site is shaded")
	assert.Equal(t, colorBackground, img.RGBAAt(97, 97), "empty site stays blank")

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, st, DefaultImageOptions()))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func annealWith(t *testing.T, obs anneal.Observer, steps int) {
	t.Helper()
	nl, err := netlist.New(placement.Grid{Rows: 3, Cols: 3}, [][]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	_, err = anneal.Run(context.Background(), nl, anneal.NewOptions(anneal.WithMaxSteps(steps), anneal.WithObserver(obs)))
	require.NoError(t, err)
}

func TestFrameRecorder(t *testing.T) {
	p, err := NewPainter(ImageOptions{CellSize: 20, FontSize: 10})
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "frames")
	rec, err := NewFrameRecorder(dir, p, 2)
	require.NoError(t, err)

	annealWith(t, rec, 5)
	assert.Equal(t, 3, rec.Frames())
	for _, name := range []string{"step_0000.png", "step_0002.png", "step_0004.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(dir, "step_0001.png"))
	assert.True(t, os.IsNotExist(err))

	_, err = NewFrameRecorder(dir, nil, 1)
	assert.ErrorIs(t, err, placement.ErrInvalidParameter)
}

func TestGIFRecorder(t *testing.T) {
	p, err := NewPainter(ImageOptions{CellSize: 20, FontSize: 10})
	require.NoError(t, err)
	rec, err := NewGIFRecorder(p, 1, 10)
	require.NoError(t, err)
	assert.ErrorIs(t, rec.Encode(&bytes.Buffer{}), ErrNoFrames)

	annealWith(t, rec, 3)
	require.Equal(t, 3, rec.Len())

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 3)
	assert.Equal(t, []int{10, 10, 10}, anim.Delay)
}
