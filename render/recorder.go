package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/placer/anneal"
	"github.com/katalvlaran/placer/placement"
)

// FrameRecorder is an anneal.Observer that writes one PNG per recorded step
// to Dir as step_0000.png, step_0001.png, ...
type FrameRecorder struct {
	Dir     string
	Painter *Painter
	// Every records steps whose index is a multiple of Every; < 2 records all.
	Every int

	frames int
}

// NewFrameRecorder creates dir if needed and returns a recorder writing to it.
func NewFrameRecorder(dir string, p *Painter, every int) (*FrameRecorder, error) {
	if p == nil {
		return nil, fmt.Errorf("render: nil painter: %w", placement.ErrInvalidParameter)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: frames dir: %w", err)
	}

	return &FrameRecorder{Dir: dir, Painter: p, Every: every}, nil
}

// Observe implements anneal.Observer.
func (f *FrameRecorder) Observe(s anneal.Snapshot) error {
	if !due(s.Step, f.Every) {
		return nil
	}
	path := filepath.Join(f.Dir, fmt.Sprintf("step_%04d.png", s.Step))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = f.Painter.PNG(file, s.Placement); err != nil {
		file.Close()
		return fmt.Errorf("render: %s: %w", path, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("render: %s: %w", path, err)
	}
	f.frames++

	return nil
}

// Frames returns the number of files written.
func (f *FrameRecorder) Frames() int { return f.frames }

// GIFRecorder is an anneal.Observer that collects paletted frames for an
// animated GIF. Frames are kept in memory until Encode.
type GIFRecorder struct {
	Painter *Painter
	// Every records steps whose index is a multiple of Every; < 2 records all.
	Every int
	// Delay is the per-frame delay in 100ths of a second.
	Delay int

	anim gif.GIF
}

// NewGIFRecorder returns a recorder that keeps every n-th step.
func NewGIFRecorder(p *Painter, every, delay int) (*GIFRecorder, error) {
	if p == nil {
		return nil, fmt.Errorf("render: nil painter: %w", placement.ErrInvalidParameter)
	}

	return &GIFRecorder{Painter: p, Every: every, Delay: delay}, nil
}

// Observe implements anneal.Observer.
func (g *GIFRecorder) Observe(s anneal.Snapshot) error {
	if !due(s.Step, g.Every) {
		return nil
	}
	img := g.Painter.Image(s.Placement)
	frame := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.Draw(frame, frame.Bounds(), img, img.Bounds().Min, draw.Src)
	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, g.Delay)

	return nil
}

// Len returns the number of recorded frames.
func (g *GIFRecorder) Len() int { return len(g.anim.Image) }

// Encode writes the animation to w. Returns ErrNoFrames if nothing was recorded.
func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}

	return gif.EncodeAll(w, &g.anim)
}

func due(step, every int) bool {
	return every < 2 || step%every == 0
}
