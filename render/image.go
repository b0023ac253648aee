package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/placer/placement"
)

// ErrNoFrames is returned when encoding an animation with nothing recorded.
var ErrNoFrames = errors.New("render: no frames recorded")

// ImageOptions configures raster rendering.
type ImageOptions struct {
	// CellSize is the edge of one site in pixels.
	CellSize int
	// FontSize is the label size in points at 72 DPI.
	FontSize float64
	// Label maps a dense cell index to its text; nil prints the index
	// zero-padded to two digits.
	Label func(cell int) string
}

// DefaultImageOptions returns 50px sites with 14pt labels.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{CellSize: 50, FontSize: 14}
}

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorOccupied   = color.RGBA{227, 242, 253, 255} // #e3f2fd
	colorGridLine   = color.RGBA{51, 51, 51, 255}    // #333
	colorLabel      = color.RGBA{21, 101, 192, 255}  // #1565c0
)

// Painter renders placements to images. It holds a parsed font face and is
// not safe for concurrent use.
type Painter struct {
	opts ImageOptions
	face font.Face
}

// NewPainter validates opts and prepares the label font.
func NewPainter(opts ImageOptions) (*Painter, error) {
	if opts.CellSize < 8 {
		return nil, fmt.Errorf("render: cell size %d < 8: %w", opts.CellSize, placement.ErrInvalidParameter)
	}
	if !(opts.FontSize > 0) {
		return nil, fmt.Errorf("render: font size %v must be > 0: %w", opts.FontSize, placement.ErrInvalidParameter)
	}
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: font face: %w", err)
	}

	return &Painter{opts: opts, face: face}, nil
}

func (p *Painter) label(cell int) string {
	if p.opts.Label != nil {
		return p.opts.Label(cell)
	}
	if cell < 10 {
		return "0" + strconv.Itoa(cell)
	}
	return strconv.Itoa(cell)
}

// Image draws st: one square per site with grid lines, occupied sites
// shaded and labelled.
func (p *Painter) Image(st *placement.State) *image.RGBA {
	g := st.Grid()
	cs := p.opts.CellSize
	img := image.NewRGBA(image.Rect(0, 0, g.Cols*cs+1, g.Rows*cs+1))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	ascent := p.face.Metrics().Ascent.Ceil()
	for site := 0; site < g.Sites(); site++ {
		cell := st.Occupant(site)
		if cell == placement.Empty {
			continue
		}
		pos := g.Coordinate(site)
		x0, y0 := pos.Col*cs, pos.Row*cs
		draw.Draw(img, image.Rect(x0, y0, x0+cs, y0+cs), image.NewUniform(colorOccupied), image.Point{}, draw.Src)

		text := p.label(cell)
		width := font.MeasureString(p.face, text).Ceil()
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(colorLabel),
			Face: p.face,
			Dot:  fixed.P(x0+(cs-width)/2, y0+(cs+ascent)/2-1),
		}
		d.DrawString(text)
	}

	for r := 0; r <= g.Rows; r++ {
		y := r * cs
		for x := 0; x <= g.Cols*cs; x++ {
			img.Set(x, y, colorGridLine)
		}
	}
	for c := 0; c <= g.Cols; c++ {
		x := c * cs
		for y := 0; y <= g.Rows*cs; y++ {
			img.Set(x, y, colorGridLine)
		}
	}

	return img
}

// PNG encodes the Image of st to w.
func (p *Painter) PNG(w io.Writer, st *placement.State) error {
	return png.Encode(w, p.Image(st))
}

// PNG renders st with opts and encodes it to w.
func PNG(w io.Writer, st *placement.State, opts ImageOptions) error {
	p, err := NewPainter(opts)
	if err != nil {
		return err
	}

	return p.PNG(w, st)
}
