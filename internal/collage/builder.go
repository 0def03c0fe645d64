package collage

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"photobooth/internal/frame"
	"photobooth/internal/imaging"
	"photobooth/internal/models"
	"time"

	"github.com/nfnt/resize"
)

const (
	DefaultSize       = 1200
	DefaultPadding    = 50
	DefaultTitle      = "Photobooth"
	DefaultDateFormat = "2/1/2006"

	borderInset  = 5
	borderStroke = 5
	photoInset   = 10
	lightenBy    = 30

	titleSize        = 48
	titleBaseline    = 40
	subtitleSize     = 24
	subtitleFromEdge = 30
	shadowBlur       = 10
)

var ErrNoPhotos = errors.New("no photos to compose")

type Options struct {
	Size       int
	Padding    int
	Title      string
	DateFormat string
	Layout     models.Layout
	FrameColor string
	// PhotoCount is shown in the subtitle; it may exceed the number of cells.
	PhotoCount int
	Date       time.Time
	Workers    int
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Padding < 0 || o.Padding*2 >= o.Size {
		o.Padding = DefaultPadding
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.DateFormat == "" {
		o.DateFormat = DefaultDateFormat
	}
	if o.Date.IsZero() {
		o.Date = time.Now()
	}
	return o
}

// Cell is the outcome of one grid slot.
type Cell struct {
	Index int
	Rect  image.Rectangle
	Err   error
}

type Result struct {
	Image *image.RGBA
	Cells []Cell
}

// Drawn counts the cells whose photo made it onto the canvas.
func (r *Result) Drawn() int {
	n := 0
	for _, c := range r.Cells {
		if c.Err == nil {
			n++
		}
	}
	return n
}

// Build composes up to rows*cols of the PNG blobs into a square collage.
// Blobs are decoded concurrently; the title overlay is drawn only once every
// decode has resolved. Undecodable photos leave their cell empty.
func Build(ctx context.Context, blobs [][]byte, opts Options) (*Result, error) {
	if len(blobs) == 0 {
		return nil, ErrNoPhotos
	}
	opts = opts.withDefaults()

	from, err := frame.ParseHex(opts.FrameColor)
	if err != nil {
		return nil, fmt.Errorf("collage background: %w", err)
	}
	light, err := frame.Lighten(opts.FrameColor, lightenBy)
	if err != nil {
		return nil, fmt.Errorf("collage background: %w", err)
	}
	to, _ := frame.ParseHex(light)

	rows, cols := opts.Layout.Grid()
	if len(blobs) > rows*cols {
		blobs = blobs[:rows*cols]
	}

	size := opts.Size
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	fillDiagonalGradient(canvas, from, to)

	decoded := imaging.DecodeAll(ctx, blobs, opts.Workers)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cellW := float64(size-2*opts.Padding) / float64(cols)
	cellH := float64(size-2*opts.Padding) / float64(rows)
	stroke := color.RGBA{R: from.R, G: from.G, B: from.B, A: 255}

	result := &Result{Image: canvas, Cells: make([]Cell, len(decoded))}
	for i, d := range decoded {
		x := float64(opts.Padding) + float64(i%cols)*cellW
		y := float64(opts.Padding) + float64(i/cols)*cellH
		result.Cells[i] = Cell{Index: i, Err: d.Err}
		if d.Err != nil {
			continue
		}
		strokeRect(canvas, x+borderInset, y+borderInset, cellW-2*borderInset, cellH-2*borderInset, borderStroke, stroke)
		result.Cells[i].Rect = drawFitted(canvas, d.Image, x, y, cellW, cellH)
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	shadow := &imaging.TextShadow{Color: color.NRGBA{A: 128}, Blur: shadowBlur}
	if err := imaging.DrawText(canvas, opts.Title, imaging.Bold, titleSize, white,
		image.Pt(size/2, titleBaseline), imaging.AnchorBaseline, shadow); err != nil {
		return nil, err
	}
	subtitle := Subtitle(opts.PhotoCount, opts.Date, opts.DateFormat)
	if err := imaging.DrawText(canvas, subtitle, imaging.Regular, subtitleSize, white,
		image.Pt(size/2, size-subtitleFromEdge), imaging.AnchorBaseline, shadow); err != nil {
		return nil, err
	}
	return result, nil
}

func Subtitle(count int, date time.Time, layout string) string {
	return fmt.Sprintf("%d Photos • %s", count, date.Format(layout))
}

// FitRect is the largest rectangle with the photo's aspect ratio inside the
// cell, inset by photoInset on the constraining axis and centred on the
// other.
func FitRect(photoW, photoH int, x, y, cellW, cellH float64) (dx, dy, dw, dh float64) {
	photoAspect := float64(photoW) / float64(photoH)
	cellAspect := cellW / cellH
	if photoAspect > cellAspect {
		dw = cellW - 2*photoInset
		dh = dw / photoAspect
		return x + photoInset, y + (cellH-dh)/2, dw, dh
	}
	dh = cellH - 2*photoInset
	dw = dh * photoAspect
	return x + (cellW-dw)/2, y + photoInset, dw, dh
}

func drawFitted(dst *image.RGBA, src *image.RGBA, x, y, cellW, cellH float64) image.Rectangle {
	b := src.Bounds()
	dx, dy, dw, dh := FitRect(b.Dx(), b.Dy(), x, y, cellW, cellH)
	w, h := int(math.Round(dw)), int(math.Round(dh))
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	scaled := resize.Resize(uint(w), uint(h), src, resize.Lanczos3)
	at := image.Pt(int(math.Round(dx)), int(math.Round(dy)))
	r := image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}
	draw.Draw(dst, r, scaled, scaled.Bounds().Min, draw.Over)
	return r
}

// fillDiagonalGradient paints a linear gradient from the top-left corner to
// the bottom-right corner.
func fillDiagonalGradient(dst *image.RGBA, from, to color.NRGBA) {
	b := dst.Bounds()
	span := float64(b.Dx() + b.Dy() - 2)
	if span <= 0 {
		span = 1
	}
	lerp := func(a, b uint8, t float64) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := float64(x-b.Min.X+y-b.Min.Y) / span
			dst.SetRGBA(x, y, color.RGBA{
				R: lerp(from.R, to.R, t),
				G: lerp(from.G, to.G, t),
				B: lerp(from.B, to.B, t),
				A: 255,
			})
		}
	}
}

// strokeRect draws an outline of the given width centred on the rectangle
// path (x, y, w, h).
func strokeRect(dst *image.RGBA, x, y, w, h float64, width int, c color.RGBA) {
	half := float64(width) / 2
	outer := image.Rect(
		int(math.Round(x-half)), int(math.Round(y-half)),
		int(math.Round(x+w+half)), int(math.Round(y+h+half)),
	)
	inner := image.Rect(
		int(math.Round(x+half)), int(math.Round(y+half)),
		int(math.Round(x+w-half)), int(math.Round(y+h-half)),
	)
	src := image.NewUniform(c)
	for _, band := range []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y),
		image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y),
	} {
		draw.Draw(dst, band.Intersect(dst.Bounds()), src, image.Point{}, draw.Src)
	}
}
