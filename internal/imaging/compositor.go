package imaging

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Placement is a sticker as the compositor sees it: X and Y are percentages
// of the image size, Size is the glyph pixel size, Rotation is in degrees.
type Placement struct {
	Symbol   string
	X, Y     float64
	Size     float64
	Rotation float64
}

var stickerInk = color.Black

// Render draws base, then every placement in order. base is never modified,
// so repeated calls with the same inputs give identical output.
func Render(base *image.RGBA, placements []Placement) (*image.RGBA, error) {
	dst := Clone(base)
	w, h := float64(dst.Rect.Dx()), float64(dst.Rect.Dy())
	for _, p := range placements {
		if p.Size <= 0 || p.Symbol == "" {
			continue
		}
		glyph, err := GlyphImage(p.Symbol, Regular, p.Size, stickerInk)
		if err != nil {
			return nil, err
		}
		drawRotated(dst, glyph, p.X/100*w, p.Y/100*h, p.Rotation)
	}
	return dst, nil
}

// drawRotated composites src centred on (px,py), rotated clockwise by deg
// about its own centre.
func drawRotated(dst *image.RGBA, src *image.RGBA, px, py, deg float64) {
	cx, cy := float64(src.Rect.Dx())/2, float64(src.Rect.Dy())/2
	if math.Mod(deg, 360) == 0 {
		at := image.Pt(int(math.Round(px-cx)), int(math.Round(py-cy)))
		xdraw.Draw(dst, src.Bounds().Add(at), src, image.Point{}, xdraw.Over)
		return
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	m := f64.Aff3{
		cos, -sin, px - (cos*cx - sin*cy),
		sin, cos, py - (sin*cx + cos*cy),
	}
	xdraw.BiLinear.Transform(dst, m, src, src.Bounds(), xdraw.Over, nil)
}
