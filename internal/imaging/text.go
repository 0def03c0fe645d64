package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type FontWeight int

const (
	Regular FontWeight = iota
	Bold
)

type faceKey struct {
	weight FontWeight
	size   float64
}

var (
	fontsOnce sync.Once
	fonts     map[FontWeight]*opentype.Font
	fontsErr  error

	facesMu sync.Mutex
	faces   = make(map[faceKey]font.Face)
)

func loadFonts() {
	fonts = make(map[FontWeight]*opentype.Font, 2)
	for w, ttf := range map[FontWeight][]byte{Regular: goregular.TTF, Bold: gobold.TTF} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			fontsErr = fmt.Errorf("parse font: %w", err)
			return
		}
		fonts[w] = f
	}
}

// Face returns a cached font face for the given pixel size.
func Face(weight FontWeight, size float64) (font.Face, error) {
	fontsOnce.Do(loadFonts)
	if fontsErr != nil {
		return nil, fontsErr
	}
	key := faceKey{weight: weight, size: size}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[key]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fonts[weight], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	faces[key] = f
	return f, nil
}

// GlyphImage renders s onto a transparent image tightly fitting its ink.
func GlyphImage(s string, weight FontWeight, size float64, col color.Color) (*image.RGBA, error) {
	face, err := Face(weight, size)
	if err != nil {
		return nil, err
	}
	facesMu.Lock()
	defer facesMu.Unlock()

	bounds, _ := font.BoundString(face, s)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		w, h = int(math.Ceil(size)), int(math.Ceil(size))
		minX, minY = 0, -h
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(-minX, -minY),
	}
	d.DrawString(s)
	return dst, nil
}

// TextAnchor positions text relative to a point.
type TextAnchor int

const (
	// AnchorCenter centres the ink box on the point.
	AnchorCenter TextAnchor = iota
	// AnchorBaseline centres horizontally and puts the baseline on the point.
	AnchorBaseline
)

// DrawText draws s onto dst with an optional drop shadow.
func DrawText(dst *image.RGBA, s string, weight FontWeight, size float64, col color.Color, at image.Point, anchor TextAnchor, shadow *TextShadow) error {
	face, err := Face(weight, size)
	if err != nil {
		return err
	}
	facesMu.Lock()
	bounds, advance := font.BoundString(face, s)
	facesMu.Unlock()

	var origin fixed.Point26_6
	switch anchor {
	case AnchorBaseline:
		origin = fixed.P(at.X-advance.Round()/2, at.Y)
	default:
		cx := (bounds.Min.X + bounds.Max.X) / 2
		cy := (bounds.Min.Y + bounds.Max.Y) / 2
		origin = fixed.Point26_6{X: fixed.I(at.X) - cx, Y: fixed.I(at.Y) - cy}
	}

	if shadow != nil {
		stamp := shadow.stampColor()
		for _, off := range shadow.offsets() {
			drawString(dst, face, s, stamp, origin.Add(off))
		}
	}
	drawString(dst, face, s, col, origin)
	return nil
}

func drawString(dst *image.RGBA, face font.Face, s string, col color.Color, dot fixed.Point26_6) {
	facesMu.Lock()
	defer facesMu.Unlock()
	d := font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face, Dot: dot}
	d.DrawString(s)
}

// TextShadow approximates a blurred shadow by stamping the text at a disc
// of offsets, each stamp translucent enough that the overlap at the centre
// reaches the requested alpha.
type TextShadow struct {
	Color color.NRGBA
	Blur  int
}

func (s *TextShadow) offsets() []fixed.Point26_6 {
	if s.Blur <= 0 {
		return []fixed.Point26_6{{}}
	}
	var out []fixed.Point26_6
	step := max(1, s.Blur/3)
	for dy := -s.Blur; dy <= s.Blur; dy += step {
		for dx := -s.Blur; dx <= s.Blur; dx += step {
			if dx*dx+dy*dy <= s.Blur*s.Blur {
				out = append(out, fixed.P(dx, dy))
			}
		}
	}
	return out
}

func (s *TextShadow) stampColor() color.NRGBA {
	n := float64(len(s.offsets()))
	target := float64(s.Color.A) / 255
	a := 1 - math.Pow(1-target, 1/n)
	c := s.Color
	c.A = uint8(math.Max(1, math.Round(a*255)))
	return c
}
