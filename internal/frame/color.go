package frame

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
)

var ErrInvalidHex = errors.New("invalid hex color")

// RGBA is a colour with a fractional alpha, as used in CSS rgba().
type RGBA struct {
	R, G, B uint8
	A       float64
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// NRGBA converts to a non-premultiplied image colour.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(c.A) * 255))}
}

func ParseHex(hex string) (color.NRGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// HexToRGBA combines #RRGGBB with alpha in [0,1]. No gamma correction.
func HexToRGBA(hex string, alpha float64) (RGBA, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Lighten adds round(2.55*percent) to every channel, clamping to [0,255].
func Lighten(hex string, percent float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	amt := int(math.Round(2.55 * percent))
	return fmt.Sprintf("#%02x%02x%02x",
		clampChannel(int(c.R)+amt),
		clampChannel(int(c.G)+amt),
		clampChannel(int(c.B)+amt)), nil
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
