package imaging

import (
	"image"
	"math"
)

const (
	targetLuminance = 128.0
	brightnessGain  = 0.3
	contrastFactor  = 1.1
)

// MeanLuminance is the mean of (R+G+B)/3 over all pixels.
func MeanLuminance(img *image.RGBA) float64 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return 0
	}
	var sum float64
	for y := 0; y < h; y++ {
		row := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):]
		for x := 0; x < w; x++ {
			p := row[x*4:]
			sum += (float64(p[0]) + float64(p[1]) + float64(p[2])) / 3
		}
	}
	return sum / float64(w*h)
}

// AutoEnhance shifts brightness toward mid-gray by an amount derived from
// mean, then stretches contrast 1.1x around 128. Alpha is untouched.
// Returns a new image.
func AutoEnhance(src *image.RGBA, mean float64) *image.RGBA {
	dst := Clone(src)
	delta := (targetLuminance - mean) * brightnessGain

	var lut [256]uint8
	for v := range lut {
		out := ((float64(v)+delta)-targetLuminance)*contrastFactor + targetLuminance
		lut[v] = uint8(math.Max(0, math.Min(255, math.Round(out))))
	}

	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = lut[dst.Pix[i]]
		dst.Pix[i+1] = lut[dst.Pix[i+1]]
		dst.Pix[i+2] = lut[dst.Pix[i+2]]
	}
	return dst
}
