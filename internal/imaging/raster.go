package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/nfnt/resize"
)

var ErrEmptyImage = errors.New("empty image")

// Clone returns a deep copy of src as RGBA.
func Clone(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == dst.Stride {
		copy(dst.Pix, rgba.Pix)
		return dst
	}
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Mirror flips src horizontally into a new image.
func Mirror(src *image.RGBA) *image.RGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srow := src.Pix[src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y):]
		drow := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			copy(drow[(w-1-x)*4:(w-x)*4], srow[x*4:x*4+4])
		}
	}
	return dst
}

func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodePNG(data []byte) (*image.RGBA, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("png decode: %w", err)
	}
	return Clone(img), nil
}

// Thumbnail scales img down to fit within maxW x maxH, keeping aspect ratio.
func Thumbnail(img image.Image, maxW, maxH int) image.Image {
	return resize.Thumbnail(uint(maxW), uint(maxH), img, resize.Lanczos3)
}
