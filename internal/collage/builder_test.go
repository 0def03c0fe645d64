package collage

import (
	"context"
	"image"
	"image/color"
	"photobooth/internal/imaging"
	"photobooth/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	return data
}

var red = color.RGBA{R: 255, A: 255}

func baseOptions(layout models.Layout) Options {
	return Options{
		Size:       400,
		Padding:    50,
		Layout:     layout,
		FrameColor: "#000080",
		PhotoCount: 4,
		Date:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuild_NoPhotos(t *testing.T) {
	_, err := Build(context.Background(), nil, baseOptions(models.Layout2x2))
	assert.ErrorIs(t, err, ErrNoPhotos)
}

func TestBuild_BadFrameColor(t *testing.T) {
	opts := baseOptions(models.Layout2x2)
	opts.FrameColor = "navy"
	_, err := Build(context.Background(), [][]byte{solidPNG(t, 4, 4, red)}, opts)
	assert.Error(t, err)
}

func TestBuild_FirstCellsOnly(t *testing.T) {
	blobs := make([][]byte, 6)
	for i := range blobs {
		blobs[i] = solidPNG(t, 40, 30, red)
	}
	res, err := Build(context.Background(), blobs, baseOptions(models.Layout2x2))
	require.NoError(t, err)

	assert.Len(t, res.Cells, 4)
	assert.Equal(t, 4, res.Drawn())
	assert.Equal(t, image.Rect(0, 0, 400, 400), res.Image.Bounds())
}

func TestBuild_FailedCellSkipped(t *testing.T) {
	blobs := [][]byte{solidPNG(t, 40, 40, red), []byte("broken"), solidPNG(t, 40, 40, red)}
	res, err := Build(context.Background(), blobs, baseOptions(models.Layout2x2))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Drawn())
	assert.Error(t, res.Cells[1].Err)
	assert.True(t, res.Cells[1].Rect.Empty())

	// centre of the failed cell keeps the background gradient
	c := res.Image.RGBAAt(300, 150)
	assert.NotEqual(t, uint8(255), c.R)
}

func TestBuild_PhotoDrawnInsideCell(t *testing.T) {
	res, err := Build(context.Background(), [][]byte{solidPNG(t, 100, 100, red)}, baseOptions(models.LayoutSingle))
	require.NoError(t, err)

	// single cell is 300x300 at (50,50); square photo fits with a 10px inset
	assert.Equal(t, image.Rect(60, 60, 340, 340), res.Cells[0].Rect)
	c := res.Image.RGBAAt(200, 200)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
}

func TestBuild_UnknownLayoutIsSingle(t *testing.T) {
	blobs := [][]byte{solidPNG(t, 10, 10, red), solidPNG(t, 10, 10, red)}
	res, err := Build(context.Background(), blobs, baseOptions(models.Layout("5x5")))
	require.NoError(t, err)
	assert.Len(t, res.Cells, 1)
}

func TestBuild_GradientCorners(t *testing.T) {
	res, err := Build(context.Background(), [][]byte{solidPNG(t, 10, 10, red)}, baseOptions(models.Layout4x4))
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 128, A: 255}, res.Image.RGBAAt(0, 0))
	bottomRight := res.Image.RGBAAt(399, 399)
	// #000080 lightened by 30% adds 77 per channel
	assert.Equal(t, color.RGBA{R: 77, G: 77, B: 205, A: 255}, bottomRight)
}

func TestBuild_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, [][]byte{solidPNG(t, 10, 10, red)}, baseOptions(models.Layout2x2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFitRect(t *testing.T) {
	// wide photo in a square cell: width-constrained
	x, y, w, h := FitRect(200, 100, 0, 0, 100, 100)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 80, w, 1e-9)
	assert.InDelta(t, 40, h, 1e-9)
	assert.InDelta(t, 30, y, 1e-9)

	// tall photo: height-constrained
	x, y, w, h = FitRect(100, 200, 0, 0, 100, 100)
	assert.InDelta(t, 80, h, 1e-9)
	assert.InDelta(t, 40, w, 1e-9)
	assert.InDelta(t, 30, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
}

func TestSubtitle(t *testing.T) {
	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "4 Photos • 1/2/2026", Subtitle(4, date, DefaultDateFormat))
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, DefaultSize, o.Size)
	assert.Equal(t, DefaultPadding, o.Padding)
	assert.Equal(t, DefaultTitle, o.Title)
	assert.False(t, o.Date.IsZero())
}
