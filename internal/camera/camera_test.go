package camera

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"photobooth/internal/frame"
	"photobooth/internal/imaging"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternSource_Lifecycle(t *testing.T) {
	s := NewPatternSource(32, 24)
	assert.False(t, s.IsActive())
	_, err := s.CurrentFrame()
	assert.ErrorIs(t, err, ErrInactive)

	require.NoError(t, s.Start(frame.FacingBack))
	assert.True(t, s.IsActive())
	assert.Equal(t, frame.FacingBack, s.Facing())

	a, err := s.CurrentFrame()
	require.NoError(t, err)
	b, err := s.CurrentFrame()
	require.NoError(t, err)
	assert.Equal(t, 32, a.Rect.Dx())
	assert.NotEqual(t, a.Pix, b.Pix)

	s.Stop()
	assert.False(t, s.IsActive())
}

func TestPatternSource_ZeroSizeNotFound(t *testing.T) {
	s := NewPatternSource(0, 0)
	assert.ErrorIs(t, s.Start(frame.FacingFront), ErrNotFound)
}

func writePNG(t *testing.T, path string, c color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestDirectorySource_CyclesInOrder(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), color.RGBA{0, 255, 0, 255})
	writePNG(t, filepath.Join(dir, "a.png"), color.RGBA{255, 0, 0, 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	s := NewDirectorySource(dir)
	require.NoError(t, s.Start(frame.FacingFront))

	first, err := s.CurrentFrame()
	require.NoError(t, err)
	second, err := s.CurrentFrame()
	require.NoError(t, err)
	third, err := s.CurrentFrame()
	require.NoError(t, err)

	assert.Equal(t, uint8(255), first.Pix[0])
	assert.Equal(t, uint8(255), second.Pix[1])
	assert.Equal(t, first.Pix, third.Pix)
}

func TestDirectorySource_Missing(t *testing.T) {
	s := NewDirectorySource(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, s.Start(frame.FacingFront), ErrNotFound)
	assert.False(t, s.IsActive())
}

func TestDirectorySource_Empty(t *testing.T) {
	s := NewDirectorySource(t.TempDir())
	assert.ErrorIs(t, s.Start(frame.FacingFront), ErrNotFound)
}

func TestDirectorySource_CorruptFrame(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("nope"), 0644))
	s := NewDirectorySource(dir)
	require.NoError(t, s.Start(frame.FacingFront))
	_, err := s.CurrentFrame()
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.Contains(t, Describe(ErrPermissionDenied), "permission")
	assert.Contains(t, Describe(ErrNotFound), "No camera")
	assert.Contains(t, Describe(ErrBusy), "another application")
	assert.Contains(t, Describe(errors.New("boom")), "boom")
	assert.Empty(t, Describe(nil))
}
