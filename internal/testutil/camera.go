package testutil

import (
	"image"
	"image/color"
	"photobooth/internal/camera"
	"photobooth/internal/frame"
	"sync"
)

// FakeSource is a camera.Source producing a left-dark, right-bright frame so
// that mirroring is observable. FailNext makes the next n snapshots fail.
type FakeSource struct {
	mu       sync.Mutex
	active   bool
	facing   frame.Facing
	Width    int
	Height   int
	StartErr error
	FrameErr error
	FailNext int
	Shots    int
}

func NewFakeSource(active bool, facing frame.Facing) *FakeSource {
	return &FakeSource{active: active, facing: facing, Width: 8, Height: 4}
}

func (s *FakeSource) Start(facing frame.Facing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.StartErr != nil {
		return s.StartErr
	}
	s.active = true
	s.facing = facing
	return nil
}

func (s *FakeSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

func (s *FakeSource) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *FakeSource) Facing() frame.Facing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facing
}

func (s *FakeSource) SetFacing(f frame.Facing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facing = f
}

func (s *FakeSource) CurrentFrame() (*image.RGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return nil, camera.ErrInactive
	}
	if s.FailNext > 0 {
		s.FailNext--
		return nil, camera.ErrBusy
	}
	if s.FrameErr != nil {
		return nil, s.FrameErr
	}
	s.Shots++
	return SplitFrame(s.Width, s.Height), nil
}

// SplitFrame is black on the left half and white on the right half.
func SplitFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{A: 255}
			if x >= w/2 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// StaticMirror is a fixed mirror policy.
type StaticMirror frame.MirrorMode

func (m StaticMirror) MirrorMode() frame.MirrorMode { return frame.MirrorMode(m) }
