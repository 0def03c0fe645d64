package camera

import (
	"image"
	"image/color"
	"photobooth/internal/frame"
	"sync"
)

// PatternSource generates a moving test pattern. Each frame differs from
// the previous one so captures are distinguishable.
type PatternSource struct {
	mu     sync.Mutex
	width  int
	height int
	active bool
	facing frame.Facing
	frame  int
}

func NewPatternSource(width, height int) *PatternSource {
	return &PatternSource{width: width, height: height, facing: frame.FacingFront}
}

func (s *PatternSource) Start(facing frame.Facing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width <= 0 || s.height <= 0 {
		return ErrNotFound
	}
	s.active = true
	s.facing = facing
	return nil
}

func (s *PatternSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

func (s *PatternSource) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *PatternSource) Facing() frame.Facing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facing
}

func (s *PatternSource) CurrentFrame() (*image.RGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return nil, ErrInactive
	}
	s.frame++
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	shift := s.frame * 16
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x*255/s.width + shift) % 256),
				G: uint8(y * 255 / s.height),
				B: uint8(255 - x*255/s.width),
				A: 255,
			})
		}
	}
	return img, nil
}
