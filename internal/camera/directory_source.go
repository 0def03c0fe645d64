package camera

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"photobooth/internal/frame"
	"photobooth/internal/imaging"
	"sort"
	"strings"
	"sync"
)

var stillExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// DirectorySource replays still images from a directory as the live feed,
// cycling through them in name order.
type DirectorySource struct {
	mu     sync.Mutex
	dir    string
	files  []string
	next   int
	active bool
	facing frame.Facing
}

func NewDirectorySource(dir string) *DirectorySource {
	return &DirectorySource{dir: dir, facing: frame.FacingFront}
}

func (s *DirectorySource) Start(facing frame.Facing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return ErrNotFound
		case os.IsPermission(err):
			return ErrPermissionDenied
		}
		return fmt.Errorf("read camera dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !stillExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files = append(files, filepath.Join(s.dir, e.Name()))
	}
	if len(files) == 0 {
		return ErrNotFound
	}
	sort.Strings(files)

	s.files = files
	s.next = 0
	s.active = true
	s.facing = facing
	return nil
}

func (s *DirectorySource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

func (s *DirectorySource) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *DirectorySource) Facing() frame.Facing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facing
}

func (s *DirectorySource) CurrentFrame() (*image.RGBA, error) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return nil, ErrInactive
	}
	path := s.files[s.next%len(s.files)]
	s.next++
	s.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", filepath.Base(path), err)
	}
	return imaging.Clone(img), nil
}
