package models

import (
	"errors"
	"fmt"
	"image"
	"photobooth/internal/frame"
	"photobooth/internal/imaging"
	"time"
)

var ErrStickerIndex = errors.New("sticker index out of range")

// Photo is one capture. The pristine layer is never written after capture;
// base is pristine plus enhancement; stickers are only baked by Render.
type Photo struct {
	Index      int          `json:"index"`
	CapturedAt time.Time    `json:"capturedAt"`
	Stickers   []Sticker    `json:"stickers"`
	Frame      frame.Config `json:"frame"`
	Enhanced   bool         `json:"enhanced"`
	Revision   uint64       `json:"revision"`

	pristine *image.RGBA
	base     *image.RGBA
}

func NewPhoto(index int, img *image.RGBA, capturedAt time.Time, fc frame.Config) *Photo {
	return &Photo{
		Index:      index,
		CapturedAt: capturedAt,
		Stickers:   []Sticker{},
		Frame:      fc,
		pristine:   img,
		base:       imaging.Clone(img),
	}
}

func (p *Photo) Pristine() *image.RGBA { return p.pristine }

func (p *Photo) Base() *image.RGBA { return p.base }

func (p *Photo) Bounds() image.Rectangle { return p.pristine.Bounds() }

func (p *Photo) touch() { p.Revision++ }

func (p *Photo) AddSticker(symbol string) int {
	p.Stickers = append(p.Stickers, NewSticker(symbol))
	p.touch()
	return len(p.Stickers) - 1
}

func (p *Photo) sticker(i int) (*Sticker, error) {
	if i < 0 || i >= len(p.Stickers) {
		return nil, fmt.Errorf("%w: %d", ErrStickerIndex, i)
	}
	return &p.Stickers[i], nil
}

// Reposition clamps both coordinates to [0,100].
func (p *Photo) Reposition(i int, x, y float64) error {
	s, err := p.sticker(i)
	if err != nil {
		return err
	}
	s.Position = Position{X: ClampPercent(x), Y: ClampPercent(y)}
	p.touch()
	return nil
}

func (p *Photo) BeginDrag(i int) (DragState, error) {
	s, err := p.sticker(i)
	if err != nil {
		return DragState{}, err
	}
	return DragState{StickerIndex: i, Origin: s.Position}, nil
}

func (p *Photo) Rotate(i int, deg float64) error {
	s, err := p.sticker(i)
	if err != nil {
		return err
	}
	s.Rotation = deg
	p.touch()
	return nil
}

func (p *Photo) Resize(i int, size float64) error {
	if size <= 0 {
		return fmt.Errorf("sticker size must be positive, got %v", size)
	}
	s, err := p.sticker(i)
	if err != nil {
		return err
	}
	s.Size = size
	p.touch()
	return nil
}

func (p *Photo) RemoveSticker(i int) error {
	if _, err := p.sticker(i); err != nil {
		return err
	}
	p.Stickers = append(p.Stickers[:i], p.Stickers[i+1:]...)
	p.touch()
	return nil
}

// SetStickers replaces the sticker list with a copy of src.
func (p *Photo) SetStickers(src []Sticker) {
	p.Stickers = append(make([]Sticker, 0, len(src)), src...)
	p.touch()
}

// Reset drops every sticker and enhancement; base becomes a bit-identical
// copy of the pristine capture.
func (p *Photo) Reset() {
	p.Stickers = []Sticker{}
	p.base = imaging.Clone(p.pristine)
	p.Enhanced = false
	p.touch()
}

// AutoEnhance replaces the base layer with its enhanced version.
func (p *Photo) AutoEnhance() {
	p.base = imaging.AutoEnhance(p.base, imaging.MeanLuminance(p.pristine))
	p.Enhanced = true
	p.touch()
}

func (p *Photo) Placements() []imaging.Placement {
	out := make([]imaging.Placement, len(p.Stickers))
	for i, s := range p.Stickers {
		out[i] = imaging.Placement{
			Symbol:   s.Symbol,
			X:        s.Position.X,
			Y:        s.Position.Y,
			Size:     s.Size,
			Rotation: s.Rotation,
		}
	}
	return out
}

// Render bakes the stickers over the base layer into a new image.
func (p *Photo) Render() (*image.RGBA, error) {
	return imaging.Render(p.base, p.Placements())
}

// ExportName is "photobooth-photo-<n>-<capture unixms>.png" with a 1-based n.
func (p *Photo) ExportName() string {
	return fmt.Sprintf("photobooth-photo-%d-%d.png", p.Index+1, p.CapturedAt.UnixMilli())
}
