package models

import "math"

const (
	DefaultStickerSize = 40
	stickerCenter      = 50
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Sticker struct {
	Symbol   string   `json:"symbol"`
	Position Position `json:"position"`
	Size     float64  `json:"size"`
	Rotation float64  `json:"rotation"`
}

func NewSticker(symbol string) Sticker {
	return Sticker{
		Symbol:   symbol,
		Position: Position{X: stickerCenter, Y: stickerCenter},
		Size:     DefaultStickerSize,
	}
}

// DisplayRotation is the rotation normalized to [0,360). Stored rotation is
// left as given.
func (s Sticker) DisplayRotation() float64 {
	r := math.Mod(s.Rotation, 360)
	if r < 0 {
		r += 360
	}
	return r
}

func ClampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// DragState remembers where a sticker was when the drag began. Every move
// is computed from that origin plus the total pointer delta, so a long drag
// never accumulates rounding drift.
type DragState struct {
	StickerIndex int
	Origin       Position
}

// Target converts a total pointer delta in pixels over a surface of
// widthPx x heightPx into the sticker's new percentage position.
func (d DragState) Target(dxPx, dyPx, widthPx, heightPx float64) Position {
	p := d.Origin
	if widthPx > 0 {
		p.X += dxPx / widthPx * 100
	}
	if heightPx > 0 {
		p.Y += dyPx / heightPx * 100
	}
	return Position{X: ClampPercent(p.X), Y: ClampPercent(p.Y)}
}
