package frame

import (
	"fmt"
	"strings"
)

type BorderStyle string

const (
	StyleSolid  BorderStyle = "solid"
	StyleDashed BorderStyle = "dashed"
	StyleDotted BorderStyle = "dotted"
	StyleDouble BorderStyle = "double"
	StyleGroove BorderStyle = "groove"
)

const (
	TypeClassic = "classic"
	TypeRoyal   = "royal"
	TypeHeart   = "heart"
	TypeFloral  = "floral"
	TypeDiamond = "diamond"
)

const defaultRadiusPx = 15

// Config is the user-facing frame selection. It is snapshotted into every
// captured photo.
type Config struct {
	Type      string `json:"type"`
	Color     string `json:"color"`
	Thickness int    `json:"thickness"`
	Opacity   int    `json:"opacity"`
	Style     string `json:"style"`
}

type Border struct {
	Width int         `json:"width"`
	Style BorderStyle `json:"style"`
	Color RGBA        `json:"color"`
}

type Shadow struct {
	Inset  bool    `json:"inset"`
	Blur   float64 `json:"blur"`
	Spread float64 `json:"spread"`
	Color  RGBA    `json:"color"`
}

// Pattern is a repeating diagonal border image.
type Pattern struct {
	AngleDeg int    `json:"angle"`
	Color    string `json:"color"`
	PeriodPx int    `json:"period"`
	Slice    int    `json:"slice"`
}

// Overlay describes how a frame is drawn over the preview or a photo.
type Overlay struct {
	Border   *Border  `json:"border,omitempty"`
	Radius   string   `json:"radius"`
	Circular bool     `json:"circular"`
	Shadow   *Shadow  `json:"shadow,omitempty"`
	Pattern  *Pattern `json:"pattern,omitempty"`
}

func IsBorderStyle(s string) bool {
	switch BorderStyle(s) {
	case StyleSolid, StyleDashed, StyleDotted, StyleDouble, StyleGroove:
		return true
	}
	return false
}

// Decorate maps a frame configuration to its overlay. It has no side
// effects; callers recompute it whenever any field changes.
func Decorate(cfg Config) (Overlay, error) {
	ov := Overlay{Radius: fmt.Sprintf("%dpx", defaultRadiusPx)}
	col, err := HexToRGBA(cfg.Color, float64(cfg.Opacity)/100)
	if err != nil {
		return ov, err
	}

	if IsBorderStyle(cfg.Style) {
		ov.Border = &Border{Width: cfg.Thickness, Style: BorderStyle(cfg.Style), Color: col}
	}

	switch cfg.Type {
	case TypeRoyal:
		ov.Shadow = &Shadow{
			Inset:  true,
			Spread: float64(cfg.Thickness) / 2,
			Color:  RGBA{R: 255, G: 215, B: 0, A: 0.3},
		}
	case TypeHeart:
		ov.Radius = "50%"
		ov.Circular = true
	case TypeFloral:
		ov.Shadow = &Shadow{Blur: 20, Color: col}
	case TypeDiamond:
		ov.Pattern = &Pattern{AngleDeg: 45, Color: cfg.Color, PeriodPx: 10, Slice: 30}
	}
	return ov, nil
}

// CSS renders the overlay as CSS declarations.
func (o Overlay) CSS() string {
	var b strings.Builder
	if o.Border != nil {
		fmt.Fprintf(&b, "border: %dpx %s %s; ", o.Border.Width, o.Border.Style, o.Border.Color)
	} else {
		b.WriteString("border: none; ")
	}
	fmt.Fprintf(&b, "border-radius: %s;", o.Radius)
	if o.Shadow != nil {
		if o.Shadow.Inset {
			fmt.Fprintf(&b, " box-shadow: 0 0 0 %gpx %s inset;", o.Shadow.Spread, o.Shadow.Color)
		} else {
			fmt.Fprintf(&b, " box-shadow: 0 0 %gpx %s;", o.Shadow.Blur, o.Shadow.Color)
		}
	}
	if o.Pattern != nil {
		fmt.Fprintf(&b, " border-image: repeating-linear-gradient(%ddeg, %s, transparent %dpx) %d;",
			o.Pattern.AngleDeg, o.Pattern.Color, o.Pattern.PeriodPx, o.Pattern.Slice)
	}
	return b.String()
}
