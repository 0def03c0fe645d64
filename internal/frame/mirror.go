package frame

import (
	"errors"
	"fmt"
)

var ErrMirrorMode = errors.New("unknown mirror mode")

type MirrorMode string

const (
	MirrorAuto MirrorMode = "auto"
	MirrorOn   MirrorMode = "mirror"
	MirrorOff  MirrorMode = "no-mirror"
)

type Facing string

const (
	FacingFront Facing = "front"
	FacingBack  Facing = "back"
)

func ParseMirrorMode(s string) (MirrorMode, error) {
	switch m := MirrorMode(s); m {
	case MirrorAuto, MirrorOn, MirrorOff:
		return m, nil
	}
	return "", fmt.Errorf("%w %q", ErrMirrorMode, s)
}

// ShouldMirror is shared by the preview and the capture path.
func ShouldMirror(mode MirrorMode, facing Facing) bool {
	return mode == MirrorOn || (mode == MirrorAuto && facing == FacingFront)
}

// Next cycles auto -> mirror -> no-mirror -> auto.
func (m MirrorMode) Next() MirrorMode {
	switch m {
	case MirrorAuto:
		return MirrorOn
	case MirrorOn:
		return MirrorOff
	default:
		return MirrorAuto
	}
}

func (m MirrorMode) Label() string {
	switch m {
	case MirrorOn:
		return "ON"
	case MirrorOff:
		return "OFF"
	default:
		return "Auto"
	}
}
