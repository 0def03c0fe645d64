package interfaces

import "photobooth/internal/frame"

// MirrorPolicy reports the mirror mode in effect right now.
type MirrorPolicy interface {
	MirrorMode() frame.MirrorMode
}
