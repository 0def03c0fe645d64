package camera

import (
	"errors"
	"image"
	"photobooth/internal/frame"
)

var (
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrNotFound         = errors.New("camera not found")
	ErrBusy             = errors.New("camera is in use by another application")
	ErrInactive         = errors.New("camera is not active")
)

// Source is a live video feed.
type Source interface {
	Start(facing frame.Facing) error
	Stop()
	IsActive() bool
	Facing() frame.Facing
	CurrentFrame() (*image.RGBA, error)
}

// Describe turns an acquisition error into a message for the user.
func Describe(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Camera permission denied. Allow camera access in your settings."
	case errors.Is(err, ErrNotFound):
		return "No camera was found on this device."
	case errors.Is(err, ErrBusy):
		return "The camera is being used by another application."
	case err == nil:
		return ""
	default:
		return "Unable to access the camera: " + err.Error()
	}
}
