package services

import "errors"

var (
	ErrNoPhotos        = errors.New("no photos have been taken yet")
	ErrPhotoIndex      = errors.New("photo index out of range")
	ErrEditorClosed    = errors.New("no photo is open in the editor")
	ErrNoDrag          = errors.New("no sticker drag in progress")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrSettingsLocked  = errors.New("settings cannot change while a session is running")
)
