package services

import (
	"context"
	"photobooth/internal/frame"
	"photobooth/internal/models"
	"photobooth/internal/session"
)

type PhotoboothServiceInterface interface {
	CameraState() CameraState
	StartCamera() (CameraState, error)
	StopCamera() CameraState
	ToggleCamera() (CameraState, error)
	FlipCamera() (CameraState, error)
	SetMirrorMode(mode string) (CameraState, error)
	CycleMirrorMode() CameraState

	Settings() models.Settings
	UpdateSettings(patch SettingsPatch) (models.Settings, error)
	Overlay() (frame.Overlay, error)

	StartSession() (models.Session, error)
	AbortSession() error
	NewSession() error
	Status() session.Status
	Stats() (SessionSummary, error)
	History() []models.HistoryRecord
	SavedSessions() []models.SessionRecord
	ShareText() (string, error)

	EditorState() EditorState
	OpenEditor(i int) (EditorState, error)
	CloseEditor() EditorState
	AddSticker(symbol string) (EditorState, error)
	MoveSticker(i int, x, y float64) (EditorState, error)
	BeginDrag(i int) (EditorState, error)
	DragTo(dxPx, dyPx, widthPx, heightPx float64) (EditorState, error)
	EndDrag() EditorState
	RotateSticker(i int, deg float64) (EditorState, error)
	ResizeSticker(i int, size float64) (EditorState, error)
	RemoveSticker(i int) (EditorState, error)
	ResetEditor() (EditorState, error)
	AutoEnhance() (EditorState, error)
	SaveEdited() (EditorState, error)
	ApplyStickersToAll() (int, error)
	EditedPhotos() []uint32

	Photos() []PhotoView
	PhotoPNG(i int) ([]byte, error)
	Preview(i, maxW, maxH int) ([]byte, error)
	EditorPreview() ([]byte, error)
	ExportPhoto(i int) (File, error)
	ExportCollage(ctx context.Context) (File, error)
	SaveAllPhotos() (models.SessionRecord, error)
}

var _ PhotoboothServiceInterface = (*PhotoboothService)(nil)
