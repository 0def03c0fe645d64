package services

import (
	"fmt"
	"photobooth/internal/models"
	"photobooth/internal/notify"
	"photobooth/internal/providers"
)

// EditorState is what the editor panel shows.
type EditorState struct {
	Open     bool             `json:"open"`
	Index    int              `json:"index"`
	Stickers []models.Sticker `json:"stickers"`
	Enhanced bool             `json:"enhanced"`
	Revision uint64           `json:"revision"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
}

func (s *PhotoboothService) photoLocked(i int) (*models.Photo, error) {
	photos := s.machine.Photos()
	if i < 0 || i >= len(photos) {
		return nil, fmt.Errorf("%w: %d", ErrPhotoIndex, i)
	}
	return photos[i], nil
}

func (s *PhotoboothService) editingLocked() (*models.Photo, error) {
	if s.editing == noPhoto {
		return nil, ErrEditorClosed
	}
	p, err := s.photoLocked(s.editing)
	if err != nil {
		s.closeEditorLocked()
		return nil, ErrEditorClosed
	}
	return p, nil
}

func (s *PhotoboothService) closeEditorLocked() {
	s.editing = noPhoto
	s.drag = nil
}

func (s *PhotoboothService) stateLocked() EditorState {
	p, err := s.editingLocked()
	if err != nil {
		return EditorState{Index: noPhoto, Stickers: []models.Sticker{}}
	}
	b := p.Bounds()
	return EditorState{
		Open:     true,
		Index:    p.Index,
		Stickers: append([]models.Sticker{}, p.Stickers...),
		Enhanced: p.Enhanced,
		Revision: p.Revision,
		Width:    b.Dx(),
		Height:   b.Dy(),
	}
}

func (s *PhotoboothService) EditorState() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// OpenEditor points the editor at photo i. Only one photo is edited at a
// time; opening another one replaces the pointer.
func (s *PhotoboothService) OpenEditor(i int) (EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.photoLocked(i); err != nil {
		return s.stateLocked(), err
	}
	s.editing = i
	s.drag = nil
	s.logger.Debugf(providers.TypeEditor, "Editing photo %d", i)
	return s.stateLocked(), nil
}

func (s *PhotoboothService) CloseEditor() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeEditorLocked()
	return s.stateLocked()
}

// edit runs fn against the photo in the editor and publishes the new state.
func (s *PhotoboothService) edit(fn func(p *models.Photo) error) (EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.editingLocked()
	if err != nil {
		return s.stateLocked(), err
	}
	if err := fn(p); err != nil {
		return s.stateLocked(), err
	}
	st := s.stateLocked()
	s.notifier.Publish(notify.TypeEditorChanged, st)
	return st, nil
}

func (s *PhotoboothService) AddSticker(symbol string) (EditorState, error) {
	if symbol == "" {
		return s.EditorState(), fmt.Errorf("empty sticker symbol")
	}
	return s.edit(func(p *models.Photo) error {
		p.AddSticker(symbol)
		return nil
	})
}

func (s *PhotoboothService) MoveSticker(i int, x, y float64) (EditorState, error) {
	return s.edit(func(p *models.Photo) error {
		return p.Reposition(i, x, y)
	})
}

// BeginDrag records the sticker's position at pointer-down.
func (s *PhotoboothService) BeginDrag(i int) (EditorState, error) {
	return s.edit(func(p *models.Photo) error {
		d, err := p.BeginDrag(i)
		if err != nil {
			return err
		}
		s.drag = &d
		return nil
	})
}

// DragTo moves the dragged sticker to origin + total pointer delta over a
// preview surface of widthPx x heightPx.
func (s *PhotoboothService) DragTo(dxPx, dyPx, widthPx, heightPx float64) (EditorState, error) {
	return s.edit(func(p *models.Photo) error {
		if s.drag == nil {
			return ErrNoDrag
		}
		pos := s.drag.Target(dxPx, dyPx, widthPx, heightPx)
		return p.Reposition(s.drag.StickerIndex, pos.X, pos.Y)
	})
}

func (s *PhotoboothService) EndDrag() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = nil
	return s.stateLocked()
}

func (s *PhotoboothService) RotateSticker(i int, deg float64) (EditorState, error) {
	return s.edit(func(p *models.Photo) error {
		return p.Rotate(i, deg)
	})
}

func (s *PhotoboothService) ResizeSticker(i int, size float64) (EditorState, error) {
	return s.edit(func(p *models.Photo) error {
		return p.Resize(i, size)
	})
}

func (s *PhotoboothService) RemoveSticker(i int) (EditorState, error) {
	return s.edit(func(p *models.Photo) error {
		s.drag = nil
		return p.RemoveSticker(i)
	})
}

// ResetEditor clears stickers and enhancement on the open photo.
func (s *PhotoboothService) ResetEditor() (EditorState, error) {
	st, err := s.edit(func(p *models.Photo) error {
		s.drag = nil
		p.Reset()
		s.edited.Remove(uint32(p.Index))
		return nil
	})
	if err == nil {
		s.notifier.Notify("Photo reset to original", notify.SeverityInfo)
	}
	return st, err
}

func (s *PhotoboothService) AutoEnhance() (EditorState, error) {
	st, err := s.edit(func(p *models.Photo) error {
		p.AutoEnhance()
		return nil
	})
	if err == nil {
		s.notifier.Notify("Photo enhanced", notify.SeveritySuccess)
	}
	return st, err
}

// SaveEdited marks the open photo as edited and closes the editor.
func (s *PhotoboothService) SaveEdited() (EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.editingLocked()
	if err != nil {
		return s.stateLocked(), err
	}
	s.edited.Add(uint32(p.Index))
	s.logger.Infof(providers.TypeEditor, "Photo %d saved with %d stickers", p.Index, len(p.Stickers))
	s.closeEditorLocked()
	s.notifier.Notify("Photo saved", notify.SeveritySuccess)
	return s.stateLocked(), nil
}

// ApplyStickersToAll copies the open photo's stickers onto every other
// photo of the session.
func (s *PhotoboothService) ApplyStickersToAll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, err := s.editingLocked()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range s.machine.Photos() {
		if p == src {
			continue
		}
		p.SetStickers(src.Stickers)
		s.edited.Add(uint32(p.Index))
		n++
	}
	s.edited.Add(uint32(src.Index))
	s.notifier.Notify(fmt.Sprintf("Stickers applied to %d photos", n), notify.SeveritySuccess)
	return n, nil
}

// EditedPhotos lists the indices of photos saved from the editor.
func (s *PhotoboothService) EditedPhotos() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edited.ToArray()
}
