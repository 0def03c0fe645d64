package services

import (
	"context"
	"fmt"
	"photobooth/internal/collage"
	"photobooth/internal/frame"
	"photobooth/internal/imaging"
	"photobooth/internal/models"
	"photobooth/internal/notify"
	"photobooth/internal/providers"
	"time"

	"github.com/google/uuid"
)

const pngContentType = "image/png"

// File is a downloadable artifact.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type PhotoView struct {
	Index      int          `json:"index"`
	CapturedAt time.Time    `json:"capturedAt"`
	Stickers   int          `json:"stickers"`
	Enhanced   bool         `json:"enhanced"`
	Edited     bool         `json:"edited"`
	Revision   uint64       `json:"revision"`
	Frame      frame.Config `json:"frame"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
}

func (s *PhotoboothService) Photos() []PhotoView {
	s.mu.Lock()
	defer s.mu.Unlock()
	photos := s.machine.Photos()
	out := make([]PhotoView, len(photos))
	for i, p := range photos {
		b := p.Bounds()
		out[i] = PhotoView{
			Index:      p.Index,
			CapturedAt: p.CapturedAt,
			Stickers:   len(p.Stickers),
			Enhanced:   p.Enhanced,
			Edited:     s.edited.Contains(uint32(p.Index)),
			Revision:   p.Revision,
			Frame:      p.Frame,
			Width:      b.Dx(),
			Height:     b.Dy(),
		}
	}
	return out
}

func (s *PhotoboothService) sessionID() string {
	st := s.machine.Status()
	return st.SessionID
}

// renderLocked returns the PNG of p with its stickers baked in. Renders are
// cached per session, photo and revision, so any edit misses the cache.
func (s *PhotoboothService) renderLocked(p *models.Photo) ([]byte, error) {
	key := fmt.Sprintf("png:%s:%d:%d", s.sessionID(), p.Index, p.Revision)
	if data, ok := s.cache.Get(key); ok {
		return data, nil
	}
	start := time.Now()
	img, err := p.Render()
	if err != nil {
		return nil, err
	}
	data, err := imaging.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveRenderDuration("photo", time.Since(start))
	s.cache.Set(key, data)
	return data, nil
}

// PhotoPNG is the full-size rendered photo.
func (s *PhotoboothService) PhotoPNG(i int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.photoLocked(i)
	if err != nil {
		return nil, err
	}
	return s.renderLocked(p)
}

// Preview is the rendered photo scaled to fit maxW x maxH.
func (s *PhotoboothService) Preview(i, maxW, maxH int) ([]byte, error) {
	if maxW <= 0 || maxH <= 0 {
		return nil, fmt.Errorf("preview size must be positive, got %dx%d", maxW, maxH)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.photoLocked(i)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("thumb:%s:%d:%d:%dx%d", s.sessionID(), p.Index, p.Revision, maxW, maxH)
	if data, ok := s.cache.Get(key); ok {
		return data, nil
	}
	start := time.Now()
	img, err := p.Render()
	if err != nil {
		return nil, err
	}
	data, err := imaging.EncodePNG(imaging.Thumbnail(img, maxW, maxH))
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveRenderDuration("preview", time.Since(start))
	s.cache.Set(key, data)
	return data, nil
}

// EditorPreview renders the photo currently open in the editor.
func (s *PhotoboothService) EditorPreview() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.editingLocked()
	if err != nil {
		return nil, err
	}
	return s.renderLocked(p)
}

func (s *PhotoboothService) ExportPhoto(i int) (File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.photoLocked(i)
	if err != nil {
		return File{}, err
	}
	data, err := s.renderLocked(p)
	if err != nil {
		s.logger.Errorf(providers.TypeEditor, "Export of photo %d failed: %s", i, err)
		return File{}, err
	}
	return File{Name: p.ExportName(), ContentType: pngContentType, Data: data}, nil
}

// ExportCollage composes the session photos with the current layout and
// frame colour.
func (s *PhotoboothService) ExportCollage(ctx context.Context) (File, error) {
	s.mu.Lock()
	photos := s.machine.Photos()
	if len(photos) == 0 {
		s.mu.Unlock()
		s.notifier.Notify("No photos have been taken yet", notify.SeverityWarning)
		return File{}, ErrNoPhotos
	}
	settings := s.settings
	rows, cols := settings.Layout.Grid()
	cells := photos[:min(len(photos), rows*cols)]
	blobs := make([][]byte, 0, len(cells))
	for _, p := range cells {
		data, err := s.renderLocked(p)
		if err != nil {
			s.logger.Warnf(providers.TypeEditor, "Photo %d left out of collage: %s", p.Index, err)
			data = nil
		}
		blobs = append(blobs, data)
	}
	s.mu.Unlock()

	s.notifier.Notify("Creating collage...", notify.SeverityInfo)
	start := time.Now()
	now := s.clock.Now()
	res, err := collage.Build(ctx, blobs, collage.Options{
		Size:       s.conf.Collage.Size,
		Padding:    s.conf.Collage.Padding,
		Title:      s.conf.Collage.Title,
		DateFormat: s.conf.Collage.DateFormat,
		Layout:     settings.Layout,
		FrameColor: settings.Frame.Color,
		PhotoCount: len(photos),
		Date:       now,
		Workers:    s.conf.Collage.Workers,
	})
	if err != nil {
		s.logger.Errorf(providers.TypeEditor, "Collage failed: %s", err)
		s.notifier.Notify("Collage could not be created", notify.SeverityError)
		return File{}, err
	}
	for _, c := range res.Cells {
		if c.Err != nil {
			s.logger.Warnf(providers.TypeEditor, "Collage cell %d skipped: %s", c.Index, c.Err)
		}
	}
	data, err := imaging.EncodePNG(res.Image)
	if err != nil {
		return File{}, err
	}
	s.metrics.ObserveRenderDuration("collage", time.Since(start))
	s.notifier.Notify("Collage created!", notify.SeveritySuccess)
	return File{
		Name:        fmt.Sprintf("photobooth-collage-%d.png", now.UnixMilli()),
		ContentType: pngContentType,
		Data:        data,
	}, nil
}

// SaveAllPhotos stores a copy of every photo of the session as a session
// record. Only the newest records are kept.
func (s *PhotoboothService) SaveAllPhotos() (models.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.machine.Session()
	if !ok || len(cur.Photos) == 0 {
		s.notifier.Notify("No photos have been taken yet", notify.SeverityWarning)
		return models.SessionRecord{}, ErrNoPhotos
	}

	record := models.SessionRecord{
		ID:          uuid.NewString(),
		SessionID:   cur.ID,
		Date:        s.clock.Now(),
		TotalPhotos: len(cur.Photos),
		Layout:      s.settings.Layout,
		Frame:       s.settings.Frame,
		Photos:      make([]models.SavedPhoto, 0, len(cur.Photos)),
	}
	for _, p := range cur.Photos {
		data, err := s.renderLocked(p)
		if err != nil {
			s.notifier.Notify("Failed to save photos", notify.SeverityError)
			return models.SessionRecord{}, err
		}
		record.Photos = append(record.Photos, models.SavedPhoto{
			Index:      p.Index,
			CapturedAt: p.CapturedAt,
			Stickers:   append([]models.Sticker{}, p.Stickers...),
			Frame:      p.Frame,
			PNG:        append([]byte(nil), data...),
		})
	}
	s.store.AppendSessionRecord(record)
	if err := s.scheduler.Persist(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Saved session %s not persisted: %s", record.ID, err)
	}
	s.notifier.Notify(fmt.Sprintf("%d photos saved", len(record.Photos)), notify.SeveritySuccess)
	return record, nil
}
