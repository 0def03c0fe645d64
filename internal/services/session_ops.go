package services

import (
	"errors"
	"fmt"
	"photobooth/internal/models"
	"photobooth/internal/notify"
	"photobooth/internal/providers"
	"photobooth/internal/session"

	"github.com/google/uuid"
)

// StartSession begins a capture session with the current settings. The
// previous session's photos and edits are discarded.
func (s *PhotoboothService) StartSession() (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started, err := s.machine.Start(s.settings.SessionConfig())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrCameraInactive):
			s.notifier.Notify("Activate the camera first", notify.SeverityWarning)
		case errors.Is(err, session.ErrSessionRunning):
			s.notifier.Notify("A session is already running", notify.SeverityWarning)
		default:
			s.notifier.Notify(err.Error(), notify.SeverityError)
		}
		s.logger.Warnf(providers.TypeSession, "Session start rejected: %s", err)
		return models.Session{}, err
	}
	s.closeEditorLocked()
	s.edited.Clear()
	s.saveSettingsLocked()
	return started, nil
}

func (s *PhotoboothService) AbortSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Abort()
}

// NewSession drops the finished session so a fresh one can be configured.
func (s *PhotoboothService) NewSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.machine.Reset(); err != nil {
		return err
	}
	s.closeEditorLocked()
	s.edited.Clear()
	s.notifier.Notify("Ready for a new session", notify.SeverityInfo)
	return nil
}

func (s *PhotoboothService) Status() session.Status {
	return s.machine.Status()
}

type SessionSummary struct {
	models.SessionStats
	SessionID string `json:"sessionId"`
	Total     int    `json:"total"`
	Edited    int    `json:"edited"`
}

func (s *PhotoboothService) Stats() (SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.machine.Session()
	if !ok {
		return SessionSummary{}, ErrNoPhotos
	}
	return SessionSummary{
		SessionStats: cur.Stats(),
		SessionID:    cur.ID,
		Total:        cur.Config.TotalPhotos,
		Edited:       int(s.edited.GetCardinality()),
	}, nil
}

func (s *PhotoboothService) History() []models.HistoryRecord {
	return s.store.History()
}

func (s *PhotoboothService) SavedSessions() []models.SessionRecord {
	return s.store.Sessions()
}

func (s *PhotoboothService) ShareText() (string, error) {
	photos := s.machine.Photos()
	if len(photos) == 0 {
		return "", ErrNoPhotos
	}
	return fmt.Sprintf("Photobooth\n%d photos!", len(photos)), nil
}

// sessionEvents forwards state machine events to the browser and writes the
// history record on completion. It must not take the service lock.
type sessionEvents struct {
	svc *PhotoboothService
}

type countdownEvent struct {
	Remaining int `json:"remaining"`
}

type captureEvent struct {
	Index int `json:"index"`
	Taken int `json:"taken"`
	Total int `json:"total"`
}

type failureEvent struct {
	Attempt int    `json:"attempt"`
	Total   int    `json:"total"`
	Error   string `json:"error"`
}

type completionEvent struct {
	SessionID string              `json:"sessionId"`
	Stats     models.SessionStats `json:"stats"`
}

func (e *sessionEvents) SessionStarted(s models.Session) {
	e.svc.notifier.Publish(notify.TypeSessionStarted, s.Config)
	e.svc.notifier.Notify("Photo session started", notify.SeverityInfo)
}

func (e *sessionEvents) Countdown(remaining int) {
	e.svc.notifier.Publish(notify.TypeCountdown, countdownEvent{Remaining: remaining})
}

func (e *sessionEvents) Captured(p *models.Photo, taken, total int) {
	e.svc.notifier.Publish(notify.TypeCaptured, captureEvent{Index: p.Index, Taken: taken, Total: total})
}

func (e *sessionEvents) CaptureFailed(err error, attempt, total int) {
	e.svc.notifier.Publish(notify.TypeCaptureFailed, failureEvent{Attempt: attempt, Total: total, Error: err.Error()})
	e.svc.notifier.Notify(fmt.Sprintf("Photo %d could not be taken", attempt), notify.SeverityError)
}

func (e *sessionEvents) SessionCompleted(s models.Session, stats models.SessionStats) {
	e.svc.store.AppendHistoryRecord(models.HistoryRecord{
		ID:              uuid.NewString(),
		SessionID:       s.ID,
		Date:            s.FinishedAt,
		Photos:          stats.PhotoCount,
		Skipped:         stats.Skipped,
		DurationSeconds: stats.DurationSeconds,
		Quality:         stats.Quality,
		Settings:        s.Config,
	})
	if err := e.svc.scheduler.Persist(); err != nil {
		e.svc.logger.Errorf(providers.TypeSession, "History for session %s not persisted: %s", s.ID, err)
	}
	e.svc.notifier.Publish(notify.TypeCompleted, completionEvent{SessionID: s.ID, Stats: stats})
	e.svc.notifier.Notify(fmt.Sprintf("Session complete! %d photos taken", stats.PhotoCount), notify.SeveritySuccess)
}

func (e *sessionEvents) SessionAborted(s models.Session) {
	e.svc.notifier.Publish(notify.TypeAborted, s.Stats())
	e.svc.notifier.Notify("Photo session aborted", notify.SeverityWarning)
}

// Shutdown aborts a running session and releases the camera.
func (s *PhotoboothService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.machine.Abort(); err == nil {
		s.logger.Warnf(providers.TypeSession, "Session aborted by shutdown")
	}
	s.camera.Stop()
}
