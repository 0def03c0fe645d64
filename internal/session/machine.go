package session

import (
	"errors"
	"fmt"
	"image"
	"photobooth/internal/camera"
	"photobooth/internal/frame"
	"photobooth/internal/imaging"
	"photobooth/internal/models"
	"photobooth/internal/providers"
	"photobooth/internal/session/interfaces"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseCountdown Phase = "countdown"
	PhaseCapturing Phase = "capturing"
	PhaseAdvancing Phase = "advancing"
	PhaseCompleted Phase = "completed"
	PhaseAborted   Phase = "aborted"
)

const (
	TickInterval = time.Second
	AdvancePause = time.Second
)

var (
	ErrSessionRunning = errors.New("a photo session is already running")
	ErrCameraInactive = errors.New("camera is not active")
	ErrNotRunning     = errors.New("no photo session is running")
	ErrInvalidConfig  = errors.New("invalid session configuration")
)

// Observer receives session events in the order they happen. Callbacks run
// outside the machine's lock but must not block for long: the next
// transition waits for them.
type Observer interface {
	SessionStarted(s models.Session)
	Countdown(remaining int)
	Captured(p *models.Photo, taken, total int)
	CaptureFailed(err error, attempt, total int)
	SessionCompleted(s models.Session, stats models.SessionStats)
	SessionAborted(s models.Session)
}

type Status struct {
	SessionID string        `json:"sessionId,omitempty"`
	Phase     Phase         `json:"phase"`
	Status    models.Status `json:"status"`
	Remaining int           `json:"remaining"`
	Taken     int           `json:"taken"`
	Skipped   int           `json:"skipped"`
	Attempts  int           `json:"attempts"`
	Total     int           `json:"total"`
}

// Machine runs the countdown, capture and advance cycle of one session at a
// time. Exactly one timer is pending while a session runs; every scheduled
// callback carries the generation it was scheduled under and is ignored once
// the generation moves on.
type Machine struct {
	mu     sync.Mutex
	emitMu sync.Mutex

	clock    interfaces.Clock
	camera   camera.Source
	mirror   interfaces.MirrorPolicy
	observer Observer
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface

	session   *models.Session
	phase     Phase
	remaining int
	timer     interfaces.Timer
	gen       uint64
	lastShot  time.Time
	pending   []func(Observer)
}

func NewMachine(clock interfaces.Clock, source camera.Source, mirror interfaces.MirrorPolicy, observer Observer, logger providers.Logger, metrics providers.MetricsProviderInterface) *Machine {
	return &Machine{
		clock:    clock,
		camera:   source,
		mirror:   mirror,
		observer: observer,
		logger:   logger,
		metrics:  metrics,
		phase:    PhaseIdle,
	}
}

func (m *Machine) runningLocked() bool {
	switch m.phase {
	case PhaseCountdown, PhaseCapturing, PhaseAdvancing:
		return true
	}
	return false
}

// Start freezes cfg and begins a new session, discarding the previous
// session's photos.
func (m *Machine) Start(cfg models.SessionConfig) (models.Session, error) {
	m.mu.Lock()
	switch {
	case m.runningLocked():
		m.mu.Unlock()
		m.metrics.IncSessions("rejected")
		return models.Session{}, ErrSessionRunning
	case !m.camera.IsActive():
		m.mu.Unlock()
		m.metrics.IncSessions("rejected")
		return models.Session{}, ErrCameraInactive
	case cfg.TotalPhotos < 0 || cfg.TimerSeconds < 0:
		m.mu.Unlock()
		return models.Session{}, fmt.Errorf("%w: %d photos, %ds timer", ErrInvalidConfig, cfg.TotalPhotos, cfg.TimerSeconds)
	}

	m.stopTimerLocked()
	m.session = &models.Session{
		ID:        uuid.NewString(),
		Config:    cfg,
		Photos:    []*models.Photo{},
		StartedAt: m.clock.Now(),
		Status:    models.StatusRunning,
	}
	m.lastShot = m.session.StartedAt
	m.metrics.IncSessions("started")
	m.metrics.SetPhotosInSession(0)
	m.logger.Infof(providers.TypeSession, "Session %s started: %d photos, %ds timer, layout %s",
		m.session.ID, cfg.TotalPhotos, cfg.TimerSeconds, cfg.Layout)

	started := m.snapshotLocked()
	m.queue(func(o Observer) { o.SessionStarted(started) })

	if cfg.TotalPhotos == 0 {
		m.completeLocked()
	} else {
		m.beginCountdownLocked()
	}
	current := m.snapshotLocked()
	m.unlockAndEmit()
	return current, nil
}

// Abort cancels the pending timer and leaves the session Aborted with the
// photos captured so far.
func (m *Machine) Abort() error {
	m.mu.Lock()
	if !m.runningLocked() {
		m.mu.Unlock()
		return ErrNotRunning
	}
	m.stopTimerLocked()
	m.phase = PhaseAborted
	m.session.Status = models.StatusAborted
	m.session.FinishedAt = m.clock.Now()
	m.metrics.IncSessions("aborted")
	m.logger.Infof(providers.TypeSession, "Session %s aborted after %d photos", m.session.ID, len(m.session.Photos))

	aborted := m.snapshotLocked()
	m.queue(func(o Observer) { o.SessionAborted(aborted) })
	m.unlockAndEmit()
	return nil
}

// Reset drops the current session and returns to Idle. A running session is
// rejected.
func (m *Machine) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.runningLocked() {
		return ErrSessionRunning
	}
	m.stopTimerLocked()
	m.session = nil
	m.phase = PhaseIdle
	m.remaining = 0
	m.metrics.SetPhotosInSession(0)
	return nil
}

func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := Status{Phase: m.phase, Status: models.StatusIdle, Remaining: m.remaining}
	if m.session != nil {
		st.SessionID = m.session.ID
		st.Status = m.session.Status
		st.Taken = len(m.session.Photos)
		st.Skipped = m.session.Skipped
		st.Attempts = m.session.Attempts()
		st.Total = m.session.Config.TotalPhotos
	}
	return st
}

func (m *Machine) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runningLocked()
}

// Session returns a copy of the current session. The photo slice is copied;
// photos themselves are shared and never touched by the machine after
// capture.
func (m *Machine) Session() (models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return models.Session{}, false
	}
	return m.snapshotLocked(), true
}

func (m *Machine) Photos() []*models.Photo {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	return append([]*models.Photo(nil), m.session.Photos...)
}

func (m *Machine) snapshotLocked() models.Session {
	s := *m.session
	s.Photos = append([]*models.Photo(nil), m.session.Photos...)
	return s
}

func (m *Machine) beginCountdownLocked() {
	m.phase = PhaseCountdown
	m.remaining = m.session.Config.TimerSeconds
	remaining := m.remaining
	m.queue(func(o Observer) { o.Countdown(remaining) })
	if m.remaining == 0 {
		m.scheduleLocked(0, m.captureLocked)
		return
	}
	m.scheduleLocked(TickInterval, m.tickLocked)
}

func (m *Machine) tickLocked() {
	m.remaining--
	remaining := m.remaining
	m.queue(func(o Observer) { o.Countdown(remaining) })
	if m.remaining > 0 {
		m.scheduleLocked(TickInterval, m.tickLocked)
		return
	}
	m.captureLocked()
}

func (m *Machine) captureLocked() {
	m.phase = PhaseCapturing
	m.remaining = 0
	s := m.session
	attempt := s.Attempts() + 1

	img, err := m.snapshotFrame()
	if err != nil {
		s.Skipped++
		m.metrics.IncCaptures("skipped")
		m.logger.Warnf(providers.TypeSession, "Session %s: capture %d/%d skipped: %v", s.ID, attempt, s.Config.TotalPhotos, err)
		m.queue(func(o Observer) { o.CaptureFailed(err, attempt, s.Config.TotalPhotos) })
	} else {
		now := m.clock.Now()
		if now.Before(m.lastShot) {
			now = m.lastShot
		}
		m.lastShot = now
		photo := models.NewPhoto(len(s.Photos), img, now, s.Config.Frame)
		s.Photos = append(s.Photos, photo)
		taken := len(s.Photos)
		m.metrics.IncCaptures("ok")
		m.metrics.SetPhotosInSession(taken)
		m.logger.Debugf(providers.TypeSession, "Session %s: photo %d/%d captured", s.ID, taken, s.Config.TotalPhotos)
		m.queue(func(o Observer) { o.Captured(photo, taken, s.Config.TotalPhotos) })
	}

	m.phase = PhaseAdvancing
	m.scheduleLocked(AdvancePause, m.advanceLocked)
}

func (m *Machine) snapshotFrame() (img *image.RGBA, err error) {
	if !m.camera.IsActive() {
		return nil, camera.ErrInactive
	}
	img, err = m.camera.CurrentFrame()
	if err != nil {
		return nil, err
	}
	if frame.ShouldMirror(m.mirror.MirrorMode(), m.camera.Facing()) {
		img = imaging.Mirror(img)
	}
	return img, nil
}

func (m *Machine) advanceLocked() {
	if m.session.Attempts() < m.session.Config.TotalPhotos {
		m.beginCountdownLocked()
		return
	}
	m.completeLocked()
}

func (m *Machine) completeLocked() {
	m.timer = nil
	m.phase = PhaseCompleted
	m.session.Status = models.StatusCompleted
	m.session.FinishedAt = m.clock.Now()
	stats := m.session.Stats()
	m.metrics.IncSessions("completed")
	m.logger.Infof(providers.TypeSession, "Session %s completed: %d photos, %d skipped, %ds",
		m.session.ID, stats.PhotoCount, stats.Skipped, stats.DurationSeconds)

	done := m.snapshotLocked()
	m.queue(func(o Observer) { o.SessionCompleted(done, stats) })
}

// scheduleLocked replaces the pending timer. fn runs with m.mu held.
func (m *Machine) scheduleLocked(d time.Duration, fn func()) {
	m.stopTimerLocked()
	gen := m.gen
	m.timer = m.clock.AfterFunc(d, func() {
		m.mu.Lock()
		if gen != m.gen {
			m.mu.Unlock()
			return
		}
		m.timer = nil
		fn()
		m.unlockAndEmit()
	})
}

func (m *Machine) stopTimerLocked() {
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Machine) queue(ev func(Observer)) {
	m.pending = append(m.pending, ev)
}

// unlockAndEmit releases m.mu and delivers queued events. emitMu is taken
// before m.mu is released so deliveries keep transition order.
func (m *Machine) unlockAndEmit() {
	events := m.pending
	m.pending = nil
	m.emitMu.Lock()
	m.mu.Unlock()
	defer m.emitMu.Unlock()
	if m.observer == nil {
		return
	}
	for _, ev := range events {
		ev(m.observer)
	}
}
