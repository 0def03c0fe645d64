package services

import (
	"fmt"
	"photobooth/internal/camera"
	"photobooth/internal/frame"
	"photobooth/internal/models"
	"photobooth/internal/notify"
	"photobooth/internal/providers"
	"photobooth/internal/session"
	"photobooth/internal/session/interfaces"
	storage "photobooth/internal/storage/interfaces"
	"photobooth/internal/structures"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"go.uber.org/atomic"
)

const noPhoto = -1

// PhotoboothService is the single owner of the camera, the current session,
// the editor and the persisted settings. Every UI action is one method call.
//
// Lock order: mu, then the machine's lock. Session observer callbacks never
// take mu.
type PhotoboothService struct {
	mu sync.Mutex

	conf      *structures.Config
	camera    camera.Source
	machine   *session.Machine
	clock     interfaces.Clock
	store     storage.StoreInterface
	scheduler storage.SchedulerInterface
	notifier  notify.NotifierInterface
	cache     providers.CacheProviderInterface
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface

	mirror   *atomic.String
	settings models.Settings

	editing int
	drag    *models.DragState
	edited  *roaring.Bitmap
}

func NewPhotoboothService(
	conf *structures.Config,
	source camera.Source,
	clock interfaces.Clock,
	store storage.StoreInterface,
	scheduler storage.SchedulerInterface,
	notifier notify.NotifierInterface,
	cache providers.CacheProviderInterface,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
) *PhotoboothService {
	s := &PhotoboothService{
		conf:      conf,
		camera:    source,
		clock:     clock,
		store:     store,
		scheduler: scheduler,
		notifier:  notifier,
		cache:     cache,
		logger:    logger,
		metrics:   metrics,
		mirror:    atomic.NewString(conf.Camera.MirrorMode),
		editing:   noPhoto,
		edited:    roaring.New(),
	}
	s.settings = DefaultSettings(conf)
	s.machine = session.NewMachine(clock, source, s, &sessionEvents{svc: s}, logger, metrics)
	return s
}

// DefaultSettings are the configured session defaults.
func DefaultSettings(conf *structures.Config) models.Settings {
	return models.Settings{
		TotalPhotos:  conf.Session.TotalPhotos,
		TimerSeconds: conf.Session.TimerSeconds,
		Layout:       models.Layout(conf.Session.Layout),
		Frame: frame.Config{
			Type:      conf.Session.Frame.Type,
			Color:     conf.Session.Frame.Color,
			Thickness: conf.Session.Frame.Thickness,
			Opacity:   conf.Session.Frame.Opacity,
			Style:     conf.Session.Frame.Style,
		},
		MirrorMode: conf.Camera.MirrorMode,
	}
}

// MirrorMode is read by the state machine at every capture.
func (s *PhotoboothService) MirrorMode() frame.MirrorMode {
	return frame.MirrorMode(s.mirror.Load())
}

// LoadSettings applies persisted settings over the configured defaults.
// Out of range or unparseable fields keep their defaults.
func (s *PhotoboothService) LoadSettings() {
	saved, ok := s.store.LoadSettings()
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = mergeSettings(s.settings, saved)
	s.mirror.Store(s.settings.MirrorMode)
	s.logger.Infof(providers.TypeApp, "Restored settings: %d photos, %ds timer, layout %s, frame %s",
		s.settings.TotalPhotos, s.settings.TimerSeconds, s.settings.Layout, s.settings.Frame.Type)
}

func mergeSettings(base, saved models.Settings) models.Settings {
	if saved.TotalPhotos >= 0 && saved.TotalPhotos <= maxPhotos {
		base.TotalPhotos = saved.TotalPhotos
	}
	if saved.TimerSeconds >= 0 && saved.TimerSeconds <= maxTimerSeconds {
		base.TimerSeconds = saved.TimerSeconds
	}
	if saved.Layout != "" {
		base.Layout = saved.Layout
	}
	if saved.Frame.Type != "" {
		base.Frame.Type = saved.Frame.Type
	}
	if _, err := frame.ParseHex(saved.Frame.Color); err == nil {
		base.Frame.Color = saved.Frame.Color
	}
	if saved.Frame.Thickness >= 0 && saved.Frame.Thickness <= 100 {
		base.Frame.Thickness = saved.Frame.Thickness
	}
	if saved.Frame.Opacity >= 0 && saved.Frame.Opacity <= 100 {
		base.Frame.Opacity = saved.Frame.Opacity
	}
	if frame.IsBorderStyle(saved.Frame.Style) {
		base.Frame.Style = saved.Frame.Style
	}
	if _, err := frame.ParseMirrorMode(saved.MirrorMode); err == nil {
		base.MirrorMode = saved.MirrorMode
	}
	base.LastSession = saved.LastSession
	return base
}

func (s *PhotoboothService) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.settings
	st.MirrorMode = s.mirror.Load()
	return st
}

// SettingsPatch carries the fields a client wants to change.
type SettingsPatch struct {
	TotalPhotos  *int    `json:"totalPhotos,omitempty"`
	TimerSeconds *int    `json:"timerSeconds,omitempty"`
	Layout       *string `json:"layout,omitempty"`
	FrameType    *string `json:"frameType,omitempty"`
	FrameColor   *string `json:"frameColor,omitempty"`
	Thickness    *int    `json:"thickness,omitempty"`
	Opacity      *int    `json:"opacity,omitempty"`
	Style        *string `json:"style,omitempty"`
}

const (
	maxPhotos       = 16
	maxTimerSeconds = 60
)

func (p SettingsPatch) apply(st models.Settings) (models.Settings, error) {
	if p.TotalPhotos != nil {
		if *p.TotalPhotos < 0 || *p.TotalPhotos > maxPhotos {
			return st, fmt.Errorf("%w: photo count %d not in [0,%d]", ErrInvalidSettings, *p.TotalPhotos, maxPhotos)
		}
		st.TotalPhotos = *p.TotalPhotos
	}
	if p.TimerSeconds != nil {
		if *p.TimerSeconds < 0 || *p.TimerSeconds > maxTimerSeconds {
			return st, fmt.Errorf("%w: timer %ds not in [0,%d]", ErrInvalidSettings, *p.TimerSeconds, maxTimerSeconds)
		}
		st.TimerSeconds = *p.TimerSeconds
	}
	if p.Layout != nil {
		switch l := models.Layout(*p.Layout); l {
		case models.LayoutSingle, models.Layout2x2, models.Layout3x3, models.Layout4x4:
			st.Layout = l
		default:
			return st, fmt.Errorf("%w: layout %q", ErrInvalidSettings, *p.Layout)
		}
	}
	if p.FrameType != nil {
		st.Frame.Type = *p.FrameType
	}
	if p.FrameColor != nil {
		if _, err := frame.ParseHex(*p.FrameColor); err != nil {
			return st, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
		st.Frame.Color = *p.FrameColor
	}
	if p.Thickness != nil {
		if *p.Thickness < 0 || *p.Thickness > 100 {
			return st, fmt.Errorf("%w: thickness %d", ErrInvalidSettings, *p.Thickness)
		}
		st.Frame.Thickness = *p.Thickness
	}
	if p.Opacity != nil {
		if *p.Opacity < 0 || *p.Opacity > 100 {
			return st, fmt.Errorf("%w: opacity %d", ErrInvalidSettings, *p.Opacity)
		}
		st.Frame.Opacity = *p.Opacity
	}
	if p.Style != nil {
		if !frame.IsBorderStyle(*p.Style) {
			return st, fmt.Errorf("%w: style %q", ErrInvalidSettings, *p.Style)
		}
		st.Frame.Style = *p.Style
	}
	return st, nil
}

// UpdateSettings validates and applies patch, then persists the result.
// Session settings are frozen while a session runs.
func (s *PhotoboothService) UpdateSettings(patch SettingsPatch) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.machine.Running() {
		return s.settings, ErrSettingsLocked
	}
	next, err := patch.apply(s.settings)
	if err != nil {
		return s.settings, err
	}
	s.settings = next
	s.saveSettingsLocked()
	s.notifier.Publish(notify.TypeSettings, s.settings)
	return s.settings, nil
}

func (s *PhotoboothService) saveSettingsLocked() {
	st := s.settings
	st.MirrorMode = s.mirror.Load()
	st.LastSession = s.clock.Now()
	s.settings.LastSession = st.LastSession
	s.store.SaveSettings(st)
}

// Overlay describes the current frame selection for the preview.
func (s *PhotoboothService) Overlay() (frame.Overlay, error) {
	s.mu.Lock()
	cfg := s.settings.Frame
	s.mu.Unlock()
	return frame.Decorate(cfg)
}
