package services

import (
	"photobooth/internal/camera"
	"photobooth/internal/frame"
	"photobooth/internal/notify"
	"photobooth/internal/providers"
	"photobooth/internal/session"
)

type CameraState struct {
	Active     bool             `json:"active"`
	Facing     frame.Facing     `json:"facing"`
	MirrorMode frame.MirrorMode `json:"mirrorMode"`
	MirrorText string           `json:"mirrorText"`
	Mirrored   bool             `json:"mirrored"`
}

func (s *PhotoboothService) CameraState() CameraState {
	mode := s.MirrorMode()
	facing := s.camera.Facing()
	return CameraState{
		Active:     s.camera.IsActive(),
		Facing:     facing,
		MirrorMode: mode,
		MirrorText: mode.Label(),
		Mirrored:   frame.ShouldMirror(mode, facing),
	}
}

func (s *PhotoboothService) StartCamera() (CameraState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.camera.IsActive() {
		return s.CameraState(), nil
	}
	facing := frame.Facing(s.conf.Camera.Facing)
	if f := s.camera.Facing(); f != "" {
		facing = f
	}
	if err := s.camera.Start(facing); err != nil {
		s.logger.Errorf(providers.TypeCamera, "Camera start failed: %s", err)
		s.notifier.Notify(camera.Describe(err), notify.SeverityError)
		return s.CameraState(), err
	}
	s.logger.Infof(providers.TypeCamera, "Camera started (%s)", facing)
	s.notifier.Notify("Camera activated", notify.SeveritySuccess)
	return s.CameraState(), nil
}

// StopCamera releases the camera. A running session is aborted first so
// no capture fires against a dead source.
func (s *PhotoboothService) StopCamera() CameraState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.camera.IsActive() {
		return s.CameraState()
	}
	if err := s.machine.Abort(); err == nil {
		s.notifier.Notify("Session aborted: camera stopped", notify.SeverityWarning)
	}
	s.camera.Stop()
	s.logger.Infof(providers.TypeCamera, "Camera stopped")
	s.notifier.Notify("Camera deactivated", notify.SeverityInfo)
	return s.CameraState()
}

func (s *PhotoboothService) ToggleCamera() (CameraState, error) {
	if s.camera.IsActive() {
		return s.StopCamera(), nil
	}
	return s.StartCamera()
}

// FlipCamera restarts the camera facing the other way.
func (s *PhotoboothService) FlipCamera() (CameraState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.machine.Running() {
		return s.CameraState(), session.ErrSessionRunning
	}
	next := frame.FacingBack
	if s.camera.Facing() == frame.FacingBack {
		next = frame.FacingFront
	}
	if !s.camera.IsActive() {
		return s.CameraState(), camera.ErrInactive
	}
	s.camera.Stop()
	if err := s.camera.Start(next); err != nil {
		s.logger.Errorf(providers.TypeCamera, "Camera flip failed: %s", err)
		s.notifier.Notify(camera.Describe(err), notify.SeverityError)
		return s.CameraState(), err
	}
	s.logger.Infof(providers.TypeCamera, "Camera flipped to %s", next)
	s.notifier.Notify("Switched to "+string(next)+" camera", notify.SeverityInfo)
	return s.CameraState(), nil
}

// SetMirrorMode takes effect at the next capture, even mid-session.
func (s *PhotoboothService) SetMirrorMode(mode string) (CameraState, error) {
	m, err := frame.ParseMirrorMode(mode)
	if err != nil {
		return s.CameraState(), err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mirror.Store(string(m))
	s.saveSettingsLocked()
	s.notifier.Notify("Mirror: "+m.Label(), notify.SeverityInfo)
	return s.CameraState(), nil
}

func (s *PhotoboothService) CycleMirrorMode() CameraState {
	st, _ := s.SetMirrorMode(string(s.MirrorMode().Next()))
	return st
}
