package models

import (
	"photobooth/internal/frame"
	"time"
)

// Settings are the user's last selections, restored on startup.
type Settings struct {
	TotalPhotos  int          `json:"totalPhotos"`
	TimerSeconds int          `json:"timerSeconds"`
	Layout       Layout       `json:"layout"`
	Frame        frame.Config `json:"frame"`
	MirrorMode   string       `json:"mirrorMode"`
	LastSession  time.Time    `json:"lastSession"`
}

func (s Settings) SessionConfig() SessionConfig {
	return SessionConfig{
		TotalPhotos:  s.TotalPhotos,
		TimerSeconds: s.TimerSeconds,
		Layout:       s.Layout,
		Frame:        s.Frame,
	}
}

// SavedPhoto is a copied, encoded photo inside a SessionRecord.
type SavedPhoto struct {
	Index      int          `json:"index"`
	CapturedAt time.Time    `json:"capturedAt"`
	Stickers   []Sticker    `json:"stickers"`
	Frame      frame.Config `json:"frame"`
	PNG        []byte       `json:"png"`
}

// SessionRecord is an explicitly saved session with its photos.
type SessionRecord struct {
	ID          string       `json:"id"`
	SessionID   string       `json:"sessionId"`
	Date        time.Time    `json:"date"`
	TotalPhotos int          `json:"totalPhotos"`
	Layout      Layout       `json:"layout"`
	Frame       frame.Config `json:"frame"`
	Photos      []SavedPhoto `json:"photos"`
}

// HistoryRecord is written once per completed session.
type HistoryRecord struct {
	ID              string        `json:"id"`
	SessionID       string        `json:"sessionId"`
	Date            time.Time     `json:"date"`
	Photos          int           `json:"photos"`
	Skipped         int           `json:"skipped"`
	DurationSeconds int           `json:"duration"`
	Quality         Quality       `json:"quality"`
	Settings        SessionConfig `json:"settings"`
}

// StorageV1 is the on-disk envelope of the persistence file.
type StorageV1 struct {
	Version  int             `json:"version"`
	Settings *Settings       `json:"settings,omitempty"`
	Sessions []SessionRecord `json:"sessions"`
	History  []HistoryRecord `json:"history"`
}
