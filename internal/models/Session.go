package models

import (
	"photobooth/internal/frame"
	"time"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusAborted   Status = "aborted"
)

type Layout string

const (
	LayoutSingle Layout = "single"
	Layout2x2    Layout = "2x2"
	Layout3x3    Layout = "3x3"
	Layout4x4    Layout = "4x4"
)

// Grid returns the rows and columns for a layout; unknown layouts are 1x1.
func (l Layout) Grid() (rows, cols int) {
	switch l {
	case Layout2x2:
		return 2, 2
	case Layout3x3:
		return 3, 3
	case Layout4x4:
		return 4, 4
	default:
		return 1, 1
	}
}

type SessionConfig struct {
	TotalPhotos  int          `json:"totalPhotos"`
	TimerSeconds int          `json:"timerSeconds"`
	Layout       Layout       `json:"layout"`
	Frame        frame.Config `json:"frame"`
}

type Quality string

const (
	QualityExcellent Quality = "Excellent"
	QualityGood      Quality = "Good"
)

type SessionStats struct {
	PhotoCount      int     `json:"photoCount"`
	Skipped         int     `json:"skipped"`
	DurationSeconds int     `json:"durationSeconds"`
	Quality         Quality `json:"quality"`
}

// Session owns its photos exclusively.
type Session struct {
	ID         string        `json:"id"`
	Config     SessionConfig `json:"config"`
	Photos     []*Photo      `json:"photos"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
	Status     Status        `json:"status"`
	Skipped    int           `json:"skipped"`
}

func (s *Session) Attempts() int {
	return len(s.Photos) + s.Skipped
}

func (s *Session) Stats() SessionStats {
	quality := QualityGood
	if len(s.Photos) >= s.Config.TotalPhotos {
		quality = QualityExcellent
	}
	end := s.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}
	return SessionStats{
		PhotoCount:      len(s.Photos),
		Skipped:         s.Skipped,
		DurationSeconds: int(end.Sub(s.StartedAt) / time.Second),
		Quality:         quality,
	}
}

func (s *Session) Photo(i int) (*Photo, bool) {
	if i < 0 || i >= len(s.Photos) {
		return nil, false
	}
	return s.Photos[i], true
}
