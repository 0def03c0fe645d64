package storage

import (
	"encoding/base64"
	"fmt"
	json "github.com/goccy/go-json"
	"photobooth/internal/frame"
	"photobooth/internal/models"
	"strconv"
	"strings"
	"time"
)

// Browser local storage keys of the original single-page booth.
const (
	legacySettingsKey = "photoboothSession"
	legacySessionsKey = "photoboothSessions"
	legacyHistoryKey  = "photoboothHistory"
)

type legacySettings struct {
	TotalPhotos    int    `json:"totalPhotos"`
	TimerSeconds   int    `json:"timerSeconds"`
	SelectedLayout string `json:"selectedLayout"`
	SelectedFrame  string `json:"selectedFrame"`
	FrameColor     string `json:"frameColor"`
	LastSession    string `json:"lastSession"`
}

type legacyHistory struct {
	ID       json.Number    `json:"id"`
	Date     string         `json:"date"`
	Photos   int            `json:"photos"`
	Duration int            `json:"duration"`
	Settings legacySettings `json:"settings"`
}

type legacyPhoto struct {
	Index     int          `json:"index"`
	Data      string       `json:"data"`
	Timestamp int64        `json:"timestamp"`
	Frame     frame.Config `json:"frame"`
}

type legacySession struct {
	ID          json.Number   `json:"id"`
	TotalPhotos int           `json:"totalPhotos"`
	Photos      []legacyPhoto `json:"photos"`
	Layout      string        `json:"layout"`
	Frame       string        `json:"frame"`
	FrameColor  string        `json:"frameColor"`
}

func (l legacySettings) toConfig() models.SessionConfig {
	return models.SessionConfig{
		TotalPhotos:  l.TotalPhotos,
		TimerSeconds: l.TimerSeconds,
		Layout:       models.Layout(l.SelectedLayout),
		Frame:        frame.Config{Type: l.SelectedFrame, Color: l.FrameColor},
	}
}

// migrateLegacy reads an object of local storage keys. Values may be the raw
// JSON strings local storage holds or already-parsed JSON.
func migrateLegacy(data []byte) (*models.StorageV1, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}

	_, hasSettings := raw[legacySettingsKey]
	_, hasSessions := raw[legacySessionsKey]
	_, hasHistory := raw[legacyHistoryKey]
	if !hasSettings && !hasSessions && !hasHistory {
		return nil, ErrUnknownFormat
	}

	storage := &models.StorageV1{Version: StorageVersion}

	if hasSettings {
		var ls legacySettings
		if err := decodeLegacyValue(raw[legacySettingsKey], &ls); err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
		cfg := ls.toConfig()
		settings := models.Settings{
			TotalPhotos:  cfg.TotalPhotos,
			TimerSeconds: cfg.TimerSeconds,
			Layout:       cfg.Layout,
			Frame:        cfg.Frame,
		}
		// The browser never stored border thickness or opacity; out of range
		// values make the loader keep its configured defaults.
		settings.Frame.Thickness, settings.Frame.Opacity = -1, -1
		settings.LastSession, _ = time.Parse(time.RFC3339, ls.LastSession)
		storage.Settings = &settings
	}

	if hasHistory {
		var lh []legacyHistory
		if err := decodeLegacyValue(raw[legacyHistoryKey], &lh); err != nil {
			return nil, fmt.Errorf("history: %w", err)
		}
		for _, h := range lh {
			date, _ := time.Parse(time.RFC3339, h.Date)
			cfg := h.Settings.toConfig()
			quality := models.QualityGood
			if h.Photos >= cfg.TotalPhotos {
				quality = models.QualityExcellent
			}
			storage.History = append(storage.History, models.HistoryRecord{
				ID:              h.ID.String(),
				Date:            date,
				Photos:          h.Photos,
				DurationSeconds: h.Duration,
				Quality:         quality,
				Settings:        cfg,
			})
		}
	}

	if hasSessions {
		var ls []legacySession
		if err := decodeLegacyValue(raw[legacySessionsKey], &ls); err != nil {
			return nil, fmt.Errorf("sessions: %w", err)
		}
		for _, s := range ls {
			record := models.SessionRecord{
				ID:          s.ID.String(),
				TotalPhotos: s.TotalPhotos,
				Layout:      models.Layout(s.Layout),
				Frame:       frame.Config{Type: s.Frame, Color: s.FrameColor},
			}
			if ms, err := strconv.ParseInt(s.ID.String(), 10, 64); err == nil {
				record.Date = time.UnixMilli(ms)
			}
			for _, p := range s.Photos {
				png, err := decodeDataURL(p.Data)
				if err != nil {
					continue
				}
				record.Photos = append(record.Photos, models.SavedPhoto{
					Index:      p.Index,
					CapturedAt: time.UnixMilli(p.Timestamp),
					Stickers:   []models.Sticker{},
					Frame:      p.Frame,
					PNG:        png,
				})
			}
			storage.Sessions = append(storage.Sessions, record)
		}
	}

	return storage, nil
}

func decodeLegacyValue(raw json.RawMessage, v interface{}) error {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = json.RawMessage(s)
	}
	return json.Unmarshal(raw, v)
}

func decodeDataURL(s string) ([]byte, error) {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(s, prefix) {
		return nil, fmt.Errorf("not a PNG data URL")
	}
	return base64.StdEncoding.DecodeString(strings.TrimPrefix(s, prefix))
}
