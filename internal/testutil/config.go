package testutil

import (
	"photobooth/internal/structures"
	"time"
)

// NewConfig returns a valid configuration with the shipped defaults.
func NewConfig() *structures.Config {
	return &structures.Config{
		AppName:   "PhotoboothTest",
		WebServer: structures.Server{Host: "127.0.0.1", Port: 8080},
		Persistence: structures.Persistence{
			FilePath:     "/tmp/photobooth-test.db",
			SaveInterval: 30 * time.Second,
			MaxSessions:  10,
			MaxHistory:   50,
		},
		Camera: structures.CameraConfig{
			Source:     "pattern",
			Width:      64,
			Height:     48,
			Facing:     "front",
			MirrorMode: "auto",
		},
		Session: structures.SessionConfig{
			TotalPhotos:  4,
			TimerSeconds: 3,
			Layout:       "single",
			Frame: structures.FrameConfig{
				Type:      "classic",
				Color:     "#FFD700",
				Thickness: 15,
				Opacity:   100,
				Style:     "solid",
			},
		},
		Collage: structures.CollageConfig{
			Size:       200,
			Padding:    20,
			Title:      "Photobooth",
			DateFormat: "2/1/2006",
			Workers:    2,
		},
		Notify: structures.NotifyConfig{DisplayInterval: 3 * time.Second},
		Cache:  structures.CacheConfig{Enabled: true, Size: 8, TTL: time.Minute},
	}
}
