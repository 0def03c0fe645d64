package providers

import (
	"photobooth/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Persistence: structures.Persistence{
			FilePath:     "/tmp/photobooth.dat",
			SaveInterval: 30 * time.Second,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Camera: structures.CameraConfig{
			Source:     "pattern",
			Width:      640,
			Height:     480,
			Facing:     "front",
			MirrorMode: "auto",
		},
		Session: structures.SessionConfig{
			TotalPhotos:  4,
			TimerSeconds: 3,
			Layout:       "2x2",
			Frame: structures.FrameConfig{
				Type:      "classic",
				Color:     "#FFD700",
				Thickness: 15,
				Opacity:   100,
				Style:     "solid",
			},
		},
		Collage: structures.CollageConfig{
			Size:    1200,
			Padding: 50,
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidMirrorMode(t *testing.T) {
	c := validConfig()
	c.Camera.MirrorMode = "sometimes"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLayout(t *testing.T) {
	c := validConfig()
	c.Session.Layout = "5x5"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_DirectorySourceNeedsDir(t *testing.T) {
	c := validConfig()
	c.Camera.Source = "directory"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())

	c.Camera.Dir = "/tmp/frames"
	assert.NoError(t, NewCnfValidator(c).Validate())
}
