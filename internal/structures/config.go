package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
	MaxSessions  int           `yaml:"maxSessions"`
	MaxHistory   int           `yaml:"maxHistory"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CameraConfig struct {
	Source     string `yaml:"source" validate:"required|in:pattern,directory"`
	Dir        string `yaml:"dir"`
	Width      int    `yaml:"width" validate:"required|min:16"`
	Height     int    `yaml:"height" validate:"required|min:16"`
	Facing     string `yaml:"facing" validate:"required|in:front,back"`
	MirrorMode string `yaml:"mirrorMode" validate:"required|in:auto,mirror,no-mirror"`
}

type FrameConfig struct {
	Type      string `yaml:"type"`
	Color     string `yaml:"color" validate:"required|regex:^#[0-9a-fA-F]{6}$"`
	Thickness int    `yaml:"thickness" validate:"min:0|max:100"`
	Opacity   int    `yaml:"opacity" validate:"min:0|max:100"`
	Style     string `yaml:"style" validate:"in:solid,dashed,dotted,double,groove"`
}

type SessionConfig struct {
	TotalPhotos  int         `yaml:"totalPhotos" validate:"min:0|max:16"`
	TimerSeconds int         `yaml:"timerSeconds" validate:"min:0|max:60"`
	Layout       string      `yaml:"layout" validate:"required|in:single,2x2,3x3,4x4"`
	Frame        FrameConfig `yaml:"frame"`
}

type CollageConfig struct {
	Size       int    `yaml:"size" validate:"required|min:100"`
	Padding    int    `yaml:"padding" validate:"min:0"`
	Title      string `yaml:"title"`
	DateFormat string `yaml:"dateFormat"`
	Workers    int    `yaml:"workers"`
}

type NotifyConfig struct {
	DisplayInterval time.Duration `yaml:"displayInterval"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Camera      CameraConfig  `yaml:"camera"`
	Session     SessionConfig `yaml:"session"`
	Collage     CollageConfig `yaml:"collage"`
	Notify      NotifyConfig  `yaml:"notify"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
