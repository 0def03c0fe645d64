package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"photobooth/internal/structures"
	"strings"
	"time"
)

const AppName = "PhotoboothDaemon"

func setDefaults() {
	viper.SetDefault("persistence.saveInterval", 30*time.Second)
	viper.SetDefault("persistence.maxSessions", 10)
	viper.SetDefault("persistence.maxHistory", 50)
	viper.SetDefault("camera.source", "pattern")
	viper.SetDefault("camera.width", 1280)
	viper.SetDefault("camera.height", 720)
	viper.SetDefault("camera.facing", "front")
	viper.SetDefault("camera.mirrorMode", "auto")
	viper.SetDefault("session.totalPhotos", 4)
	viper.SetDefault("session.timerSeconds", 3)
	viper.SetDefault("session.layout", "single")
	viper.SetDefault("session.frame.type", "classic")
	viper.SetDefault("session.frame.color", "#FFD700")
	viper.SetDefault("session.frame.thickness", 15)
	viper.SetDefault("session.frame.opacity", 100)
	viper.SetDefault("session.frame.style", "solid")
	viper.SetDefault("collage.size", 1200)
	viper.SetDefault("collage.padding", 50)
	viper.SetDefault("collage.title", "Photobooth")
	viper.SetDefault("collage.dateFormat", "2/1/2006")
	viper.SetDefault("collage.workers", 4)
	viper.SetDefault("notify.displayInterval", 3*time.Second)
	viper.SetDefault("cache.size", 64)
	viper.SetDefault("cache.ttl", 10*time.Minute)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")
	setDefaults()

	viper.BindEnv("logger.level", "PHOTOBOOTH_LOG_LEVEL")
	viper.BindEnv("webServer.port", "PHOTOBOOTH_PORT")
	viper.BindEnv("camera.source", "PHOTOBOOTH_CAMERA_SOURCE")
	viper.BindEnv("camera.dir", "PHOTOBOOTH_CAMERA_DIR")
	viper.BindEnv("persistence.filePath", "PHOTOBOOTH_DATA_FILE")
	viper.BindEnv("cache.enabled", "PHOTOBOOTH_CACHE_ENABLED")
	viper.BindEnv("cache.size", "PHOTOBOOTH_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
