//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"photobooth/internal"
	"photobooth/internal/camera"
	"photobooth/internal/controllers"
	"photobooth/internal/notify"
	"photobooth/internal/providers"
	"photobooth/internal/services"
	"photobooth/internal/session"
	"photobooth/internal/storage"
	"photobooth/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		camera.NewSourceProvider,
		session.NewRealClock,
		storage.NewZstdCompressor,
		storage.NewStore,
		storage.NewFileManager,
		storage.NewScheduler,
		notify.NewHub,
		notify.NewNotifier,
		services.NewPhotoboothService,
		wire.Bind(new(services.PhotoboothServiceInterface), new(*services.PhotoboothService)),
		wire.Bind(new(controllers.ClientCounter), new(*notify.Hub)),
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
