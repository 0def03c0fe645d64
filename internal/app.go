package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"photobooth/internal/controllers"
	"photobooth/internal/notify"
	"photobooth/internal/providers"
	"photobooth/internal/services"
	"photobooth/internal/storage/interfaces"
	"photobooth/internal/structures"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	WebServer *http.Server
}

// newHandler mounts the infrastructure endpoints next to the instrumented
// API routes.
func newHandler(conf *structures.Config, router providers.RouterProviderInterface, healthController *controllers.HealthController, hub *notify.Hub, metrics providers.MetricsProviderInterface) http.Handler {
	api := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		api.Handle(route.Url, route.Handler)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		notify.ServeWs(hub, w, r)
	})
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", providers.MetricsMiddleware(metrics, api))
	return mux
}

// NewApp restores state, serves until SIGINT/SIGTERM and shuts down in
// reverse order: timers and camera first, then HTTP, then the final flush.
func NewApp(
	healthController *controllers.HealthController,
	service *services.PhotoboothService,
	hub *notify.Hub,
	scheduler interfaces.SchedulerInterface,
	conf *structures.Config,
	logger providers.Logger,
	router providers.RouterProviderInterface,
	metrics providers.MetricsProviderInterface,
) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)
	go hub.Run()

	if err := scheduler.Restore(); err != nil {
		logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}
	service.LoadSettings()
	if _, err := service.StartCamera(); err != nil {
		logger.Warnf(providers.TypeCamera, "Camera not available at startup: %s", err)
	}

	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      newHandler(conf, router, healthController, hub, metrics),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
	scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", app.WebServer.Addr)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	scheduler.Stop()
	service.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.WebServer.Shutdown(ctx); err != nil && runErr == nil {
		runErr = err
	}
	hub.Stop()

	if err := scheduler.Persist(); err != nil {
		logger.Errorf(providers.TypeApp, "Final persist failed: %s", err)
		if runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		return nil, runErr
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}
