package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-client/config"
	"ulascansenturk/weather-client/internal/api/v1/handlers"
	"ulascansenturk/weather-client/internal/display"
	"ulascansenturk/weather-client/internal/providers"
	"ulascansenturk/weather-client/internal/service"
	"ulascansenturk/weather-client/internal/session"
	"ulascansenturk/weather-client/internal/tracing"
	"ulascansenturk/weather-client/internal/view"
	"ulascansenturk/weather-client/internal/weathercode"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("env", conf.Env).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	shutdownTracing, err := tracing.InitProvider(ctx, conf.ServiceName, conf.OTelCollectorEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing provider")
	}

	backend := providers.NewWeatherBackend(conf.BackendURL)
	builder := display.NewBuilder(weathercode.New(conf.FallbackIconURL))
	weatherService := service.NewWeatherService(backend, builder)

	renderer, err := view.NewRenderer(view.DefaultTitle)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load page templates")
	}

	sessions := session.NewInMemoryStore(conf.SessionTTL, conf.SessionCleanupInterval)

	handler := handlers.NewWeatherHandler(
		weatherService,
		renderer,
		sessions,
		conf.AboutMessage,
		view.WithStaleGuard(conf.DiscardStaleResponses),
	)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handlers.NewRouter(handler, conf.StaticDir),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("server shutdown failed")
		}

		sessions.Stop()

		if tracingErr := shutdownTracing(shutdownCtx); tracingErr != nil {
			log.Error().Err(tracingErr).Msg("failed to shutdown tracing provider")
		}
	})

	log.Info().
		Str("backend_url", conf.BackendURL).
		Bool("discard_stale_responses", conf.DiscardStaleResponses).
		Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Fatal().Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
	log.Info().Msg("server stopped")
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
