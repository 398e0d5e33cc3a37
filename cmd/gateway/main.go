package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gateway/internal/backend"
	"gateway/internal/http/handlers"
	"gateway/internal/http/httpapi"
	"gateway/internal/infra"
	"gateway/internal/jobs"
	"gateway/internal/metric"
	"gateway/internal/routing"
	"gateway/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	media, err := storage.NewFileStore(cfg.MediaDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare media directory")
	}

	routes := routing.DefaultTable(routing.Backends{
		ComfyUI:    cfg.ComfyUIURL,
		Cosmos:     cfg.CosmosURL,
		Audiocraft: cfg.AudiocraftURL,
		TTS:        cfg.TTSURL,
	})

	metrics := metric.New()
	store := jobs.NewStore(cfg.JobTTL)
	client := backend.NewClient(backend.Options{
		Timeout: cfg.BackendTimeout,
		Media:   media,
		Logger:  &logger,
	})
	executor := jobs.NewExecutor(store, client, cfg.GatewayBaseURL, logger, metrics)

	app := &handlers.App{
		Cfg:     cfg,
		Logger:  logger,
		Routes:  routes,
		Jobs:    store,
		Exec:    executor,
		Media:   media,
		Metrics: metrics,
	}

	server := infra.NewHTTPServer(cfg, httpapi.NewRouter(app))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go store.RunJanitor(ctx)

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Int("endpoints", routes.Len()).
			Str("media_dir", media.BasePath()).
			Msg("gateway listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("gateway stopped")
}
