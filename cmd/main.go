package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/voice_sentiment/internal/ai"
	"github.com/Vovarama1992/voice_sentiment/internal/audio"
	"github.com/Vovarama1992/voice_sentiment/internal/cache"
	"github.com/Vovarama1992/voice_sentiment/internal/config"
	"github.com/Vovarama1992/voice_sentiment/internal/delivery"
	"github.com/Vovarama1992/voice_sentiment/internal/domain"
	"github.com/Vovarama1992/voice_sentiment/internal/error_notificator"
	"github.com/Vovarama1992/voice_sentiment/internal/metrics"
	"github.com/Vovarama1992/voice_sentiment/internal/speech"
	"github.com/Vovarama1992/voice_sentiment/internal/telemetry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const serviceName = "voice_sentiment"

func main() {

	// =========================================================================
	// ENV / LOGGER
	// =========================================================================

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			log.Fatalf("GOOGLE_APPLICATION_CREDENTIALS: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// TELEMETRY
	// =========================================================================

	shutdownTracing, err := telemetry.Setup(ctx, cfg, zl)
	if err != nil {
		log.Fatalf("failed to init telemetry: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var errInfra error_notificator.Notificator = error_notificator.NewLogInfra(zl)
	if cfg.TelegramAlertToken != "" {
		tg, err := error_notificator.NewTelegramInfra(cfg.TelegramAlertToken, cfg.TelegramAlertChatID, zl)
		if err != nil {
			log.Fatalf("failed to init telegram alerts: %v", err)
		}
		errInfra = tg
	}
	errService := error_notificator.NewService(errInfra, cfg.AlertCooldown)

	// =========================================================================
	// CLIENTS (FFMPEG / ANALYZER / TTS)
	// =========================================================================

	transcoder, err := audio.NewFFmpegTranscoder(cfg.FFmpegCommand)
	if err != nil {
		log.Fatalf("invalid FFMPEG_COMMAND: %v", err)
	}
	if !transcoder.Available() {
		zl.Log(logger.LogEntry{
			Level:   "warn",
			Message: "ffmpeg not found, only mp3 uploads will work",
			Service: serviceName,
		})
	}

	var analyzer ai.Analyzer
	switch cfg.AnalyzerProvider {
	case config.AnalyzerOpenAI:
		analyzer = ai.NewOpenAIClient(cfg.OpenAIAPIKey)
	default:
		vc, err := ai.NewVertexClient(ctx, cfg.Project, cfg.Location, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("failed to init vertex: %v", err)
		}
		analyzer = vc
	}

	var tts speech.TTSClient
	switch cfg.TTSProvider {
	case config.TTSElevenLabs:
		tts = speech.NewElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID)
	default:
		gc, err := speech.NewGoogleTTSClient(ctx)
		if err != nil {
			log.Fatalf("failed to init google tts: %v", err)
		}
		defer gc.Close()
		tts = gc
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	pipeline := domain.NewPipelineService(
		audio.NewNormalizer(transcoder),
		ai.NewService(analyzer),
		speech.NewService(tts),
		cache.NewSlot(),
		errService,
		m,
		zl,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", delivery.RequestIDHeader},
		ExposedHeaders: []string{delivery.RequestIDHeader},
	}))
	r.Use(delivery.RequestIDMiddleware, delivery.MetricsMiddleware(m))

	delivery.RegisterRoutes(
		r,
		delivery.NewVoiceHandler(pipeline, zl, cfg.MaxUploadMB<<20),
		delivery.NewPageHandler(zl, cfg.MaxUploadMB),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		cfg.RateLimitPerMinute,
	)

	// =========================================================================
	// START SERVER
	// =========================================================================

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		_ = shutdownTracing(shutdownCtx)
	}()

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + srv.Addr + ", analyzer=" + cfg.AnalyzerProvider + ", tts=" + cfg.TTSProvider,
		Service: serviceName,
	})

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
