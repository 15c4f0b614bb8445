package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/docsim/backend/internal/auth"
	"github.com/docsim/backend/internal/cache"
	"github.com/docsim/backend/internal/config"
	"github.com/docsim/backend/internal/db"
	"github.com/docsim/backend/internal/handler"
	"github.com/docsim/backend/internal/nlp"
	"github.com/docsim/backend/internal/service"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(log zerolog.Logger) error {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	codec, err := auth.NewCodec(cfg.JWT)
	if err != nil {
		return err
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	blocklist, err := cache.NewBlocklist(ctx, cfg.Redis, cfg.Cache.JTITokenExpiry)
	if err != nil {
		return err
	}
	defer blocklist.Close()

	docsCache, err := cache.NewDocsCache(ctx, cfg.Redis, cfg.Cache.DocsCacheExpiry)
	if err != nil {
		return err
	}
	defer docsCache.Close()

	similarity := nlp.NewSimilarityCalculator(nlp.NewPreprocessor())

	userService := service.NewUserService(repo, codec, blocklist, cfg.JWT, log)
	documentService := service.NewDocumentService(repo, docsCache, similarity, log)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestLogger(log))
	router.Use(handler.CORSMiddleware())

	handler.RegisterRoutes(
		router,
		handler.NewUserHandler(userService),
		handler.NewDocumentHandler(documentService),
		codec,
		blocklist,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.App.Port).Str("version", cfg.App.Version).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
