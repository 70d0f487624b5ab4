package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resumatch/backend/config"
	"github.com/resumatch/backend/internal/api/handlers"
	"github.com/resumatch/backend/internal/api/middleware"
	"github.com/resumatch/backend/internal/api/routes"
	"github.com/resumatch/backend/internal/auth"
	"github.com/resumatch/backend/internal/cvparse"
	"github.com/resumatch/backend/internal/logger"
	"github.com/resumatch/backend/internal/providers/jobsearch"
	"github.com/resumatch/backend/internal/providers/llm"
	mongorepo "github.com/resumatch/backend/internal/repositories/mongo"
	"github.com/resumatch/backend/internal/services"
	"github.com/resumatch/backend/internal/storage"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := config.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("mongodb connect failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(shutdownCtx)
	}()
	log.Info("mongodb connected")

	db := client.Database(cfg.MongoDBName)
	if err := config.EnsureMongoIndexes(db); err != nil {
		log.WithError(err).Fatal("mongodb index setup failed")
	}

	users := mongorepo.NewUserRepo(db)
	profiles := mongorepo.NewProfileRepo(db)

	// LLM provider is optional; without one the deterministic fallback
	// handles all extraction.
	var provider llm.Provider
	switch {
	case cfg.LLMProvider == "vertex" && cfg.VertexProject != "":
		v, err := llm.NewVertexGemini(ctx, cfg.VertexProject, cfg.VertexLocation, cfg.VertexModel)
		if err != nil {
			log.WithError(err).Fatal("vertex client init failed")
		}
		provider = v
	case cfg.GroqAPIKey != "":
		provider = llm.NewGroq(cfg.GroqAPIKey, cfg.GroqModel)
	default:
		log.Warn("no LLM configured, CV extraction runs fallback-only")
	}
	if provider != nil {
		defer provider.Close()
	}

	var searcher jobsearch.Searcher
	if cfg.RapidAPIKey != "" {
		searcher = jobsearch.NewJSearch(cfg.RapidAPIKey)
	} else {
		log.Warn("RAPID_API_KEY not set, job search is disabled")
	}

	var sink storage.BlobSink
	if cfg.StorageBackend == "gcs" {
		gcsSink, err := storage.NewGCSSink(ctx, cfg.GCSBucket)
		if err != nil {
			log.WithError(err).Fatal("gcs client init failed")
		}
		defer gcsSink.Close()
		sink = gcsSink
	} else {
		sink = storage.NewMemorySink()
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	parser := cvparse.NewParser(provider, log)

	authSvc := services.NewAuthService(users, tokens, cfg.BcryptCost)
	cvSvc := services.NewCVService(profiles, parser, sink, log)
	jobSvc := services.NewJobService(profiles, searcher)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	routes.RegisterRoutes(r, routes.Deps{
		Tokens: tokens,
		Auth:   handlers.NewAuthHandler(authSvc),
		CV:     handlers.NewCVHandler(cvSvc, cfg.MaxUploadBytes),
		Jobs:   handlers.NewJobHandler(jobSvc),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
}
