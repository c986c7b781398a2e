package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/entropass/entropass-go/internal/config"
	"github.com/entropass/entropass-go/internal/crypto"
	"github.com/entropass/entropass-go/internal/handler"
	"github.com/entropass/entropass-go/internal/middleware"
	"github.com/entropass/entropass-go/internal/repository"
	"github.com/entropass/entropass-go/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Initialize DB-backed routes if the database is available. Generation
	// keeps working without it, limited to the built-in wordlists.
	var wordlistRepo *repository.WordlistRepository
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — account and wordlist routes disabled", "error", err)
	} else {
		wordlistRepo = repository.NewWordlistRepository(db)

		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		wordlistService := service.NewWordlistService(wordlistRepo)
		wordlistHandler := handler.NewWordlistHandler(wordlistService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/wordlists", wordlistHandler.HandleList)
			r.Post("/api/v1/wordlists", wordlistHandler.HandleCreate)
			r.Get("/api/v1/wordlists/{name}", wordlistHandler.HandleGet)
			r.Delete("/api/v1/wordlists/{name}", wordlistHandler.HandleDelete)
		})
	}

	genService := service.NewGenerateService(crypto.SystemSource{}, wordlistRepo)
	genHandler := handler.NewGenerateHandler(genService)

	// Generation is public; a valid token additionally makes the caller's
	// stored wordlists resolvable by name.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
		r.Post("/api/v1/generate/passphrase", genHandler.HandlePassphrase)
		r.Post("/api/v1/generate/password", genHandler.HandlePassword)
		r.Post("/api/v1/generate/uuid", genHandler.HandleUUID)
		r.Post("/api/v1/plan/passphrase", genHandler.HandlePlanPassphrase)
		r.Post("/api/v1/plan/password", genHandler.HandlePlanPassword)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
