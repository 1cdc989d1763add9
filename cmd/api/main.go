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

	"github.com/joho/godotenv"

	"github.com/littlemoneyschool/tutor/backend/internal/analysis/keyword"
	"github.com/littlemoneyschool/tutor/backend/internal/config"
	"github.com/littlemoneyschool/tutor/backend/internal/handler"
	"github.com/littlemoneyschool/tutor/backend/internal/model/tutor"
	"github.com/littlemoneyschool/tutor/backend/internal/service/ai"
	"github.com/littlemoneyschool/tutor/backend/internal/service/resolver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	table, err := keyword.LoadOrSeed(cfg.Keyword.TablePath)
	if err != nil {
		log.Fatalf("failed to load keyword table: %v", err)
	}
	log.Printf("[keyword] %d replies loaded", table.Len())

	profile := tutor.Default()

	var providers []ai.Provider
	if cfg.AI.Enabled() {
		providers, err = ai.NewProviders(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: %v", resolver.Unavailable("init_failed", err))
			log.Println("continuing with keyword replies only")
			providers = nil
		} else {
			log.Printf("[ai] provider %s ready, model=%s", cfg.AI.Provider, cfg.AI.ModelOrDefault())
		}
	} else {
		log.Printf("[ai] %v, answering from keyword table", resolver.Unavailable("no_credential", nil))
	}

	res := resolver.New(providers, table, resolver.Options{
		SystemPrompt:    ai.BuildSystemPrompt(profile),
		MaxOutput:       cfg.AI.MaxOutputTokens,
		HistoryWindow:   cfg.AI.HistoryWindow(),
		Timeout:         cfg.AI.Timeout,
		RequireProvider: cfg.AI.Required,
	})
	log.Printf("[resolver] strategies: %v", res.StrategyNames())

	router := handler.NewRouter(handler.Dependencies{
		Resolver:       res,
		Profile:        profile,
		AIEnabled:      res.AIEnabled(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Little Money School backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
