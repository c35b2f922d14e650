package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mediarec/internal/catalog"
	"mediarec/internal/config"
	"mediarec/internal/httpx"
	"mediarec/internal/ingest"
	"mediarec/internal/logging"
	"mediarec/internal/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("cannot load configuration")
	}
	logging.Init(cfg.Logging())

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("server error")
	}
}

type app struct {
	rec    *usecase.Recommender
	ingest *ingest.Service
}

func newApp(cfg *config.Config) *app {
	rec := usecase.New(cfg.RecommenderOptions())
	return &app{
		rec:    rec,
		ingest: ingest.NewService(rec, ingest.NewMemoryRepo()),
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(cfg)
	a.preload(ctx, ingest.Sources{
		BooksPath:        cfg.Data.BooksPath,
		ShowsPath:        cfg.Data.ShowsPath,
		AssociationsPath: cfg.Data.AssociationsPath,
	})

	limiter := httpx.NewRateLimitMiddleware(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	defer limiter.Stop()

	handler := httpx.Chain(a.routes(),
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware,
		httpx.AccessLogMiddleware,
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.Server.CORSOrigins),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.Server.MaxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// preload runs the configured file ingest. A failed run is recorded and
// logged; the server still starts and readyz reports the catalog state.
func (a *app) preload(ctx context.Context, src ingest.Sources) {
	if src == (ingest.Sources{}) {
		return
	}
	if _, err := a.ingest.Run(ctx, src); err != nil {
		logging.Warn().Err(err).Msg("preload failed, serving without catalog data")
	}
}

func (a *app) routes() *http.ServeMux {
	queryHandler := usecase.NewHTTPHandler(a.rec)
	catalogHandler := catalog.NewHTTPHandler(a.rec.Store())
	ingestHandler := ingest.NewHTTPHandler(a.ingest)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !a.rec.Ready() {
			http.Error(w, "catalog not loaded", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	router.HandleFunc("POST /v1/load/{kind}", ingestHandler.Load)
	router.HandleFunc("GET /v1/load/runs", ingestHandler.Runs)

	router.HandleFunc("GET /v1/movies", queryHandler.Movies)
	router.HandleFunc("GET /v1/tv", queryHandler.TV)
	router.HandleFunc("GET /v1/books", queryHandler.Books)
	router.HandleFunc("GET /v1/books/{id}", catalogHandler.GetBook)
	router.HandleFunc("GET /v1/shows/{id}", catalogHandler.GetShow)
	router.HandleFunc("GET /v1/stats/{kind}", queryHandler.Stats)
	router.HandleFunc("GET /v1/ratings", queryHandler.Ratings)
	router.HandleFunc("GET /v1/search/shows", queryHandler.SearchShows)
	router.HandleFunc("GET /v1/search/books", queryHandler.SearchBooks)
	router.HandleFunc("GET /v1/recommendations", queryHandler.Recommend)

	return router
}
