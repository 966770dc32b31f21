// Package server exposes the share codec, importer and patch export over HTTP
// and serves the browser front end.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBody caps request bodies. Share links stay far below it; imported
// files are the large case.
const DefaultMaxBody = 8 << 20

type Options struct {
	// BaseURL is the origin and path share links point at. Empty derives it from each request.
	BaseURL string
	Logger  *slog.Logger
	// Static is served at "/". Nil disables the front end.
	Static  fs.FS
	MaxBody int64
	Now     func() time.Time
}

type api struct {
	baseURL string
	log     *slog.Logger
	maxBody int64
	now     func() time.Time
}

// New builds the router.
func New(opts Options) http.Handler {
	a := &api{baseURL: opts.BaseURL, log: opts.Logger, maxBody: opts.MaxBody, now: opts.Now}
	if a.log == nil {
		a.log = slog.New(slog.DiscardHandler)
	}
	if a.maxBody <= 0 {
		a.maxBody = DefaultMaxBody
	}
	if a.now == nil {
		a.now = time.Now
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(a.log))
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", a.health)
		r.Get("/demo", a.demo)
		r.Get("/languages", a.languages)
		r.Post("/detect", a.detect)
		r.Post("/share", a.share)
		r.Post("/share/open", a.openShare)
		r.Post("/import", a.importFile)
		r.Post("/export", a.export)
		r.Post("/patch", a.patch)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, errors.New("no such endpoint"))
		})
	})
	if opts.Static != nil {
		r.Handle("/*", http.FileServerFS(opts.Static))
	}
	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
