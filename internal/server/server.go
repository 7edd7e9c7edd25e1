// Package server assembles the HTTP surface: the editor, the gallery and
// the generate/enhance API.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/mermaidviz/internal/editor"
	"github.com/ziadkadry99/mermaidviz/internal/flows"
	"github.com/ziadkadry99/mermaidviz/internal/gallery"
)

// Config holds server configuration.
type Config struct {
	Addr           string
	AllowedOrigins []string      // empty means localhost only
	RequestTimeout time.Duration // 0 means 60s
}

// Server serves the editor UI and the diagram API.
type Server struct {
	cfg        Config
	flows      *flows.Service
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server. A nil flows service leaves the editor and gallery
// working and answers generate/enhance with 503.
func New(cfg Config, svc *flows.Service) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	s := &Server{cfg: cfg, flows: svc}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if len(s.cfg.AllowedOrigins) > 0 {
		corsOpts.AllowedOrigins = s.cfg.AllowedOrigins
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	editor.RegisterLiveRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))

		editor.RegisterRoutes(r)
		gallery.RegisterRoutes(r)
		if s.flows != nil {
			flows.RegisterRoutes(r, s.flows)
		} else {
			r.Post("/api/generate", unavailable)
			r.Post("/api/enhance", unavailable)
		}
	})

	return r
}

func unavailable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	w.Write([]byte(`{"error":"language model provider is not configured"}`))
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("server: listening on %s", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
