// Package server serves the layout dashboard over HTTP.
//
// # Routes
//
//	GET  /                          dashboard page
//	GET  /api/study                 the loaded study
//	GET  /api/analysis              area comparison
//	GET  /api/placement             placement order of the loaded study
//	POST /api/placement             placement order of a posted dataset
//	GET  /api/charts/{kind}.{fmt}   area, plan or adjacency chart as svg, png or pdf
//	POST /api/recommendation        generated layout study
//	GET  /healthz                   liveness
//
// Errors are returned as JSON {"code": ..., "message": ...}. An invalid
// closeness rating is 422, other invalid input 400. When the text-generation
// service fails, the response also carries the fallback text the page shows
// in place of a recommendation.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lacima/plantlayout/pkg/pipeline"
	"github.com/lacima/plantlayout/pkg/study"
)

// Options configures a Server.
type Options struct {
	// Study is served by the read-only routes. Required.
	Study *study.Study

	// Runner does the work. Its Advisor may be nil, which makes
	// POST /api/recommendation answer 503 with fallback text.
	Runner *pipeline.Runner

	Logger *log.Logger

	// AdvisorTimeout bounds each recommendation request; zero means no limit.
	AdvisorTimeout time.Duration
}

// Server is the dashboard HTTP handler.
type Server struct {
	study          *study.Study
	runner         *pipeline.Runner
	logger         *log.Logger
	advisorTimeout time.Duration
	handler        http.Handler
}

// New builds the server and its routes.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	runner := opts.Runner
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{
		study:          opts.Study,
		runner:         runner,
		logger:         logger,
		advisorTimeout: opts.AdvisorTimeout,
	}
	s.handler = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/study", s.handleStudy)
		r.Get("/analysis", s.handleAnalysis)
		r.Get("/placement", s.handlePlacement)
		r.Post("/placement", s.handleRankDataset)
		r.Get("/charts/{kind}.{format}", s.handleChart)
		r.Post("/recommendation", s.handleRecommendation)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Code: "METHOD_NOT_ALLOWED", Message: r.Method + " not allowed on " + r.URL.Path})
	})

	return r
}

// ServeConfig holds listener settings for [Server.ListenAndServe].
type ServeConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg ServeConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down dashboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}
