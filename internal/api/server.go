// Package api exposes the gem board over a JSON HTTP API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"GemSentinel/internal/model"
	"GemSentinel/internal/scheduler"
	"GemSentinel/internal/screener"
)

const maxLimit = 250

// Board is the part of the scheduler the API reads from.
type Board interface {
	Board(opts screener.Options) (*model.ScanResult, error)
	Refresh(ctx context.Context) (*model.Snapshot, error)
}

// Server is the HTTP API server.
type Server struct {
	router      chi.Router
	board       Board
	defaults    screener.Options
	corsOrigins []string
}

// NewServer creates a server with all routes and middleware. defaults fill
// any query parameter the client leaves out.
func NewServer(board Board, defaults screener.Options, corsOrigins []string) *Server {
	s := &Server{
		board:       board,
		defaults:    defaults,
		corsOrigins: corsOrigins,
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] HTTP API listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[INFO] shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := []string{"*"}
	if len(s.corsOrigins) > 0 {
		origins = s.corsOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/gems", s.handleGems)
		r.Get("/chart", s.handleChart)
		r.Get("/criteria", s.handleCriteria)
		r.Post("/scan", s.handleScan)
	})

	return r
}

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CriteriaResponse lists the active filter checks.
type CriteriaResponse struct {
	Strict   bool     `json:"strict"`
	Criteria []string `json:"criteria"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (s *Server) handleGems(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeBoard(w, opts)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	opts := s.defaults
	opts.Field = model.FieldPotentialScore
	opts.Direction = model.Desc
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := parseLimit(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.Limit = n
	}

	res, err := s.board.Board(opts)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: res.Chart})
}

func (s *Server) handleCriteria(w http.ResponseWriter, r *http.Request) {
	strict, err := s.parseStrict(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    CriteriaResponse{Strict: strict, Criteria: criteriaFor(strict).Describe()},
	})
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if _, err := s.board.Refresh(r.Context()); err != nil {
		log.Printf("[ERROR] refresh via API: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.writeBoard(w, s.defaults)
}

func (s *Server) writeBoard(w http.ResponseWriter, opts screener.Options) {
	res, err := s.board.Board(opts)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: res})
}

func (s *Server) parseOptions(r *http.Request) (screener.Options, error) {
	q := r.URL.Query()
	opts := s.defaults

	if v := q.Get("sort"); v != "" {
		f, err := model.ParseField(v)
		if err != nil {
			return opts, err
		}
		opts.Field = f
	}
	if v := q.Get("dir"); v != "" {
		d, err := model.ParseDirection(v)
		if err != nil {
			return opts, err
		}
		opts.Direction = d
	}
	if v := q.Get("limit"); v != "" {
		n, err := parseLimit(v)
		if err != nil {
			return opts, err
		}
		opts.Limit = n
	}
	if q.Has("strict") {
		strict, err := s.parseStrict(r)
		if err != nil {
			return opts, err
		}
		opts.Criteria = criteriaFor(strict)
	}
	return opts, nil
}

func (s *Server) parseStrict(r *http.Request) (bool, error) {
	v := r.URL.Query().Get("strict")
	if v == "" {
		return s.defaults.Criteria.EnforceMomentum && s.defaults.Criteria.EnforceSupply, nil
	}
	strict, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid strict value %q", v)
	}
	return strict, nil
}

func parseLimit(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > maxLimit {
		return 0, fmt.Errorf("limit must be between 1 and %d", maxLimit)
	}
	return n, nil
}

func criteriaFor(strict bool) screener.Criteria {
	if strict {
		return screener.StrictCriteria()
	}
	return screener.DefaultCriteria()
}

func writeBoardError(w http.ResponseWriter, err error) {
	if errors.Is(err, scheduler.ErrNoSnapshot) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] write JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
