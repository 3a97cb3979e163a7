// Package bankserver serves question bank files from a directory over the
// same HTTP surface the quiz client fetches from.
package bankserver

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/quizzer/internal/bank"
)

// courseCodePattern limits codes to a safe file name stem.
var courseCodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _.-]{0,63}$`)

// Server serves <dir>/<code>.json at GET /courses/{code}.
type Server struct {
	dir    string
	logger *slog.Logger
}

// New creates a Server reading banks from dir.
func New(dir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &Server{dir: dir, logger: logger}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(s.logger), middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/courses/{code}", s.getCourse)
	return r
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if !courseCodePattern.MatchString(code) || code != filepath.Base(code) {
		http.Error(w, "invalid course code", http.StatusBadRequest)
		return
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, code+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		http.Error(w, "course not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("read bank", "code", code, "error", err)
		http.Error(w, "failed to read bank", http.StatusInternalServerError)
		return
	}

	// Refuse to serve files the client would reject anyway.
	if _, err := bank.Decode(raw); err != nil {
		s.logger.Error("invalid bank on disk", "code", code, "error", err)
		http.Error(w, "invalid bank", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(raw); err != nil {
		s.logger.Warn("write bank response", "code", code, "error", err)
	}
}

// requestLogger logs one structured line per request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
