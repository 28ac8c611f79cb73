package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/eventease/eventease/internal/auth"
	"github.com/eventease/eventease/internal/events"
	"github.com/eventease/eventease/internal/handler"
	"github.com/eventease/eventease/internal/middleware"
	"github.com/eventease/eventease/internal/storage"
)

// Config holds everything the page server needs to reach the hosted backend.
type Config struct {
	// BackendURL and APIKey identify the hosted project; JWTSecret verifies
	// the access tokens it issues.
	BackendURL string
	APIKey     string
	JWTSecret  string

	Storage storage.Config
}

type Server struct {
	authH       *handler.AuthHandler
	eventH      *handler.EventHandler
	editH       *handler.EventEditHandler
	jwtSecret   []byte
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Server {
	authClient := auth.NewClient(cfg.BackendURL, cfg.APIKey)
	eventsClient := events.NewClient(cfg.BackendURL, cfg.APIKey)
	storageSvc := storage.NewService(cfg.Storage)

	return &Server{
		authH:       handler.NewAuthHandler(authClient, logger.With("component", "auth")),
		eventH:      handler.NewEventHandler(eventsClient, logger.With("component", "events")),
		editH:       handler.NewEventEditHandler(eventsClient, storageSvc, logger.With("component", "event_edit")),
		jwtSecret:   []byte(cfg.JWTSecret),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("GET /login", s.authH.LoginPage)
	loginLimit := middleware.RateLimit(s.rateLimiter, middleware.LoginKey, 10, time.Minute)
	outerMux.Handle("POST /login", loginLimit(http.HandlerFunc(s.authH.Login)))
	outerMux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.jwtSecret)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /logout", s.authH.Logout)

	// Event listing/management view
	mux.HandleFunc("GET /", s.rootRedirect)
	mux.HandleFunc("GET /events", s.eventH.EventsPage)
	mux.HandleFunc("GET /partials/events", s.eventH.EventListPartial)
	mux.HandleFunc("DELETE /partials/events/{id}", s.eventH.Delete)

	// Event edit view
	mux.HandleFunc("GET /events/{id}/edit", s.editH.EditPage)
	mux.HandleFunc("PUT /partials/events/{id}", s.editH.Update)
	mux.HandleFunc("POST /partials/events/{id}/image", s.editH.ImageUpload)
}

func (s *Server) rootRedirect(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}
