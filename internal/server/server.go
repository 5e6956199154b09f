package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/submit"
	"github.com/jonathan/resume-builder/internal/transform"
	"github.com/jonathan/resume-builder/internal/types"
)

// ProfileGenerator produces an auto-fill profile for a target job title.
// *autofill.Assistant is the production implementation.
type ProfileGenerator interface {
	Generate(ctx context.Context, jobTitle, uiLanguage string) (*types.GeneratedProfile, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	sessions    *Registry
	builder     transform.Builder
	backend     *submit.Client
	generator   ProfileGenerator
	rateLimiter *ratelimit.Limiter

	payloadFormat string
	template      string
}

// Config holds server configuration
type Config struct {
	Port          int
	BackendURL    string
	PayloadFormat string
	Template      string

	// AllowImagePlaceholder enables the degraded image-upload mode.
	AllowImagePlaceholder bool

	// Generator may be nil, in which case the auto-fill endpoint reports
	// that the feature is not configured.
	Generator ProfileGenerator
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	builder, err := transform.New(cfg.PayloadFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to create payload builder: %w", err)
	}

	s := &Server{
		sessions: NewRegistry(),
		builder:  builder,
		backend: submit.NewClient(cfg.BackendURL, submit.Options{
			AllowPlaceholder: cfg.AllowImagePlaceholder,
		}),
		generator:     cfg.Generator,
		rateLimiter:   ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		payloadFormat: cfg.PayloadFormat,
		template:      cfg.Template,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)

	mux.HandleFunc("GET /sessions/{id}/draft", s.handleGetDraft)
	mux.HandleFunc("PUT /sessions/{id}/draft/basics", s.handleUpdateBasics)
	mux.HandleFunc("POST /sessions/{id}/draft/{collection}", s.handleAddEntry)
	mux.HandleFunc("PUT /sessions/{id}/draft/{collection}/{index}", s.handleUpdateEntry)
	mux.HandleFunc("DELETE /sessions/{id}/draft/{collection}/{index}", s.handleRemoveEntry)

	mux.HandleFunc("POST /sessions/{id}/autofill", s.handleAutofill)
	mux.HandleFunc("GET /sessions/{id}/review", s.handleReview)
	mux.HandleFunc("GET /sessions/{id}/payload", s.handlePayloadPreview)
	mux.HandleFunc("POST /sessions/{id}/submit", s.handleSubmit)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // submission waits on backend rendering
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Count(),
	})
}

// session resolves the {id} path value to an active session, writing the
// error response itself when the session does not exist.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	return session, true
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d", info.Limit, info.Remaining)

	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	})
}
