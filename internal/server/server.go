package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/namesmith/namesmith/internal/config"
	"github.com/namesmith/namesmith/internal/personas"
	"github.com/namesmith/namesmith/internal/pipeline"
	"github.com/namesmith/namesmith/internal/server/middleware"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	pipeline   *pipeline.Pipeline
	registry   *personas.Registry
	jwtService *JWTService
	accessCfg  *config.AccessConfig
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance over an already-constructed pipeline and
// registry. JWT and access-password configuration come from the environment;
// missing configuration is a terminal error before anything is served.
func New(cfg Config, pipe *pipeline.Pipeline, registry *personas.Registry) (*Server, error) {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	accessCfg, err := config.NewAccessConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create access config: %w", err)
	}

	s := &Server{
		pipeline:   pipe,
		registry:   registry,
		jwtService: NewJWTService(jwtConfig),
		accessCfg:  accessCfg,
	}

	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("POST /generate", requireAuth(http.HandlerFunc(s.handleGenerate)))
	mux.Handle("POST /generate/multi", requireAuth(http.HandlerFunc(s.handleGenerateMulti)))
	mux.Handle("GET /personas", requireAuth(http.HandlerFunc(s.handleListPersonas)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for pipeline runs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
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
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

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
