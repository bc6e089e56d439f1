// Package server exposes the extraction pipeline over HTTP. The API accepts
// resume uploads and pasted text, and (when a database is configured) serves
// stored extraction records back to callers.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/podume/resume-extractor/internal/config"
	"github.com/podume/resume-extractor/internal/server/middleware"
	"github.com/podume/resume-extractor/internal/server/ratelimit"
	"github.com/podume/resume-extractor/internal/store"
)

// Server wires the HTTP surface together: handlers, auth, rate limiting,
// and the optional persistence layer.
type Server struct {
	httpServer    *http.Server
	store         *store.Store
	jwtService    *JWTService
	limiter       *ratelimit.Limiter
	lineTolerance float64
	port          int
}

// Options configures a Server. Store and JWT are both optional: without a
// store the record endpoints return 404, without a JWT service all endpoints
// are unauthenticated.
type Options struct {
	Port          int
	LineTolerance float64
	Store         *store.Store
	JWT           *config.JWTConfig
	RateLimit     *ratelimit.Config
}

// New creates a server with its routes and middleware configured.
func New(opts Options) *Server {
	s := &Server{
		store:         opts.Store,
		lineTolerance: opts.LineTolerance,
		limiter:       ratelimit.NewLimiter(opts.RateLimit),
		port:          opts.Port,
	}
	if opts.JWT != nil {
		s.jwtService = NewJWTService(opts.JWT)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("POST /extract", s.authenticated(http.HandlerFunc(s.handleExtract)))
	mux.Handle("POST /extract/text", s.authenticated(http.HandlerFunc(s.handleExtractText)))
	mux.Handle("GET /extractions", s.authenticated(http.HandlerFunc(s.handleListExtractions)))
	mux.Handle("GET /extractions/{id}", s.authenticated(http.HandlerFunc(s.handleGetExtraction)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// authenticated wraps a handler with bearer-token auth when a JWT service is
// configured, and passes it through untouched otherwise.
func (s *Server) authenticated(next http.Handler) http.Handler {
	if s.jwtService == nil {
		return next
	}
	return middleware.Auth(s.jwtService.AsTokenValidator())(next)
}

// Start runs the server until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Println("server stopped")
	return nil
}

// withCORS adds permissive CORS headers and answers preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s (%v)", clientAddr(r), r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit rejects requests that exceed the per-client endpoint limits.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientAddr(r), r.URL.Path, r.Method) {
			errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientAddr identifies the client for rate limiting and logging, honoring
// X-Forwarded-For when the server runs behind a proxy.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
