// Package server exposes the gradebook engine over HTTP for the UI layer:
// workbook upload or cloud fetch, student login, and grade queries, with a
// TTL-bound session per loaded workbook.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/necbot/gradebook-go/pkg/gradebook"
)

const sessionHeader = "X-Session-ID"

// Server holds the session store and login limiter behind the HTTP API.
type Server struct {
	cfg      Config
	sessions *cache.Cache
	limiter  *loginLimiter
}

// New creates a Server. Sessions expire after cfg.SessionTTL of disuse; a
// new upload replaces nothing, it simply creates a fresh session.
func New(cfg Config) *Server {
	s := &Server{
		cfg:      cfg,
		sessions: cache.New(cfg.SessionTTL, 10*time.Minute),
		limiter:  newLoginLimiter(),
	}
	s.limiter.StartCleanup(5 * time.Minute)
	return s
}

// HTTPServer wraps the router in an http.Server with sane timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.RegisterRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// createSession stores a loaded gradebook and returns its session ID.
func (s *Server) createSession(book *gradebook.Gradebook) string {
	id := uuid.NewString()
	s.sessions.Set(id, book, cache.DefaultExpiration)
	return id
}

// session resolves a session ID, refreshing its TTL on use.
func (s *Server) session(id string) (*gradebook.Gradebook, bool) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	s.sessions.Set(id, v, cache.DefaultExpiration)
	return v.(*gradebook.Gradebook), true
}
