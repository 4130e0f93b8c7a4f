// Package session holds the client's authentication state. The session is an
// explicit object injected into the HTTP client and the CLI, created on
// login or signup and cleared on logout. Token expiry is not tracked here;
// an expired token simply surfaces as an auth error on the next call.
package session

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	mu    sync.RWMutex
	token string
}

func New() *Session {
	return &Session{}
}

// SetToken stores the access token received from login or signup.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the stored access token, empty when not authenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present. It says nothing about
// the token still being accepted by the server.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// UserID extracts the subject claim from the stored token without verifying
// the signature. The value is display-only; authorization always happens on
// the server.
func (s *Session) UserID() string {
	token := s.Token()
	if token == "" {
		return ""
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	return claims.Subject
}

// Clear drops the token, returning the session to the unauthenticated state.
func (s *Session) Clear() {
	s.SetToken("")
}
