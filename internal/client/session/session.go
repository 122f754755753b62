// Package session holds the client's bearer credential pair.
//
// A Session is created once per process with Open, which reads the pair back
// from its Store, and is then handed by pointer to the REST client. Every
// write goes through Set or Clear, which update memory and the Store under
// one mutex, so concurrent logins and logouts are serialized and the last
// call wins.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by Claims when the access token is absent or is not
// a decodable JWT.
var ErrNotJWT = errors.New("access token is not a JWT")

type Session struct {
	mu      sync.RWMutex
	store   Store
	access  string
	refresh string
}

// Open loads the stored pair. A nil store keeps the session in memory.
func Open(ctx context.Context, store Store) (*Session, error) {
	if store == nil {
		store = &MemoryStore{}
	}
	access, refresh, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &Session{store: store, access: access, refresh: refresh}, nil
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// Authenticated reports whether an access token is held.
func (s *Session) Authenticated() bool {
	return s.AccessToken() != ""
}

// Set replaces the pair and persists it.
func (s *Session) Set(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = access, refresh
	if err := s.store.Save(ctx, access, refresh); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear forgets both tokens, in memory and in the store.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = "", ""
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Claims is what the client can read from an access token without the
// server's key.
type Claims struct {
	jwt.RegisteredClaims
	UserID models.Text `json:"user_id,omitempty"`
}

// Claims decodes the access token without verifying its signature.
func (s *Session) Claims() (*Claims, error) {
	token := s.AccessToken()
	if token == "" {
		return nil, ErrNotJWT
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}
	return claims, nil
}

// Expired reports whether the access token carries an exp claim that lies
// before now. Opaque tokens never count as expired.
func (s *Session) Expired(now time.Time) bool {
	claims, err := s.Claims()
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return now.After(claims.ExpiresAt.Time)
}
