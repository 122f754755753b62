// Package services contains application services for the DevFeed client.
// This file defines the authentication service: login followed by a profile
// fetch, registration with automatic login, restoring the user of a stored
// session, and logout.
package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/devfeed/internal/client/client"
	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: obtain tokens, then fetch and remember the current user.
//   - Register: validate locally, create the account, end up logged in.
//   - LoadUser: fetch the user of an already stored token; on failure the
//     tokens are dropped.
//   - Logout: forget tokens and the cached user.
//   - User: the user remembered by the last successful call, or nil.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	LoadUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	User() *models.User
}

// ValidationError lists registration fields rejected before any request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid registration: " + strings.Join(parts, "; ")
}

type authService struct {
	client client.Client

	mu   sync.RWMutex
	user *models.User
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) setUser(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

func (a *authService) User() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	if _, err := a.client.Login(ctx, username, string(password)); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("get current user error: %w", err)
	}
	a.setUser(u)
	return u, nil
}

// Register creates the account. When the server answers with a token pair
// the pair is stored and the returned user is used as is; otherwise the new
// credentials are used to log in.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	resp, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	if resp.Tokens != nil && resp.Tokens.Access != "" {
		if err := a.client.StoreTokens(ctx, *resp.Tokens); err != nil {
			return nil, fmt.Errorf("store tokens error: %w", err)
		}
		u := resp.User
		a.setUser(&u)
		return &u, nil
	}

	return a.Login(ctx, req.Username, []byte(req.Password))
}

// LoadUser is called at startup when a token was found in the local store.
func (a *authService) LoadUser(ctx context.Context) (*models.User, error) {
	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		if clearErr := a.client.Logout(ctx); clearErr != nil {
			return nil, fmt.Errorf("load user error: %w (clear tokens: %v)", err, clearErr)
		}
		return nil, fmt.Errorf("load user error: %w", err)
	}
	a.setUser(u)
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.setUser(nil)
	return a.client.Logout(ctx)
}
