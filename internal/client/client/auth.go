package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

// Login exchanges credentials for a token pair and stores it in the session.
func (c *RESTClient) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	var pair models.TokenPair
	if err := c.Post(ctx, "/token/", models.Credentials{Username: username, Password: password}, &pair); err != nil {
		return nil, err
	}
	if err := c.session.Set(ctx, pair.Access, pair.Refresh); err != nil {
		return nil, fmt.Errorf("store tokens: %w", err)
	}
	return &pair, nil
}

// Register creates an account. It does not touch the session; see
// services.AuthService for the register-then-login flow.
func (c *RESTClient) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := c.Post(ctx, "/users/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout forgets the stored tokens. The server is not contacted.
func (c *RESTClient) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

// StoreTokens puts an externally obtained pair (e.g. from a registration
// response) into the session.
func (c *RESTClient) StoreTokens(ctx context.Context, pair models.TokenPair) error {
	return c.session.Set(ctx, pair.Access, pair.Refresh)
}

func (c *RESTClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.Get(ctx, "/users/me/", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
