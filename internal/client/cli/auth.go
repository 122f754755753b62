package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
	"github.com/dmitrijs2005/devfeed/internal/client/session"
	"github.com/dmitrijs2005/devfeed/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the registration form and creates the account. On
// success the user ends up logged in.
func (a *App) Register(ctx context.Context, _ []string) error {
	var req models.RegisterRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Username", &req.Username},
		{"Email", &req.Email},
		{"First name", &req.FirstName},
		{"Last name", &req.LastName},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	req.Password, req.PasswordConfirm = string(password), string(confirm)

	u, err := a.authService.Register(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Welcome, %s!\n", u.DisplayName())
	return nil
}

// Login prompts for credentials and authenticates. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "login successful", "user", u.Username)
	a.printf("Logged in as %s\n", u.Username)
	return nil
}

// Logout forgets the stored tokens.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.post, a.profile = nil, nil
	a.printf("Logged out\n")
	return nil
}

// Whoami prints the current user and what the access token says about
// itself.
func (a *App) Whoami(_ context.Context, _ []string) error {
	if u := a.authService.User(); u != nil {
		a.printf("%s (@%s, id %d)\n", u.DisplayName(), u.Username, u.ID)
	}

	claims, err := a.session.Claims()
	if errors.Is(err, session.ErrNotJWT) {
		a.printf("token: opaque\n")
		return nil
	}
	if err != nil {
		return err
	}
	if claims.UserID != "" {
		a.printf("token user id: %s\n", claims.UserID)
	}
	if claims.ExpiresAt != nil {
		state := "valid"
		if a.session.Expired(time.Now()) {
			state = "expired"
		}
		a.printf("token expires: %s (%s)\n", claims.ExpiresAt.Time.Local().Format(time.RFC1123), state)
	}
	return nil
}
