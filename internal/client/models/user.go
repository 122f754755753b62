// Package models defines the resource records exchanged with the DevFeed API.
// The client decodes them as-is; it does not validate their shape.
package models

import (
	"regexp"
	"strings"
	"time"
)

// User is a profile as returned by /users/ endpoints. Nested authors in posts,
// comments and snippets use the same record with fewer fields populated.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	FullName       string    `json:"full_name,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	Location       string    `json:"location,omitempty"`
	Website        string    `json:"website,omitempty"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	PostsCount     int       `json:"posts_count"`
	IsFollowing    bool      `json:"is_following"`
	CreatedAt      time.Time `json:"created_at"`
}

// DisplayName prefers the full name and falls back to the username.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// UserUpdate is the PATCH body for /users/:id/. Nil fields are left out.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
	Website   *string `json:"website,omitempty"`
}

// TokenPair is the body of a successful POST /token/.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Credentials is the POST /token/ body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the POST /users/ body.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// RegisterResponse is what POST /users/ returns. Tokens may be absent on
// servers that do not log the new user in.
type RegisterResponse struct {
	User   User       `json:"user"`
	Tokens *TokenPair `json:"tokens,omitempty"`
}

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate applies the registration form rules and returns a message per
// offending field. An empty map means the request can be sent.
func (r RegisterRequest) Validate() map[string]string {
	errs := make(map[string]string)

	switch {
	case r.Username == "":
		errs["username"] = "Username is required"
	case len(r.Username) < 3:
		errs["username"] = "Username must be at least 3 characters"
	case !usernamePattern.MatchString(r.Username):
		errs["username"] = "Username can only contain letters, numbers, underscores, and hyphens"
	}

	switch {
	case r.Email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(r.Email):
		errs["email"] = "Invalid email address"
	}

	if strings.TrimSpace(r.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}

	switch {
	case r.Password == "":
		errs["password"] = "Password is required"
	case len(r.Password) < 8:
		errs["password"] = "Password must be at least 8 characters"
	}

	switch {
	case r.PasswordConfirm == "":
		errs["password_confirm"] = "Please confirm your password"
	case r.Password != r.PasswordConfirm:
		errs["password_confirm"] = "Passwords do not match"
	}

	return errs
}
