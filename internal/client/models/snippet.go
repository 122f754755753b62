package models

import "time"

// Snippet is a shared piece of code.
type Snippet struct {
	ID          int64     `json:"id"`
	Author      User      `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Code        string    `json:"code,omitempty"`
	Language    string    `json:"language,omitempty"`
	Tags        []Tag     `json:"tags,omitempty"`
	LikesCount  int       `json:"likes_count"`
	ForksCount  int       `json:"forks_count"`
	ViewsCount  int       `json:"views_count"`
	IsLiked     bool      `json:"is_liked"`
	ForkedFrom  *int64    `json:"forked_from,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SnippetInput is the POST/PATCH body for /snippets/.
type SnippetInput struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Code        string   `json:"code,omitempty"`
	Language    string   `json:"language,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Notification is an activity item for the current user.
type Notification struct {
	ID               int64     `json:"id"`
	Actor            *User     `json:"actor,omitempty"`
	NotificationType string    `json:"notification_type"`
	Message          string    `json:"message"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}
