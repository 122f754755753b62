package client

import (
	"context"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

// Client is the DevFeed API surface used by the services and the CLI.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
	Logout(ctx context.Context) error
	StoreTokens(ctx context.Context, pair models.TokenPair) error
	CurrentUser(ctx context.Context) (*models.User, error)

	GetUsers(ctx context.Context, params Params) (*models.Page[models.User], error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, data models.UserUpdate) (*models.User, error)
	FollowUser(ctx context.Context, id int64) error
	UnfollowUser(ctx context.Context, id int64) error
	GetFollowers(ctx context.Context, id int64) (*models.Page[models.User], error)
	GetFollowing(ctx context.Context, id int64) (*models.Page[models.User], error)

	GetPosts(ctx context.Context, params Params) (*models.Page[models.Post], error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	LikePost(ctx context.Context, id int64) error
	UnlikePost(ctx context.Context, id int64) error
	BookmarkPost(ctx context.Context, id int64) error
	UnbookmarkPost(ctx context.Context, id int64) error
	CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error)

	GetSnippets(ctx context.Context, params Params) (*models.Page[models.Snippet], error)
	GetSnippet(ctx context.Context, id int64) (*models.Snippet, error)
	CreateSnippet(ctx context.Context, in models.SnippetInput) (*models.Snippet, error)
	UpdateSnippet(ctx context.Context, id int64, in models.SnippetInput) (*models.Snippet, error)
	DeleteSnippet(ctx context.Context, id int64) error
	LikeSnippet(ctx context.Context, id int64) error
	UnlikeSnippet(ctx context.Context, id int64) error
	ForkSnippet(ctx context.Context, id int64) (*models.Snippet, error)
	GetTrendingSnippets(ctx context.Context) (*models.Page[models.Snippet], error)

	GetNotifications(ctx context.Context, params Params) (*models.Page[models.Notification], error)
	GetUnreadNotifications(ctx context.Context) (*models.Page[models.Notification], error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) error
}

var _ Client = (*RESTClient)(nil)
