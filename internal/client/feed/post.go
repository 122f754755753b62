package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
	"github.com/dmitrijs2005/devfeed/internal/logging"
)

// PostAPI is what a PostView needs from the API client.
type PostAPI interface {
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	LikePost(ctx context.Context, id int64) error
	UnlikePost(ctx context.Context, id int64) error
	BookmarkPost(ctx context.Context, id int64) error
	UnbookmarkPost(ctx context.Context, id int64) error
	CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error)
}

// PostView is a single post with its comments.
type PostView struct {
	api     PostAPI
	logger  logging.Logger
	tracker Tracker

	mu   sync.RWMutex
	post models.Post
}

func NewPostView(api PostAPI, post models.Post, opts ...Option) *PostView {
	o := newOptions(opts)
	return &PostView{api: api, logger: o.logger, post: post}
}

func LoadPostView(ctx context.Context, api PostAPI, id int64, opts ...Option) (*PostView, error) {
	p, err := api.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewPostView(api, *p, opts...), nil
}

// Post returns a copy of the post, comments included.
func (v *PostView) Post() models.Post {
	v.mu.RLock()
	defer v.mu.RUnlock()
	p := v.post
	p.Comments = append([]models.Comment(nil), v.post.Comments...)
	return p
}

func (v *PostView) ToggleLike(ctx context.Context) (State, error) {
	id := v.Post().ID
	return run(ctx, &v.tracker, v.logger, toggleOp{
		key:   fmt.Sprintf("like:%d", id),
		read:  v.reader(likeOf),
		write: v.writer(setLike),
		call: func(ctx context.Context, wasLiked bool) error {
			if wasLiked {
				return v.api.UnlikePost(ctx, id)
			}
			return v.api.LikePost(ctx, id)
		},
	})
}

func (v *PostView) ToggleBookmark(ctx context.Context) (State, error) {
	id := v.Post().ID
	return run(ctx, &v.tracker, v.logger, toggleOp{
		key:   fmt.Sprintf("bookmark:%d", id),
		read:  v.reader(bookmarkOf),
		write: v.writer(setBookmark),
		call: func(ctx context.Context, wasBookmarked bool) error {
			if wasBookmarked {
				return v.api.UnbookmarkPost(ctx, id)
			}
			return v.api.BookmarkPost(ctx, id)
		},
	})
}

// AddComment posts content under the post. Blank content is ignored and
// returns (nil, nil). The comment is appended only after the server accepts
// it.
func (v *PostView) AddComment(ctx context.Context, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	id := v.Post().ID
	c, err := v.api.CreateComment(ctx, models.CommentInput{Post: id, Content: content})
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.post.Comments = append(v.post.Comments, *c)
	v.post.CommentsCount++
	return c, nil
}

func (v *PostView) reader(get func(*models.Post) Toggle) func() (Toggle, bool) {
	return func() (Toggle, bool) {
		v.mu.RLock()
		defer v.mu.RUnlock()
		return get(&v.post), true
	}
}

func (v *PostView) writer(set func(*models.Post, Toggle)) func(Toggle) {
	return func(t Toggle) {
		v.mu.Lock()
		defer v.mu.Unlock()
		set(&v.post, t)
	}
}
