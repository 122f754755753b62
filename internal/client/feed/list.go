package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/devfeed/internal/client/client"
	"github.com/dmitrijs2005/devfeed/internal/client/models"
	"github.com/dmitrijs2005/devfeed/internal/logging"
)

// PostsAPI is what a List needs from the API client.
type PostsAPI interface {
	GetPosts(ctx context.Context, params client.Params) (*models.Page[models.Post], error)
	LikePost(ctx context.Context, id int64) error
	UnlikePost(ctx context.Context, id int64) error
	BookmarkPost(ctx context.Context, id int64) error
	UnbookmarkPost(ctx context.Context, id int64) error
}

// List is the in-memory state of a post feed.
type List struct {
	api     PostsAPI
	logger  logging.Logger
	tracker Tracker

	mu      sync.RWMutex
	posts   []models.Post
	count   int
	hasNext bool
}

func NewList(api PostsAPI, opts ...Option) *List {
	o := newOptions(opts)
	return &List{api: api, logger: o.logger}
}

// Load fetches a page. Page 1 (or no page parameter) replaces the list,
// later pages are appended.
func (l *List) Load(ctx context.Context, params client.Params) error {
	page, err := l.api.GetPosts(ctx, params)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if p := params.Get("page"); p == "" || p == "1" {
		l.posts = append([]models.Post(nil), page.Results...)
	} else {
		l.posts = append(l.posts, page.Results...)
	}
	l.count = page.Count
	l.hasNext = page.HasNext()
	return nil
}

// Prepend puts a freshly created post at the top.
func (l *List) Prepend(p models.Post) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.posts = append([]models.Post{p}, l.posts...)
	l.count++
}

// Remove drops post id, e.g. after it was deleted on the server.
func (l *List) Remove(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.posts = append(l.posts[:i], l.posts[i+1:]...)
	if l.count > 0 {
		l.count--
	}
	return true
}

// Posts returns a copy of the current list.
func (l *List) Posts() []models.Post {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Post(nil), l.posts...)
}

func (l *List) Post(id int64) (models.Post, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.index(id); i >= 0 {
		return l.posts[i], true
	}
	return models.Post{}, false
}

// Count is the server-side total reported by the last Load.
func (l *List) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count
}

func (l *List) HasNext() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hasNext
}

func (l *List) index(id int64) int {
	for i := range l.posts {
		if l.posts[i].ID == id {
			return i
		}
	}
	return -1
}

// ToggleLike likes or unlikes post id depending on its current flag.
func (l *List) ToggleLike(ctx context.Context, id int64) (State, error) {
	return run(ctx, &l.tracker, l.logger, toggleOp{
		key:   fmt.Sprintf("like:%d", id),
		read:  l.reader(id, likeOf),
		write: l.writer(id, setLike),
		call: func(ctx context.Context, wasLiked bool) error {
			if wasLiked {
				return l.api.UnlikePost(ctx, id)
			}
			return l.api.LikePost(ctx, id)
		},
	})
}

// ToggleBookmark bookmarks or unbookmarks post id.
func (l *List) ToggleBookmark(ctx context.Context, id int64) (State, error) {
	return run(ctx, &l.tracker, l.logger, toggleOp{
		key:   fmt.Sprintf("bookmark:%d", id),
		read:  l.reader(id, bookmarkOf),
		write: l.writer(id, setBookmark),
		call: func(ctx context.Context, wasBookmarked bool) error {
			if wasBookmarked {
				return l.api.UnbookmarkPost(ctx, id)
			}
			return l.api.BookmarkPost(ctx, id)
		},
	})
}

func (l *List) reader(id int64, get func(*models.Post) Toggle) func() (Toggle, bool) {
	return func() (Toggle, bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		i := l.index(id)
		if i < 0 {
			return Toggle{}, false
		}
		return get(&l.posts[i]), true
	}
}

// writer ignores posts that left the list while the call was running.
func (l *List) writer(id int64, set func(*models.Post, Toggle)) func(Toggle) {
	return func(t Toggle) {
		l.mu.Lock()
		defer l.mu.Unlock()
		if i := l.index(id); i >= 0 {
			set(&l.posts[i], t)
		}
	}
}

func likeOf(p *models.Post) Toggle { return Toggle{Active: p.IsLiked, Count: p.LikesCount} }

func setLike(p *models.Post, t Toggle) { p.IsLiked, p.LikesCount = t.Active, t.Count }

func bookmarkOf(p *models.Post) Toggle {
	return Toggle{Active: p.IsBookmarked, Count: p.BookmarksCount}
}

func setBookmark(p *models.Post, t Toggle) { p.IsBookmarked, p.BookmarksCount = t.Active, t.Count }
