package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
	"github.com/dmitrijs2005/devfeed/internal/logging"
)

// FollowAPI is what a Profile needs from the API client.
type FollowAPI interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	FollowUser(ctx context.Context, id int64) error
	UnfollowUser(ctx context.Context, id int64) error
}

// Profile is the view state of another user's page.
type Profile struct {
	api     FollowAPI
	logger  logging.Logger
	tracker Tracker

	mu   sync.RWMutex
	user models.User
}

func NewProfile(api FollowAPI, user models.User, opts ...Option) *Profile {
	o := newOptions(opts)
	return &Profile{api: api, logger: o.logger, user: user}
}

// LoadProfile fetches user id and wraps it in a Profile.
func LoadProfile(ctx context.Context, api FollowAPI, id int64, opts ...Option) (*Profile, error) {
	u, err := api.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewProfile(api, *u, opts...), nil
}

func (p *Profile) User() models.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.user
}

// ToggleFollow follows or unfollows depending on is_following and moves
// followers_count with it.
func (p *Profile) ToggleFollow(ctx context.Context) (State, error) {
	id := p.User().ID
	return run(ctx, &p.tracker, p.logger, toggleOp{
		key: fmt.Sprintf("follow:%d", id),
		read: func() (Toggle, bool) {
			p.mu.RLock()
			defer p.mu.RUnlock()
			return Toggle{Active: p.user.IsFollowing, Count: p.user.FollowersCount}, true
		},
		write: func(t Toggle) {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.user.IsFollowing, p.user.FollowersCount = t.Active, t.Count
		},
		call: func(ctx context.Context, wasFollowing bool) error {
			if wasFollowing {
				return p.api.UnfollowUser(ctx, id)
			}
			return p.api.FollowUser(ctx, id)
		},
	})
}
