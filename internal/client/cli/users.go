package cli

import (
	"context"

	"github.com/dmitrijs2005/devfeed/internal/client/feed"
	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

// ShowUser opens a user's profile.
func (a *App) ShowUser(ctx context.Context, args []string) error {
	id, err := parseID(args, "user <id>")
	if err != nil {
		return err
	}
	p, err := feed.LoadProfile(ctx, a.api, id, feed.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.profile = p
	a.printf("%s", formatProfile(p.User()))
	return nil
}

func (a *App) profileFor(ctx context.Context, id int64) (*feed.Profile, error) {
	if a.profile != nil && a.profile.User().ID == id {
		return a.profile, nil
	}
	p, err := feed.LoadProfile(ctx, a.api, id, feed.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.profile = p
	return p, nil
}

// setFollow drives the profile toward the wanted state. Nothing is sent when
// it is already there.
func (a *App) setFollow(ctx context.Context, args []string, want bool, usage string) error {
	id, err := parseID(args, usage)
	if err != nil {
		return err
	}
	p, err := a.profileFor(ctx, id)
	if err != nil {
		return err
	}

	u := p.User()
	if u.IsFollowing == want {
		a.printf("%s @%s\n", marker(want, "Already following", "Not following"), u.Username)
		return nil
	}
	if _, err := p.ToggleFollow(ctx); err != nil {
		return err
	}
	u = p.User()
	a.printf("%s @%s (%d followers)\n", marker(u.IsFollowing, "Following", "Unfollowed"), u.Username, u.FollowersCount)
	return nil
}

func (a *App) Follow(ctx context.Context, args []string) error {
	return a.setFollow(ctx, args, true, "follow <id>")
}

func (a *App) Unfollow(ctx context.Context, args []string) error {
	return a.setFollow(ctx, args, false, "unfollow <id>")
}

func (a *App) printUsers(users []models.User) {
	if len(users) == 0 {
		a.printf("Nobody here yet\n")
		return
	}
	for _, u := range users {
		a.printf("%s\n", formatUserLine(u))
	}
}

func (a *App) Followers(ctx context.Context, args []string) error {
	id, err := parseID(args, "followers <id>")
	if err != nil {
		return err
	}
	page, err := a.api.GetFollowers(ctx, id)
	if err != nil {
		return err
	}
	a.printUsers(page.Results)
	return nil
}

func (a *App) Following(ctx context.Context, args []string) error {
	id, err := parseID(args, "following <id>")
	if err != nil {
		return err
	}
	page, err := a.api.GetFollowing(ctx, id)
	if err != nil {
		return err
	}
	a.printUsers(page.Results)
	return nil
}
