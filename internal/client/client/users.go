package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

func (c *RESTClient) GetUsers(ctx context.Context, params Params) (*models.Page[models.User], error) {
	return getPage[models.User](ctx, c, "/users/", params)
}

func (c *RESTClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := c.Get(ctx, fmt.Sprintf("/users/%d/", id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *RESTClient) UpdateUser(ctx context.Context, id int64, data models.UserUpdate) (*models.User, error) {
	var u models.User
	if err := c.Patch(ctx, fmt.Sprintf("/users/%d/", id), data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *RESTClient) FollowUser(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/users/%d/follow/", id), struct{}{}, nil)
}

func (c *RESTClient) UnfollowUser(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/users/%d/unfollow/", id), struct{}{}, nil)
}

func (c *RESTClient) GetFollowers(ctx context.Context, id int64) (*models.Page[models.User], error) {
	return getPage[models.User](ctx, c, fmt.Sprintf("/users/%d/followers/", id), Params{})
}

func (c *RESTClient) GetFollowing(ctx context.Context, id int64) (*models.Page[models.User], error) {
	return getPage[models.User](ctx, c, fmt.Sprintf("/users/%d/following/", id), Params{})
}
