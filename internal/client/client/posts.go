package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

func (c *RESTClient) GetPosts(ctx context.Context, params Params) (*models.Page[models.Post], error) {
	return getPage[models.Post](ctx, c, "/posts/", params)
}

func (c *RESTClient) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	if err := c.Get(ctx, fmt.Sprintf("/posts/%d/", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error) {
	var p models.Post
	if err := c.Post(ctx, "/posts/", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	var p models.Post
	if err := c.Patch(ctx, fmt.Sprintf("/posts/%d/", id), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) DeletePost(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/posts/%d/", id))
}

func (c *RESTClient) postAction(ctx context.Context, id int64, action string) error {
	return c.Post(ctx, fmt.Sprintf("/posts/%d/%s/", id, action), struct{}{}, nil)
}

func (c *RESTClient) LikePost(ctx context.Context, id int64) error {
	return c.postAction(ctx, id, "like")
}

func (c *RESTClient) UnlikePost(ctx context.Context, id int64) error {
	return c.postAction(ctx, id, "unlike")
}

func (c *RESTClient) BookmarkPost(ctx context.Context, id int64) error {
	return c.postAction(ctx, id, "bookmark")
}

func (c *RESTClient) UnbookmarkPost(ctx context.Context, id int64) error {
	return c.postAction(ctx, id, "unbookmark")
}

func (c *RESTClient) CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error) {
	var cm models.Comment
	if err := c.Post(ctx, "/posts/comments/", in, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}
