package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

func (c *RESTClient) GetSnippets(ctx context.Context, params Params) (*models.Page[models.Snippet], error) {
	return getPage[models.Snippet](ctx, c, "/snippets/", params)
}

func (c *RESTClient) GetSnippet(ctx context.Context, id int64) (*models.Snippet, error) {
	var s models.Snippet
	if err := c.Get(ctx, fmt.Sprintf("/snippets/%d/", id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *RESTClient) CreateSnippet(ctx context.Context, in models.SnippetInput) (*models.Snippet, error) {
	var s models.Snippet
	if err := c.Post(ctx, "/snippets/", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *RESTClient) UpdateSnippet(ctx context.Context, id int64, in models.SnippetInput) (*models.Snippet, error) {
	var s models.Snippet
	if err := c.Patch(ctx, fmt.Sprintf("/snippets/%d/", id), in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *RESTClient) DeleteSnippet(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/snippets/%d/", id))
}

func (c *RESTClient) LikeSnippet(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/snippets/%d/like/", id), struct{}{}, nil)
}

func (c *RESTClient) UnlikeSnippet(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/snippets/%d/unlike/", id), struct{}{}, nil)
}

// ForkSnippet copies a snippet into the current user's account and returns
// the copy.
func (c *RESTClient) ForkSnippet(ctx context.Context, id int64) (*models.Snippet, error) {
	var s models.Snippet
	if err := c.Post(ctx, fmt.Sprintf("/snippets/%d/fork/", id), struct{}{}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *RESTClient) GetTrendingSnippets(ctx context.Context) (*models.Page[models.Snippet], error) {
	return getPage[models.Snippet](ctx, c, "/snippets/trending/", Params{})
}
