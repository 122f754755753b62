package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

// getPage fetches a list endpoint and unwraps the envelope, accepting a bare
// array as a single page.
func getPage[T any](ctx context.Context, c *RESTClient, path string, params Params) (*models.Page[T], error) {
	raw, err := c.Raw(ctx, http.MethodGet, withQuery(path, params), nil)
	if err != nil {
		return nil, err
	}
	return models.DecodePage[T](raw)
}
