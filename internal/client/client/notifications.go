package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

func (c *RESTClient) GetNotifications(ctx context.Context, params Params) (*models.Page[models.Notification], error) {
	return getPage[models.Notification](ctx, c, "/notifications/", params)
}

func (c *RESTClient) GetUnreadNotifications(ctx context.Context) (*models.Page[models.Notification], error) {
	return getPage[models.Notification](ctx, c, "/notifications/unread/", Params{})
}

func (c *RESTClient) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/notifications/%d/mark_read/", id), struct{}{}, nil)
}

func (c *RESTClient) MarkAllNotificationsRead(ctx context.Context) error {
	return c.Post(ctx, "/notifications/mark_all_read/", struct{}{}, nil)
}
