package cli

import (
	"context"

	"github.com/dmitrijs2005/devfeed/internal/client/client"
	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

func (a *App) printNotifications(items []models.Notification) {
	if len(items) == 0 {
		a.printf("No notifications\n")
		return
	}
	for _, n := range items {
		a.printf("%s\n", formatNotification(n))
	}
}

func (a *App) Notifications(ctx context.Context, _ []string) error {
	page, err := a.api.GetNotifications(ctx, client.Params{})
	if err != nil {
		return err
	}
	a.printNotifications(page.Results)
	return nil
}

func (a *App) Unread(ctx context.Context, _ []string) error {
	page, err := a.api.GetUnreadNotifications(ctx)
	if err != nil {
		return err
	}
	a.printNotifications(page.Results)
	return nil
}

func (a *App) MarkRead(ctx context.Context, args []string) error {
	id, err := parseID(args, "read <id>")
	if err != nil {
		return err
	}
	if err := a.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	a.printf("Marked #%d as read\n", id)
	return nil
}

func (a *App) MarkAllRead(ctx context.Context, _ []string) error {
	if err := a.api.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	a.printf("All notifications marked as read\n")
	return nil
}
