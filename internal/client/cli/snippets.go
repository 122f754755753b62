package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/devfeed/internal/client/client"
	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

func (a *App) printSnippets(snippets []models.Snippet) {
	if len(snippets) == 0 {
		a.printf("No snippets\n")
		return
	}
	for _, s := range snippets {
		a.printf("%s\n", formatSnippetLine(s))
	}
}

// Snippets lists snippets, optionally filtered by the words given.
func (a *App) Snippets(ctx context.Context, args []string) error {
	params := client.Params{}
	if q := strings.Join(args, " "); q != "" {
		params = params.With("search", q)
	}
	page, err := a.api.GetSnippets(ctx, params)
	if err != nil {
		return err
	}
	a.printSnippets(page.Results)
	return nil
}

func (a *App) Trending(ctx context.Context, _ []string) error {
	page, err := a.api.GetTrendingSnippets(ctx)
	if err != nil {
		return err
	}
	a.printSnippets(page.Results)
	return nil
}

// Fork copies a snippet into the user's account.
func (a *App) Fork(ctx context.Context, args []string) error {
	id, err := parseID(args, "fork <id>")
	if err != nil {
		return err
	}
	s, err := a.api.ForkSnippet(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Forked as snippet #%d\n", s.ID)
	return nil
}
