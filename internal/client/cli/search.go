package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/devfeed/internal/client/services"
)

// parseSearchArgs peels an optional type and sort off the end of args; the
// rest is the query. "search go generics posts newest" searches posts for
// "go generics", newest first.
func parseSearchArgs(args []string) (string, services.Kind, services.Order) {
	kind, order := services.KindAll, services.OrderRelevance

	if n := len(args); n > 1 {
		if o, err := services.ParseOrder(args[n-1]); err == nil {
			order, args = o, args[:n-1]
		}
	}
	if n := len(args); n > 1 {
		if k, err := services.ParseKind(args[n-1]); err == nil {
			kind, args = k, args[:n-1]
		}
	}
	return strings.Join(args, " "), kind, order
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("search <query> [all|posts|users|snippets] [relevance|newest|popular]")
	}
	query, kind, order := parseSearchArgs(args)

	res, err := a.searchService.Search(ctx, query, kind, order)
	if err != nil {
		return err
	}
	if len(res.Items) == 0 {
		a.printf("No results for %q\n", query)
		return nil
	}
	for _, r := range res.Items {
		a.printf("%s\n", formatResult(r))
	}
	if res.HasMore {
		a.printf("Showing the first page of each result type; refine the query for more\n")
	}
	return nil
}
