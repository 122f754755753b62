package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/devfeed/internal/client/client"
	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

// Kind selects which resources a search covers.
type Kind string

const (
	KindAll      Kind = "all"
	KindPosts    Kind = "posts"
	KindUsers    Kind = "users"
	KindSnippets Kind = "snippets"
)

// Order selects how merged results are sorted.
type Order string

const (
	OrderRelevance Order = "relevance"
	OrderNewest    Order = "newest"
	OrderPopular   Order = "popular"
)

// morePast is the result count above which HasMore is reported.
const morePast = 20

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindAll, nil
	case KindAll, KindPosts, KindUsers, KindSnippets:
		return k, nil
	default:
		return "", fmt.Errorf("unknown search type %q", s)
	}
}

func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return OrderRelevance, nil
	case OrderRelevance, OrderNewest, OrderPopular:
		return o, nil
	default:
		return "", fmt.Errorf("unknown sort %q", s)
	}
}

// Result is one search hit. Exactly one of Post, User and Snippet is set,
// matching Kind.
type Result struct {
	Kind    Kind
	Post    *models.Post
	User    *models.User
	Snippet *models.Snippet
}

func (r Result) CreatedAt() time.Time {
	switch {
	case r.Post != nil:
		return r.Post.CreatedAt
	case r.User != nil:
		return r.User.CreatedAt
	case r.Snippet != nil:
		return r.Snippet.CreatedAt
	}
	return time.Time{}
}

// Score is likes + followers + views, counting what the resource has.
func (r Result) Score() int {
	switch {
	case r.Post != nil:
		return r.Post.LikesCount + r.Post.ViewsCount
	case r.User != nil:
		return r.User.FollowersCount
	case r.Snippet != nil:
		return r.Snippet.LikesCount + r.Snippet.ViewsCount
	}
	return 0
}

type SearchResults struct {
	Items   []Result
	HasMore bool
}

type SearchService interface {
	Search(ctx context.Context, query string, kind Kind, order Order) (*SearchResults, error)
}

type searchService struct {
	client client.Client
}

func NewSearchService(client client.Client) SearchService {
	return &searchService{client: client}
}

// Search queries posts, users and snippets (as selected by kind) with the
// first page of results each, tags every hit with its kind and sorts the
// merged list. A blank query returns no results without contacting the
// server.
func (s *searchService) Search(ctx context.Context, query string, kind Kind, order Order) (*SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &SearchResults{}, nil
	}
	if kind == "" {
		kind = KindAll
	}

	params := client.Params{}.With("search", query).With("page", 1)
	var items []Result

	if kind == KindAll || kind == KindPosts {
		page, err := s.client.GetPosts(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("search posts: %w", err)
		}
		for i := range page.Results {
			items = append(items, Result{Kind: KindPosts, Post: &page.Results[i]})
		}
	}

	if kind == KindAll || kind == KindUsers {
		page, err := s.client.GetUsers(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("search users: %w", err)
		}
		for i := range page.Results {
			items = append(items, Result{Kind: KindUsers, User: &page.Results[i]})
		}
	}

	if kind == KindAll || kind == KindSnippets {
		page, err := s.client.GetSnippets(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("search snippets: %w", err)
		}
		for i := range page.Results {
			items = append(items, Result{Kind: KindSnippets, Snippet: &page.Results[i]})
		}
	}

	switch order {
	case OrderNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt().After(items[j].CreatedAt())
		})
	case OrderPopular:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Score() > items[j].Score()
		})
	}

	return &SearchResults{Items: items, HasMore: len(items) > morePast}, nil
}
