package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/devfeed/internal/client/client"
	"github.com/dmitrijs2005/devfeed/internal/client/feed"
	"github.com/dmitrijs2005/devfeed/internal/client/models"
)

func parseID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, usageError(usage)
	}
	id, err := models.ParseID(args[0])
	if err != nil || id <= 0 {
		return 0, usageError(usage)
	}
	return id, nil
}

// Feed loads a page of the post feed. Page 1 replaces what was shown before.
func (a *App) Feed(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return usageError("feed [page]")
		}
		page = n
	}

	if err := a.feed.Load(ctx, client.Params{}.With("page", page)); err != nil {
		return err
	}

	posts := a.feed.Posts()
	if len(posts) == 0 {
		a.printf("No posts yet\n")
		return nil
	}
	for _, p := range posts {
		a.printf("%s\n", formatPostLine(p))
	}
	if a.feed.HasNext() {
		a.printf("More: feed %d\n", page+1)
	}
	return nil
}

// ShowPost opens a post with its comments.
func (a *App) ShowPost(ctx context.Context, args []string) error {
	id, err := parseID(args, "post <id>")
	if err != nil {
		return err
	}
	view, err := feed.LoadPostView(ctx, a.api, id, feed.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.post = view
	a.printf("%s", formatPostDetail(view.Post()))
	return nil
}

// NewPost asks for a title, body and tags and publishes the post.
func (a *App) NewPost(ctx context.Context, _ []string) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return errors.New("title is required")
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		return errors.New("content is required")
	}
	tags, err := getSimpleText(a.reader, "Tags (comma separated)", a.out)
	if err != nil {
		return err
	}

	p, err := a.api.CreatePost(ctx, models.PostInput{
		Title:   title,
		Content: content,
		Status:  models.PostStatusPublished,
		Tags:    models.SplitTags(tags),
	})
	if err != nil {
		return err
	}
	a.feed.Prepend(*p)
	a.printf("Published post #%d\n", p.ID)
	return nil
}

// viewFor returns the open post view for id, loading it when another post
// (or none) is open.
func (a *App) viewFor(ctx context.Context, id int64) (*feed.PostView, error) {
	if a.post != nil && a.post.Post().ID == id {
		return a.post, nil
	}
	view, err := feed.LoadPostView(ctx, a.api, id, feed.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.post = view
	return view, nil
}

// Like toggles the like on a post. Posts shown in the feed are updated in
// place; others go through the post view.
func (a *App) Like(ctx context.Context, args []string) error {
	id, err := parseID(args, "like <id>")
	if err != nil {
		return err
	}

	var p models.Post
	if _, inFeed := a.feed.Post(id); inFeed && (a.post == nil || a.post.Post().ID != id) {
		if _, err := a.feed.ToggleLike(ctx, id); err != nil {
			return err
		}
		p, _ = a.feed.Post(id)
	} else {
		view, err := a.viewFor(ctx, id)
		if err != nil {
			return err
		}
		if _, err := view.ToggleLike(ctx); err != nil {
			return err
		}
		p = view.Post()
	}

	a.printf("%s %d likes\n", marker(p.IsLiked, "♥ Liked,", "♡ Unliked,"), p.LikesCount)
	return nil
}

// Bookmark toggles the bookmark on a post.
func (a *App) Bookmark(ctx context.Context, args []string) error {
	id, err := parseID(args, "bookmark <id>")
	if err != nil {
		return err
	}

	var p models.Post
	if _, inFeed := a.feed.Post(id); inFeed && (a.post == nil || a.post.Post().ID != id) {
		if _, err := a.feed.ToggleBookmark(ctx, id); err != nil {
			return err
		}
		p, _ = a.feed.Post(id)
	} else {
		view, err := a.viewFor(ctx, id)
		if err != nil {
			return err
		}
		if _, err := view.ToggleBookmark(ctx); err != nil {
			return err
		}
		p = view.Post()
	}

	a.printf("%s\n", marker(p.IsBookmarked, "Bookmarked", "Bookmark removed"))
	return nil
}

// Comment reads a comment and posts it under the post.
func (a *App) Comment(ctx context.Context, args []string) error {
	id, err := parseID(args, "comment <id>")
	if err != nil {
		return err
	}
	view, err := a.viewFor(ctx, id)
	if err != nil {
		return err
	}

	text, err := GetMultiline(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	c, err := view.AddComment(ctx, text)
	if err != nil {
		return err
	}
	if c == nil {
		a.printf("Empty comment, nothing posted\n")
		return nil
	}
	a.printf("Comment added (%d comments)\n", view.Post().CommentsCount)
	return nil
}

// DeletePost removes one of the user's posts after confirmation.
func (a *App) DeletePost(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete <id>")
	if err != nil {
		return err
	}
	ok, err := GetConfirm(a.reader, "Delete post #"+strconv.FormatInt(id, 10)+"?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.printf("Cancelled\n")
		return nil
	}

	if err := a.api.DeletePost(ctx, id); err != nil {
		return err
	}
	a.feed.Remove(id)
	if a.post != nil && a.post.Post().ID == id {
		a.post = nil
	}
	a.printf("Deleted post #%d\n", id)
	return nil
}
