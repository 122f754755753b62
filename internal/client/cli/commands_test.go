package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
	"github.com/dmitrijs2005/devfeed/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedIn() (*fakeAuth, *fakeSession) {
	return &fakeAuth{user: &models.User{ID: 1, Username: "alice"}}, &fakeSession{authed: true}
}

func TestFeed_PagesAndLikeInPlace(t *testing.T) {
	api := &fakeAPI{feedPage: &models.Page[models.Post]{
		Count: 30,
		Next:  ptr("http://localhost:8000/api/posts/?page=2"),
		Results: []models.Post{
			{ID: 1, Title: "Hello", Author: models.User{Username: "bob"}, LikesCount: 5},
		},
	}}
	auth, sess := loggedIn()
	app, out := newTestApp(api, auth, sess, "")
	ctx := context.Background()

	require.NoError(t, app.Feed(ctx, nil))
	assert.Contains(t, out.String(), "[1] Hello by @bob")
	assert.Contains(t, out.String(), "More: feed 2")

	require.NoError(t, app.Like(ctx, []string{"1"}))
	assert.Contains(t, out.String(), "♥ Liked, 6 likes")
	p, _ := app.feed.Post(1)
	assert.True(t, p.IsLiked)

	api.err = errors.New("boom")
	require.Error(t, app.Like(ctx, []string{"1"}))
	p, _ = app.feed.Post(1)
	assert.Equal(t, 6, p.LikesCount)
	assert.True(t, p.IsLiked)

	assert.Equal(t, []string{"GetPosts page=1", "LikePost", "UnlikePost"}, api.Calls())
}

func TestFeed_BadPage(t *testing.T) {
	app, _ := newTestApp(&fakeAPI{}, &fakeAuth{}, &fakeSession{}, "")
	var usage usageError
	require.ErrorAs(t, app.Feed(context.Background(), []string{"zero"}), &usage)
}

func TestShowPostCommentAndBookmark(t *testing.T) {
	api := &fakeAPI{posts: map[int64]*models.Post{
		9: {ID: 9, Title: "Generics", Content: "body", CommentsCount: 1},
	}}
	auth, sess := loggedIn()
	app, out := newTestApp(api, auth, sess, "Nice one\n\n\n\n")
	ctx := context.Background()

	require.NoError(t, app.ShowPost(ctx, []string{"9"}))
	assert.Contains(t, out.String(), "#9 Generics")
	assert.Contains(t, out.String(), "Comments (1):")

	require.NoError(t, app.Comment(ctx, []string{"9"}))
	assert.Contains(t, out.String(), "Comment added (2 comments)")

	require.NoError(t, app.Comment(ctx, []string{"9"}))
	assert.Contains(t, out.String(), "Empty comment, nothing posted")

	require.NoError(t, app.Bookmark(ctx, []string{"9"}))
	assert.Contains(t, out.String(), "Bookmarked")
	assert.True(t, app.post.Post().IsBookmarked)

	assert.Equal(t, []string{"GetPost", "CreateComment Nice one", "BookmarkPost"}, api.Calls())
}

func TestShowPost_NotFound(t *testing.T) {
	app, _ := newTestApp(&fakeAPI{posts: map[int64]*models.Post{}}, &fakeAuth{}, &fakeSession{}, "")
	err := app.ShowPost(context.Background(), []string{"404"})
	require.ErrorContains(t, err, "Not found.")

	var usage usageError
	require.ErrorAs(t, app.ShowPost(context.Background(), nil), &usage)
	require.ErrorAs(t, app.ShowPost(context.Background(), []string{"-1"}), &usage)
}

func TestNewPost_Prepends(t *testing.T) {
	api := &fakeAPI{created: &models.Post{ID: 50}}
	auth, sess := loggedIn()
	app, out := newTestApp(api, auth, sess, "My title\nline 1\nline 2\n\ngo, cli\n")

	require.NoError(t, app.NewPost(context.Background(), nil))
	assert.Contains(t, out.String(), "Published post #50")
	posts := app.feed.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "My title", posts[0].Title)
}

func TestNewPost_RequiresTitle(t *testing.T) {
	api := &fakeAPI{}
	auth, sess := loggedIn()
	app, _ := newTestApp(api, auth, sess, "\n")

	require.ErrorContains(t, app.NewPost(context.Background(), nil), "title is required")
	assert.Empty(t, api.Calls())
}

func TestDeletePost_Confirmation(t *testing.T) {
	api := &fakeAPI{}
	auth, sess := loggedIn()
	app, out := newTestApp(api, auth, sess, "n\ny\n")
	ctx := context.Background()

	require.NoError(t, app.DeletePost(ctx, []string{"4"}))
	assert.Contains(t, out.String(), "Cancelled")
	assert.Empty(t, api.Calls())

	require.NoError(t, app.DeletePost(ctx, []string{"4"}))
	assert.Contains(t, out.String(), "Deleted post #4")
	assert.Equal(t, []string{"DeletePost"}, api.Calls())
}

func TestFollowUnfollow(t *testing.T) {
	api := &fakeAPI{user: &models.User{ID: 3, Username: "bob", FollowersCount: 10}}
	auth, sess := loggedIn()
	app, out := newTestApp(api, auth, sess, "")
	ctx := context.Background()

	require.NoError(t, app.Unfollow(ctx, []string{"3"}))
	assert.Contains(t, out.String(), "Not following @bob")

	require.NoError(t, app.Follow(ctx, []string{"3"}))
	assert.Contains(t, out.String(), "Following @bob (11 followers)")

	require.NoError(t, app.Follow(ctx, []string{"3"}))
	assert.Contains(t, out.String(), "Already following @bob")

	assert.Equal(t, []string{"GetUser", "FollowUser"}, api.Calls())
}

func TestSearchCommand(t *testing.T) {
	now := time.Now()
	api := &fakeAPI{
		users:    []models.User{{ID: 2, Username: "gopher", CreatedAt: now}},
		snippets: []models.Snippet{{ID: 3, Title: "generic map", Language: "go"}},
	}
	app, out := newTestApp(api, &fakeAuth{}, &fakeSession{}, "")

	require.NoError(t, app.Search(context.Background(), []string{"go", "generics", "users"}))
	assert.Contains(t, out.String(), "user    [2]")
	assert.NotContains(t, out.String(), "snippet")
	assert.Equal(t, []string{"GetUsers"}, api.Calls())

	var usage usageError
	require.ErrorAs(t, app.Search(context.Background(), nil), &usage)
}

func TestParseSearchArgs(t *testing.T) {
	tests := []struct {
		args  []string
		query string
		kind  services.Kind
		order services.Order
	}{
		{[]string{"react"}, "react", services.KindAll, services.OrderRelevance},
		{[]string{"posts"}, "posts", services.KindAll, services.OrderRelevance},
		{[]string{"go", "generics", "posts", "newest"}, "go generics", services.KindPosts, services.OrderNewest},
		{[]string{"go", "popular"}, "go", services.KindAll, services.OrderPopular},
		{[]string{"go", "snippets"}, "go", services.KindSnippets, services.OrderRelevance},
	}
	for _, tt := range tests {
		q, k, o := parseSearchArgs(tt.args)
		assert.Equal(t, tt.query, q)
		assert.Equal(t, tt.kind, k)
		assert.Equal(t, tt.order, o)
	}
}

func TestSnippetsForkAndNotifications(t *testing.T) {
	api := &fakeAPI{
		snippets: []models.Snippet{{ID: 3, Title: "generic map", Language: "go", Author: models.User{Username: "bob"}}},
		notes:    []models.Notification{{ID: 8, Message: "bob liked your post", Actor: &models.User{Username: "bob"}}},
	}
	auth, sess := loggedIn()
	app, out := newTestApp(api, auth, sess, "")
	ctx := context.Background()

	require.NoError(t, app.Snippets(ctx, []string{"map"}))
	assert.Contains(t, out.String(), "[3] generic map (go) by @bob")

	require.NoError(t, app.Fork(ctx, []string{"3"}))
	assert.Contains(t, out.String(), "Forked as snippet #77")

	require.NoError(t, app.Unread(ctx, nil))
	assert.Contains(t, out.String(), "@bob: bob liked your post")

	require.NoError(t, app.MarkRead(ctx, []string{"8"}))
	require.NoError(t, app.MarkAllRead(ctx, nil))

	assert.Equal(t, []string{
		"GetSnippets search=map", "ForkSnippet", "GetUnreadNotifications",
		"MarkNotificationRead", "MarkAllNotificationsRead",
	}, api.Calls())
}

func TestFollowers(t *testing.T) {
	api := &fakeAPI{}
	app, out := newTestApp(api, &fakeAuth{}, &fakeSession{}, "")
	require.NoError(t, app.Followers(context.Background(), []string{"3"}))
	assert.Contains(t, out.String(), "Nobody here yet")
}

func ptr[T any](v T) *T { return &v }
