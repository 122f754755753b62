package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	mu      sync.Mutex
	access  string
	refresh string
	clears  int
}

func (f *fakeSession) AccessToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.access
}

func (f *fakeSession) Set(_ context.Context, a, r string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access, f.refresh = a, r
	return nil
}

func (f *fakeSession) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access, f.refresh = "", ""
	f.clears++
	return nil
}

type recorded struct {
	method string
	uri    string
	header http.Header
	body   string
}

func newTestClient(t *testing.T, s *fakeSession, h func(w http.ResponseWriter, r *http.Request)) (*RESTClient, *[]recorded) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, recorded{method: r.Method, uri: r.URL.RequestURI(), header: r.Header.Clone(), body: string(b)})
		mu.Unlock()
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := NewRESTClient(srv.URL+"/api/", s)
	require.NoError(t, err)
	return c, &reqs
}

func respond(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestNewRESTClient_Validation(t *testing.T) {
	_, err := NewRESTClient("  ", &fakeSession{})
	require.Error(t, err)

	_, err = NewRESTClient(DefaultBaseURL, nil)
	require.Error(t, err)

	c, err := NewRESTClient(DefaultBaseURL+"/", &fakeSession{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", c.BaseURL())
}

func TestRequest_AuthorizationHeader(t *testing.T) {
	t.Run("with token", func(t *testing.T) {
		s := &fakeSession{access: "A1"}
		c, reqs := newTestClient(t, s, respond(http.StatusOK, `{"id": 1, "username": "alice"}`))

		u, err := c.CurrentUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)

		require.Len(t, *reqs, 1)
		got := (*reqs)[0]
		assert.Equal(t, "Bearer A1", got.header.Get("Authorization"))
		assert.Equal(t, "application/json", got.header.Get("Content-Type"))
		assert.NotEmpty(t, got.header.Get("X-Request-ID"))
		assert.Equal(t, "/api/users/me/", got.uri)
	})

	t.Run("without token", func(t *testing.T) {
		c, reqs := newTestClient(t, &fakeSession{}, respond(http.StatusOK, `[]`))

		_, err := c.GetPosts(context.Background(), Params{})
		require.NoError(t, err)

		require.Len(t, *reqs, 1)
		_, present := (*reqs)[0].header["Authorization"]
		assert.False(t, present)
	})
}

func TestRequest_UnauthorizedClearsSession(t *testing.T) {
	s := &fakeSession{access: "A1", refresh: "R1"}
	c, _ := newTestClient(t, s, respond(http.StatusUnauthorized, `{"detail": "Given token not valid"}`))

	_, err := c.GetPost(context.Background(), 3)
	require.ErrorIs(t, err, ErrAuthExpired)
	assert.Empty(t, s.access)
	assert.Empty(t, s.refresh)
	assert.Equal(t, 1, s.clears)
}

func TestRequest_UnauthorizedWithNonJSONBodyStillClears(t *testing.T) {
	s := &fakeSession{access: "A1", refresh: "R1"}
	c, _ := newTestClient(t, s, respond(http.StatusUnauthorized, `<html>nope</html>`))

	err := c.LikePost(context.Background(), 3)
	require.ErrorIs(t, err, ErrAuthExpired)
	assert.Empty(t, s.AccessToken())
}

func TestRequest_NonJSONBody(t *testing.T) {
	body := "<html>" + strings.Repeat("x", 500) + "</html>"
	c, _ := newTestClient(t, &fakeSession{}, respond(http.StatusBadGateway, body))

	_, err := c.GetPost(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "502")

	var invalid *InvalidResponseError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, http.StatusBadGateway, invalid.Status)
	assert.Len(t, invalid.Excerpt, 200)
}

func TestRequest_NonJSONSuccessBody(t *testing.T) {
	c, _ := newTestClient(t, &fakeSession{}, respond(http.StatusOK, `ok`))

	_, err := c.GetPost(context.Background(), 1)
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "200")
}

func TestRequest_EmptyBodyIsSuccess(t *testing.T) {
	c, reqs := newTestClient(t, &fakeSession{access: "A"}, respond(http.StatusNoContent, ""))

	require.NoError(t, c.DeletePost(context.Background(), 9))
	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodDelete, (*reqs)[0].method)
	assert.Equal(t, "/api/posts/9/", (*reqs)[0].uri)
}

func TestRequest_APIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
		fields  map[string]string
	}{
		{name: "detail", status: 404, body: `{"detail": "Not found."}`, message: "Not found."},
		{name: "message", status: 403, body: `{"message": "Forbidden"}`, message: "Forbidden"},
		{name: "fallback", status: 500, body: `{}`, message: "HTTP 500"},
		{name: "empty body", status: 503, body: ``, message: "HTTP 503"},
		{
			name:    "validation",
			status:  400,
			body:    `{"username": ["A user with that username already exists."], "email": "bad"}`,
			message: "HTTP 400",
			fields: map[string]string{
				"username": "A user with that username already exists.",
				"email":    "bad",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, &fakeSession{}, respond(tt.status, tt.body))

			_, err := c.GetUser(context.Background(), 1)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Error())
			if diff := cmp.Diff(tt.fields, apiErr.Fields); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAPIError_FieldErrorsSorted(t *testing.T) {
	e := &APIError{Fields: map[string]string{"username": "taken", "email": "bad"}}
	assert.Equal(t, []string{"email: bad", "username: taken"}, e.FieldErrors())
}

func TestRequest_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewRESTClient(url, &fakeSession{})
	require.NoError(t, err)

	_, err = c.GetPosts(context.Background(), Params{})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRequest_ContextCancelled(t *testing.T) {
	c, _ := newTestClient(t, &fakeSession{}, respond(http.StatusOK, `[]`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetPosts(ctx, Params{})
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLogin_StoresTokens(t *testing.T) {
	s := &fakeSession{}
	c, reqs := newTestClient(t, s, respond(http.StatusOK, `{"access": "acc-123", "refresh": "ref-456"}`))

	pair, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, &models.TokenPair{Access: "acc-123", Refresh: "ref-456"}, pair)
	assert.Equal(t, "acc-123", s.access)
	assert.Equal(t, "ref-456", s.refresh)

	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodPost, (*reqs)[0].method)
	assert.Equal(t, "/api/token/", (*reqs)[0].uri)
	assert.JSONEq(t, `{"username": "alice", "password": "secret"}`, (*reqs)[0].body)
}

func TestLogout_ClearsWithoutRequest(t *testing.T) {
	s := &fakeSession{access: "A", refresh: "R"}
	c, reqs := newTestClient(t, s, respond(http.StatusOK, `{}`))

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, s.access)
	assert.Empty(t, *reqs)
}

func TestGetPosts_QueryString(t *testing.T) {
	c, reqs := newTestClient(t, &fakeSession{}, respond(http.StatusOK,
		`{"count": 1, "next": null, "previous": null, "results": [{"id": 5, "title": "React hooks"}]}`))

	page, err := c.GetPosts(context.Background(), Params{}.With("search", "react").With("page", 2))
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "React hooks", page.Results[0].Title)

	require.Len(t, *reqs, 1)
	assert.Equal(t, "/api/posts/?search=react&page=2", (*reqs)[0].uri)
}

func TestResourcePaths(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		call   func(c *RESTClient) error
		method string
		uri    string
	}{
		{"follow", func(c *RESTClient) error { return c.FollowUser(ctx, 4) }, "POST", "/api/users/4/follow/"},
		{"unfollow", func(c *RESTClient) error { return c.UnfollowUser(ctx, 4) }, "POST", "/api/users/4/unfollow/"},
		{"followers", func(c *RESTClient) error { _, err := c.GetFollowers(ctx, 4); return err }, "GET", "/api/users/4/followers/"},
		{"following", func(c *RESTClient) error { _, err := c.GetFollowing(ctx, 4); return err }, "GET", "/api/users/4/following/"},
		{"users search", func(c *RESTClient) error {
			_, err := c.GetUsers(ctx, Params{}.With("search", "a b"))
			return err
		}, "GET", "/api/users/?search=a+b"},
		{"unlike", func(c *RESTClient) error { return c.UnlikePost(ctx, 2) }, "POST", "/api/posts/2/unlike/"},
		{"bookmark", func(c *RESTClient) error { return c.BookmarkPost(ctx, 2) }, "POST", "/api/posts/2/bookmark/"},
		{"unbookmark", func(c *RESTClient) error { return c.UnbookmarkPost(ctx, 2) }, "POST", "/api/posts/2/unbookmark/"},
		{"comment", func(c *RESTClient) error {
			_, err := c.CreateComment(ctx, models.CommentInput{Post: 2, Content: "hi"})
			return err
		}, "POST", "/api/posts/comments/"},
		{"snippet like", func(c *RESTClient) error { return c.LikeSnippet(ctx, 8) }, "POST", "/api/snippets/8/like/"},
		{"fork", func(c *RESTClient) error { _, err := c.ForkSnippet(ctx, 8); return err }, "POST", "/api/snippets/8/fork/"},
		{"trending", func(c *RESTClient) error { _, err := c.GetTrendingSnippets(ctx); return err }, "GET", "/api/snippets/trending/"},
		{"unread", func(c *RESTClient) error { _, err := c.GetUnreadNotifications(ctx); return err }, "GET", "/api/notifications/unread/"},
		{"mark read", func(c *RESTClient) error { return c.MarkNotificationRead(ctx, 11) }, "POST", "/api/notifications/11/mark_read/"},
		{"mark all", func(c *RESTClient) error { return c.MarkAllNotificationsRead(ctx) }, "POST", "/api/notifications/mark_all_read/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, reqs := newTestClient(t, &fakeSession{}, respond(http.StatusOK, `{}`))
			require.NoError(t, tt.call(c))
			require.Len(t, *reqs, 1)
			assert.Equal(t, tt.method, (*reqs)[0].method)
			assert.Equal(t, tt.uri, (*reqs)[0].uri)
		})
	}
}

func TestParams(t *testing.T) {
	p := Params{}.With("b", 1).With("a", "x")
	p2 := p.With("b", 3)

	assert.Equal(t, "b=1&a=x", p.Encode())
	assert.Equal(t, "b=3&a=x", p2.Encode())
	assert.Equal(t, "3", p2.Get("b"))
	assert.Empty(t, p2.Get("zzz"))
	assert.Equal(t, "/posts/", withQuery("/posts/", Params{}))
	assert.Equal(t, "/posts/?q=c%26d", withQuery("/posts/", Params{}.With("q", "c&d")))
}
