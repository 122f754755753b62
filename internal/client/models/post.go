package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Tag arrives either as a bare string or as {"name": ..., "slug": ...}.
type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (t *Tag) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t.Name, t.Slug = s, s
		return nil
	}
	type plain Tag
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*t = Tag(p)
	if t.Slug == "" {
		t.Slug = t.Name
	}
	return nil
}

// Text accepts a JSON string or number and keeps its textual form.
// reading_time is sent as "3 min read" by some servers and as 3 by others.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// Post is a feed entry.
type Post struct {
	ID             int64      `json:"id"`
	Author         User       `json:"author"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug,omitempty"`
	Content        string     `json:"content,omitempty"`
	Excerpt        string     `json:"excerpt,omitempty"`
	CoverImage     string     `json:"cover_image,omitempty"`
	Status         string     `json:"status,omitempty"`
	ReadingTime    Text       `json:"reading_time,omitempty"`
	Tags           []Tag      `json:"tags,omitempty"`
	LikesCount     int        `json:"likes_count"`
	CommentsCount  int        `json:"comments_count"`
	BookmarksCount int        `json:"bookmarks_count"`
	ViewsCount     int        `json:"views_count"`
	IsLiked        bool       `json:"is_liked"`
	IsBookmarked   bool       `json:"is_bookmarked"`
	Comments       []Comment  `json:"comments,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
}

// PostInput is the POST/PATCH body for /posts/.
type PostInput struct {
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Status  string   `json:"status,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// PostStatusPublished is the status new posts are created with.
const PostStatusPublished = "published"

// SplitTags turns "go, rest ,,cli" into ["go", "rest", "cli"].
func SplitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Comment belongs to a post.
type Comment struct {
	ID        int64     `json:"id"`
	Post      int64     `json:"post"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentInput is the POST /posts/comments/ body.
type CommentInput struct {
	Post    int64  `json:"post"`
	Content string `json:"content"`
}

// ParseID parses a numeric resource id as typed by a user.
func ParseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
