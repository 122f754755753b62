package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/devfeed/internal/client/models"
	"github.com/dmitrijs2005/devfeed/internal/client/services"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateLayout)
}

func marker(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}

func tagList(tags []models.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, "#"+t.Name)
	}
	return strings.Join(names, " ")
}

func formatPostLine(p models.Post) string {
	line := fmt.Sprintf("[%d] %s by @%s  %s %d  %s  %d comments",
		p.ID, p.Title, p.Author.Username,
		marker(p.IsLiked, "♥", "♡"), p.LikesCount,
		marker(p.IsBookmarked, "[saved]", ""), p.CommentsCount,
	)
	if tags := tagList(p.Tags); tags != "" {
		line += "  " + tags
	}
	return line
}

func formatPostDetail(p models.Post) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d %s\n", p.ID, p.Title)
	fmt.Fprintf(&sb, "by %s (@%s) on %s", p.Author.DisplayName(), p.Author.Username, formatDate(p.CreatedAt))
	if p.ReadingTime != "" {
		fmt.Fprintf(&sb, ", %s", p.ReadingTime)
	}
	sb.WriteString("\n")
	if tags := tagList(p.Tags); tags != "" {
		sb.WriteString(tags + "\n")
	}
	sb.WriteString("\n" + strings.TrimSpace(p.Content) + "\n\n")
	fmt.Fprintf(&sb, "%s %d likes, %d views, %s\n",
		marker(p.IsLiked, "♥", "♡"), p.LikesCount, p.ViewsCount,
		marker(p.IsBookmarked, "bookmarked", "not bookmarked"))
	fmt.Fprintf(&sb, "Comments (%d):\n", p.CommentsCount)
	for _, c := range p.Comments {
		sb.WriteString(formatComment(c) + "\n")
	}
	return sb.String()
}

func formatComment(c models.Comment) string {
	return fmt.Sprintf("  @%s (%s): %s", c.Author.Username, formatDate(c.CreatedAt), c.Content)
}

func formatUserLine(u models.User) string {
	return fmt.Sprintf("[%d] %s (@%s)  %d followers", u.ID, u.DisplayName(), u.Username, u.FollowersCount)
}

func formatProfile(u models.User) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (@%s)\n", u.DisplayName(), u.Username)
	if u.Bio != "" {
		sb.WriteString(u.Bio + "\n")
	}
	if u.Location != "" {
		sb.WriteString("Location: " + u.Location + "\n")
	}
	if u.Website != "" {
		sb.WriteString("Website: " + u.Website + "\n")
	}
	fmt.Fprintf(&sb, "%d posts, %d followers, %d following\n", u.PostsCount, u.FollowersCount, u.FollowingCount)
	if u.IsFollowing {
		sb.WriteString("You follow this user\n")
	}
	return sb.String()
}

func formatSnippetLine(s models.Snippet) string {
	line := fmt.Sprintf("[%d] %s (%s) by @%s  %s %d  %d forks",
		s.ID, s.Title, s.Language, s.Author.Username,
		marker(s.IsLiked, "♥", "♡"), s.LikesCount, s.ForksCount)
	if tags := tagList(s.Tags); tags != "" {
		line += "  " + tags
	}
	return line
}

func formatNotification(n models.Notification) string {
	who := "someone"
	if n.Actor != nil {
		who = "@" + n.Actor.Username
	}
	return fmt.Sprintf("%s [%d] %s %s: %s",
		marker(n.IsRead, " ", "*"), n.ID, formatDate(n.CreatedAt), who, n.Message)
}

func formatResult(r services.Result) string {
	switch {
	case r.Post != nil:
		return "post    " + formatPostLine(*r.Post)
	case r.User != nil:
		return "user    " + formatUserLine(*r.User)
	case r.Snippet != nil:
		return "snippet " + formatSnippetLine(*r.Snippet)
	}
	return string(r.Kind)
}
