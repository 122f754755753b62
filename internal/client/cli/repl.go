package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/devfeed/internal/client/client"
	"github.com/dmitrijs2005/devfeed/internal/client/feed"
	"github.com/dmitrijs2005/devfeed/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// Every command receives the words typed after its name.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Whoami(ctx context.Context, args []string) error

	Feed(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	ShowPost(ctx context.Context, args []string) error
	NewPost(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Bookmark(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	DeletePost(ctx context.Context, args []string) error

	ShowUser(ctx context.Context, args []string) error
	Follow(ctx context.Context, args []string) error
	Unfollow(ctx context.Context, args []string) error
	Followers(ctx context.Context, args []string) error
	Following(ctx context.Context, args []string) error

	Snippets(ctx context.Context, args []string) error
	Trending(ctx context.Context, args []string) error
	Fork(ctx context.Context, args []string) error

	Notifications(ctx context.Context, args []string) error
	Unread(ctx context.Context, args []string) error
	MarkRead(ctx context.Context, args []string) error
	MarkAllRead(ctx context.Context, args []string) error
}

type command struct {
	run  func(ctx context.Context, args []string) error
	auth bool
}

func commandTable(a execIface) map[string]command {
	return map[string]command{
		"register":      {run: a.Register},
		"login":         {run: a.Login},
		"logout":        {run: a.Logout, auth: true},
		"whoami":        {run: a.Whoami, auth: true},
		"feed":          {run: a.Feed},
		"search":        {run: a.Search},
		"post":          {run: a.ShowPost},
		"newpost":       {run: a.NewPost, auth: true},
		"like":          {run: a.Like, auth: true},
		"bookmark":      {run: a.Bookmark, auth: true},
		"comment":       {run: a.Comment, auth: true},
		"delete":        {run: a.DeletePost, auth: true},
		"user":          {run: a.ShowUser},
		"follow":        {run: a.Follow, auth: true},
		"unfollow":      {run: a.Unfollow, auth: true},
		"followers":     {run: a.Followers},
		"following":     {run: a.Following},
		"snippets":      {run: a.Snippets},
		"trending":      {run: a.Trending},
		"fork":          {run: a.Fork, auth: true},
		"notifications": {run: a.Notifications, auth: true},
		"unread":        {run: a.Unread, auth: true},
		"read":          {run: a.MarkRead, auth: true},
		"readall":       {run: a.MarkAllRead, auth: true},
	}
}

const (
	helpGuest = `Available commands:
  register, login
  feed [page], search <query> [all|posts|users|snippets] [relevance|newest|popular]
  post <id>, user <id>, followers <id>, following <id>
  snippets, trending
  exit`
	helpUser = `Available commands:
  feed [page], search <query> [all|posts|users|snippets] [relevance|newest|popular]
  post <id>, newpost, like <id>, bookmark <id>, comment <id>, delete <id>
  user <id>, follow <id>, unfollow <id>, followers <id>, following <id>
  snippets, trending, fork <id>
  notifications, unread, read <id>, readall
  whoami, logout, exit`
)

// runREPL starts a simple read-eval-print loop for the DevFeed CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a' with the remaining tokens. Commands that need
// a session are refused while logged out. The loop exits on EOF, when ctx is
// cancelled, or when the user types "exit" or "quit".
//
// Errors returned by command handlers are reported to the user and the loop
// keeps running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	commands := commandTable(a)

	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("devfeed %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := commands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if c.auth && !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}
		if err := c.run(ctx, args); err != nil {
			reportError(err)
		}
	}
}

// usageError is returned for malformed command arguments.
type usageError string

func (e usageError) Error() string { return "Usage: " + string(e) }

func reportError(err error) {
	var (
		apiErr    *client.APIError
		validErr  *services.ValidationError
		usage     usageError
		invalidJS *client.InvalidResponseError
	)

	switch {
	case errors.As(err, &usage):
		printlnFn(usage.Error())
	case errors.Is(err, client.ErrAuthExpired):
		printlnFn("Session expired, please login again")
	case errors.Is(err, client.ErrUnavailable):
		printlnFn("Server unavailable:", err)
	case errors.Is(err, feed.ErrInFlight):
		printlnFn("Still waiting for the previous update on this item")
	case errors.As(err, &validErr):
		printlnFn("Please fix the following:")
		for _, line := range sortedFields(validErr.Fields) {
			printlnFn("  " + line)
		}
	case errors.As(err, &apiErr):
		printlnFn("Error:", apiErr.Message)
		for _, line := range apiErr.FieldErrors() {
			printlnFn("  " + line)
		}
	case errors.As(err, &invalidJS):
		printlnFn("Unexpected server response:", invalidJS.Error())
	default:
		printlnFn("Error:", err)
	}
}

func sortedFields(fields map[string]string) []string {
	return (&client.APIError{Fields: fields}).FieldErrors()
}
