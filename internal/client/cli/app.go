package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/devfeed/internal/client/client"
	"github.com/dmitrijs2005/devfeed/internal/client/config"
	"github.com/dmitrijs2005/devfeed/internal/client/feed"
	"github.com/dmitrijs2005/devfeed/internal/client/services"
	"github.com/dmitrijs2005/devfeed/internal/client/session"
	"github.com/dmitrijs2005/devfeed/internal/logging"
)

// sessionState is the part of *session.Session the CLI reads.
type sessionState interface {
	Authenticated() bool
	Claims() (*session.Claims, error)
	Expired(now time.Time) bool
}

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	session       sessionState
	api           client.Client
	authService   services.AuthService
	searchService services.SearchService

	feed    *feed.List
	post    *feed.PostView
	profile *feed.Profile

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, restores the session from it and wires
// the API client and services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	sess, err := session.Open(ctx, session.NewSQLiteStore(db))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.NewRESTClient(c.APIBaseURL, sess,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		session:       sess,
		api:           apiClient,
		authService:   services.NewAuthService(apiClient),
		searchService: services.NewSearchService(apiClient),
		feed:          feed.NewList(apiClient, feed.WithLogger(logger)),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run restores the stored user, if any, and blocks in the REPL until the
// user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printlnFn("Welcome to DevFeed CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) restoreSession(ctx context.Context) {
	if !a.session.Authenticated() {
		return
	}
	if a.session.Expired(time.Now()) {
		a.logger.Info(ctx, "stored access token has expired")
	}
	u, err := a.authService.LoadUser(ctx)
	if err != nil {
		a.logger.Warn(ctx, "stored session rejected", "error", err)
		printlnFn("Stored session is no longer valid, please login")
		return
	}
	printlnFn(fmt.Sprintf("Logged in as %s", u.Username))
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.Authenticated()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	if u := a.authService.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return "(?)"
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
