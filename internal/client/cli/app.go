package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/puisi/internal/apiclient"
	"github.com/dmitrijs2005/puisi/internal/client/config"
	"github.com/dmitrijs2005/puisi/internal/client/session"
	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	api      apiclient.Client
	sessions session.Repository
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer

	user models.Principal

	mu   sync.Mutex
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := session.Open(ctx, c.SessionFile)
	if err != nil {
		log.Printf("error opening session file: %s", err.Error())
		return nil, err
	}

	api := apiclient.NewHTTPClient(apiclient.Endpoints{
		Auth:     c.AuthURL,
		Puisi:    c.PuisiURL,
		Reaction: c.ReactionURL,
	}, c.RequestTimeout)

	return &App{
		config:   c,
		api:      api,
		sessions: session.NewSQLiteRepository(db),
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.db != nil {
		defer a.db.Close()
	}

	printlnFn("Welcome to puisi CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user.ID != 0
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = mode
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// getStatus renders the prompt suffix, e.g. "(alice online)".
func (a *App) getStatus() string {
	var parts []string
	if a.isLoggedIn() {
		parts = append(parts, a.user.UserName)
	}
	if m := a.getMode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the services right away and then every
// interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// restoreSession picks up the login saved by an earlier run.
func (a *App) restoreSession(ctx context.Context) {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			log.Printf("error loading session: %s", err.Error())
		}
		return
	}

	a.api.SetToken(s.Token)
	a.user = s.User
	printlnFn("Logged in as", s.User.UserName)
}

// forget drops the current login both in memory and on disk.
func (a *App) forget(ctx context.Context) error {
	a.api.Logout()
	a.user = models.Principal{}
	return a.sessions.Clear(ctx)
}

// check passes err through; an expired or rejected token additionally
// ends the local session.
func (a *App) check(ctx context.Context, err error) error {
	if err != nil && errors.Is(err, apiclient.ErrUnauthorized) && a.isLoggedIn() {
		if cerr := a.forget(ctx); cerr != nil {
			log.Printf("error clearing session: %s", cerr.Error())
		}
		printlnFn("Session expired, please log in again")
	}
	return err
}
