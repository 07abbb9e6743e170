// Package server wires one puisi service binary: it opens the database,
// applies the service's migrations, builds the service's route table and
// runs the HTTP server (plus the optional gRPC health server) until a
// termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/puisi/internal/apiclient"
	"github.com/dmitrijs2005/puisi/internal/logging"
	"github.com/dmitrijs2005/puisi/internal/server/auth"
	"github.com/dmitrijs2005/puisi/internal/server/config"
	"github.com/dmitrijs2005/puisi/internal/server/httpapi"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/puisi/internal/server/services"
	"github.com/dmitrijs2005/puisi/internal/server/upstream"

	gs "github.com/dmitrijs2005/puisi/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.Service+"-service", slog.LevelInfo)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db, c.Service); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	handler, err := NewHandler(c, db, m, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, db: db, handler: handler}, nil
}

// NewHandler builds the route table of c.Service over m.
func NewHandler(c *config.Config, db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) (http.Handler, error) {
	tokens := auth.NewTokenManager([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	dir := upstream.NewHTTP(apiclient.Endpoints{
		Auth:  c.AuthServiceURL,
		Puisi: c.PuisiServiceURL,
	}, c.UpstreamTimeout, logger.With("module", "upstream"))

	var remote httpapi.TokenValidator
	if c.RemoteTokenValidation && c.Service != config.ServiceAuth {
		remote = dir
	}
	gate := httpapi.NewGate(tokens, remote)

	switch c.Service {
	case config.ServiceAuth:
		users := services.NewUserService(db, m, tokens, c)
		return httpapi.NewAuthHandler(users, gate).Routes(), nil
	case config.ServicePuisi:
		posts := services.NewPostService(db, m, dir, c)
		return httpapi.NewPuisiHandler(posts, gate).Routes(), nil
	case config.ServiceReaction:
		reactions := services.NewReactionService(db, m, dir, dir, c)
		return httpapi.NewReactionHandler(reactions, gate).Routes(), nil
	default:
		return nil, fmt.Errorf("unknown service %q", c.Service)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.handler, app.config.ShutdownTimeout, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewHealthServer(app.config.EndpointAddrGRPCHealth, app.config.Service, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "service", app.config.Service)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPCHealth != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
