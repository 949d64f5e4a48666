package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/netflex/internal/client/client"
	"github.com/dmitrijs2005/netflex/internal/client/config"
	"github.com/dmitrijs2005/netflex/internal/client/services"
	"github.com/dmitrijs2005/netflex/internal/client/session"
	"github.com/dmitrijs2005/netflex/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// sessionSource answers whether a valid session exists. *session.Manager
// implements it.
type sessionSource interface {
	CurrentSession(ctx context.Context) (session.Claims, bool)
}

type App struct {
	sessions sessionSource
	auth     services.AuthService
	dir      services.DirectoryService
	notify   Notifier
	stats    prometheus.Gatherer
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	closeFn  func() error

	// current view
	parent     context.Context
	route      string
	identity   string
	viewCtx    context.Context
	viewCancel context.CancelFunc
}

// NewApp opens the local database and wires the API client, the session
// and the services for the given configuration.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	reg := prometheus.NewRegistry()
	api, err := client.NewHTTPClient(cfg.APIEndpoint,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRegisterer(reg),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewCredentialStore(db)
	manager := session.NewManager(store, log.With("component", "session"))

	a := &App{
		sessions: manager,
		auth:     services.NewAuthService(api, store, manager, log.With("component", "auth")),
		dir:      services.NewDirectoryService(api, manager, log.With("component", "directory")),
		notify:   NewTerminalNotifier(os.Stdout),
		stats:    reg,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closeFn:  db.Close,
	}
	return a, nil
}

// Run shows the client until the user exits, input ends or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	fmt.Fprintln(a.out, "NETFLEX user directory (type 'help' for commands)")

	a.parent = ctx
	a.navigate(RouteRoot)
	runREPL(ctx, a, a.reader, a.out)
	a.leave()
	return nil
}

func (a *App) close() {
	if a.closeFn == nil {
		return
	}
	if err := a.closeFn(); err != nil {
		a.log.Warn(context.Background(), "close database", "error", err)
	}
}

func (a *App) currentRoute() string { return a.route }

func (a *App) viewContext() context.Context { return a.viewCtx }

func (a *App) prompt() string {
	if a.identity != "" {
		return fmt.Sprintf("netflex (User: %s)> ", a.identity)
	}
	return "netflex> "
}
