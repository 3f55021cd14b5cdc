// Package cli implements the interactive shopkeep terminal client: a small
// REPL over the session and products managers.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"shopkeep/internal/client/api"
	"shopkeep/internal/client/config"
	"shopkeep/internal/client/credential"
	"shopkeep/internal/client/products"
	"shopkeep/internal/client/session"
	"shopkeep/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Manager
	products *products.Manager
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logging.New("shopkeep", cfg.LogLevel)

	store, err := credential.NewFileStore(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("init credential store: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, store, log)

	return &App{
		config:   cfg,
		log:      log,
		session:  session.NewManager(apiClient, store, log),
		products: products.NewManager(apiClient, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run validates any stored session and enters the REPL. Blocks until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	if err := a.session.CheckSession(ctx); err != nil {
		a.log.Warn(ctx, "session check failed", "error", err)
	}

	if s := a.session.State(); s.Authenticated() {
		printlnFn("Signed in as", s.User.Email)
	}

	printlnFn("shopkeep CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated()
}

// status renders the prompt suffix, e.g. "(ana@cafe.dev)".
func (a *App) status() string {
	s := a.session.State()
	if s.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", s.User.Email)
}
