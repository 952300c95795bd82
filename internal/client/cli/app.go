// Package cli implements the interactive Messagely client. It wires the
// HTTP API client to a small REPL: register, login, list users, send and
// read messages.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/messagely/internal/client/api"
	"github.com/dmitrijs2005/messagely/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return "(guest)"
	}
	return "(" + a.userName + ")"
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
