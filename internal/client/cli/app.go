// Package cli implements the interactive event planner client. It is a
// plain REPL over the HTTP client: every command maps to one API call, and
// all permission checks shown to the user are advisory only.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eventplanner/internal/client/client"
	"github.com/dmitrijs2005/eventplanner/internal/client/config"
	"github.com/dmitrijs2005/eventplanner/internal/client/session"
	"github.com/dmitrijs2005/eventplanner/internal/common"
)

type App struct {
	config  *config.Config
	client  client.Client
	session *session.Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	s := session.New()
	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout, s)

	return &App{config: c, client: apiClient, session: s, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// report prints the human-readable message for err. A server-side auth
// rejection also drops the stored token, since it will never be accepted
// again.
func (a *App) report(err error) {
	fmt.Println(client.Message(err))
	if errors.Is(err, common.ErrorUnauthorized) && a.session.Authenticated() {
		a.session.Clear()
		fmt.Println("Session cleared, please log in again")
	}
}
