package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/compclub/compclub/internal/config"
	"github.com/compclub/compclub/pkg/clients/gmailclient"
	"github.com/compclub/compclub/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Store  db.Store
	Logger *zap.Logger
	Ctx    context.Context
	Env    string

	// mail is created on first use so commands that never send email do not
	// trigger the OAuth flow
	mail *gmailclient.Client
}

// Mail returns the Gmail client, creating it on first use
func (app *AppContext) Mail() (*gmailclient.Client, error) {
	if app.mail != nil {
		return app.mail, nil
	}

	oauthCfg, err := config.LoadOAuthClient(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	client, err := gmailclient.NewClient(app.Ctx, oauthCfg, app.Cfg, app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	app.mail = client
	return client, nil
}

// parseDate parses a YYYY-MM-DD command argument
func parseDate(arg string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected a YYYY-MM-DD date, got %q", arg)
	}
	return date, nil
}

// today returns the current date truncated to midnight UTC
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
