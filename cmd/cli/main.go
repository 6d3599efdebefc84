package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/compclub/compclub/cmd/cli/commands"
	"github.com/compclub/compclub/internal/config"
	"github.com/compclub/compclub/pkg/postgres"
	"github.com/compclub/compclub/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "CompClub CLI - Manage community events, workshops and volunteers",
		Long:  `A CLI tool for managing CompClub events, workshops, volunteer assignments and student registrations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(
		commands.CreateEventCmd(appRef()),
		commands.UpdateEventCmd(appRef()),
		commands.ListEventsCmd(appRef()),
		commands.ViewEventCmd(appRef()),
		commands.CreateWorkshopCmd(appRef()),
		commands.DeclareAvailabilityCmd(appRef()),
		commands.WithdrawAvailabilityCmd(appRef()),
		commands.WorkshopRosterCmd(appRef()),
		commands.AssignVolunteersCmd(appRef()),
		commands.PreviewStatusEmailsCmd(appRef()),
		commands.SendStatusEmailsCmd(appRef()),
		commands.SignUpCmd(appRef()),
		commands.RegisterCmd(appRef()),
		commands.AddContentCmd(appRef()),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, which initApp fills in before any
// command runs
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up the logger, config and database
func initApp() error {
	appRef()
	app.Ctx = context.Background()
	app.Env = env

	var err error
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	store, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := store.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Store = store
	app.Logger.Info("Database initialized successfully")

	return nil
}
