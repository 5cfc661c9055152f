package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mgoodall/innkeeper/cmd/cli/commands"
	"github.com/mgoodall/innkeeper/internal/config"
	"github.com/mgoodall/innkeeper/pkg/postgres"
	"github.com/mgoodall/innkeeper/pkg/utils/logging"
)

var (
	env string

	// app is shared with every command; its fields are populated by
	// initApp before any RunE executes
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "innkeeper",
		Short: "Innkeeper - hotel staff scheduling",
		Long:  `A CLI tool for generating and reviewing hotel staff schedules across the Front Desk, Breakfast Bar and Shuttle sections.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.CoverageCmd(app))
	rootCmd.AddCommand(commands.ConflictsCmd(app))
	rootCmd.AddCommand(commands.EmployeesCmd(app))
	rootCmd.AddCommand(commands.AvailabilityCmd(app))
	rootCmd.AddCommand(commands.TimeOffCmd(app))
	rootCmd.AddCommand(commands.AssignCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initApp sets up the logger, config and database shared by all commands
func initApp() error {
	// .env is optional; real deployments set DATABASE_URL directly
	godotenv.Load()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		connString = cfg.DatabaseURL
	}
	if connString == "" {
		return fmt.Errorf("no database configured: set DATABASE_URL or databaseURL in innkeeper.yaml")
	}

	ctx := context.Background()
	database, err := postgres.NewDB(ctx, connString)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Debug("Application initialized", zap.String("env", env))

	app.Cfg = cfg
	app.Database = database
	app.Logger = logger
	app.Ctx = ctx
	return nil
}
