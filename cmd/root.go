package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/logger"
)

var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Task tracking service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			logger.Debug(".env file not found, using environment variables")
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("database", "", "database URL or sqlite file (env DATABASE_URL)")
	flags.String("log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.Bool("log-json", false, "log as JSON (env LOG_JSON)")

	bindFlag(flags.Lookup("database"), config.KeyDatabaseDSN)
	bindFlag(flags.Lookup("log-level"), config.KeyLogLevel)
	bindFlag(flags.Lookup("log-json"), config.KeyLogJSON)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
