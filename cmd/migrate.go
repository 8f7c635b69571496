package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/logger"
	"task-tracker.com/task-tracker/internal/migrations"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|version]",
	Short:     "Apply or inspect database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status", "version"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}

		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		logger.Init(cfg.LogLevel, cfg.LogJSON)

		database, err := config.NewDatabaseClient(cfg.DatabaseDSN, cfg.LogLevel)
		if err != nil {
			return err
		}
		sqlDB, err := database.DB()
		if err != nil {
			return fmt.Errorf("get sql handle: %w", err)
		}
		defer sqlDB.Close()

		return migrations.Run(cmd.Context(), sqlDB, config.DialectFor(cfg.DatabaseDSN), command)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
