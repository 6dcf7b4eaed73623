package cmd

import (
	"learning_progress_backend/internal/app"
	"learning_progress_backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()
	logger.Log.Info("Logger initialized successfully", zap.String("config", cfg.File))

	application, err := app.NewApp(cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize application", zap.Error(err))
		return err
	}

	return application.Run()
}
