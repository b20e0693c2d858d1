// Command dictionary runs the Igbo dictionary API and its maintenance tasks.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/dictionary-api/internal/config"
	"github.com/deppfellow/dictionary-api/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "dictionary",
	Short:         "Igbo dictionary API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and builds the application logger.
// Callers must Shutdown the returned LoggerService.
func bootstrap() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, &log, loggerService, nil
}
