package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/deppfellow/dictionary-api/internal/handler"
	"github.com/deppfellow/dictionary-api/internal/repository"
	"github.com/deppfellow/dictionary-api/internal/router"
	"github.com/deppfellow/dictionary-api/internal/server"
	"github.com/deppfellow/dictionary-api/internal/service"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the background workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(parent context.Context) error {
	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	services, err := service.NewServices(srv, repository.NewRepositories(srv))
	if err != nil {
		log.Error().Err(err).Msg("failed to create services")
		return err
	}

	r := router.NewRouter(srv, handler.NewHandlers(srv, services))
	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
