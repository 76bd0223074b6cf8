package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jwalitptl/clinic-desk/internal/app"
	"github.com/jwalitptl/clinic-desk/internal/config"
	"github.com/jwalitptl/clinic-desk/internal/document"
	"github.com/jwalitptl/clinic-desk/internal/repository/sqldb"
	"github.com/jwalitptl/clinic-desk/pkg/logger"
)

func newServeCommand() *cobra.Command {
	var (
		host            string
		port            int
		debug           bool
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.Server.Host = host
			}
			if flags.Changed("port") {
				cfg.Server.Port = port
			}
			if flags.Changed("debug") {
				cfg.Server.Debug = debug
			}

			logger.Setup(logger.Config{Debug: cfg.Server.Debug})
			return serve(cfg, shutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "listen host")
	cmd.Flags().IntVar(&port, "port", 5000, "listen port")
	cmd.Flags().BoolVar(&debug, "debug", false, "debug mode: console logs at debug level")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 5*time.Second, "maximum time to wait for graceful shutdown")

	return cmd
}

func serve(cfg *config.Config, shutdownTimeout time.Duration) error {
	db, err := sqldb.NewDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqldb.EnsureSchema(context.Background(), db); err != nil {
		return err
	}

	converter, err := document.NewConverter(cfg.Document)
	if err != nil {
		return err
	}

	engine, err := app.New(*cfg, db, converter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("database", cfg.Database.Driver).
			Str("converter", cfg.Document.Converter).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
