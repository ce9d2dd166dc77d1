package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ewintr.nl/ytsummary/handler"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the summary API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		summarizer, err := newSummarizer(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.API.Port),
			Handler: handler.NewServer(summarizer, logger),
		}
		errc := make(chan error, 1)
		go func() {
			errc <- srv.ListenAndServe()
		}()
		logger.Info("http server started", slog.Int("port", cfg.API.Port))

		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGTERM)
		select {
		case <-done:
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server failed: %w", err)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		logger.Info("service stopped")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
