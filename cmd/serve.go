package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/bankserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve question bank files over HTTP",
	Long:  "Serve <dir>/<code>.json at GET /courses/<code> so quizzes can run against local banks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if d, _ := cmd.Flags().GetString("dir"); d != "" {
			cfg.BankDir = d
		}
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			cfg.ServeAddr = a
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		if fi, err := os.Stat(cfg.BankDir); err != nil || !fi.IsDir() {
			logger.Error("bank directory not usable", "dir", cfg.BankDir, "error", err)
			return errors.New("bank directory not usable: " + cfg.BankDir)
		}

		server := &http.Server{
			Addr:              cfg.ServeAddr,
			Handler:           bankserver.New(cfg.BankDir, logger).Handler(),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving question banks", "addr", cfg.ServeAddr, "dir", cfg.BankDir)
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			logger.Error("server failed", "error", err)
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("dir", "", "Directory of <code>.json bank files (overrides QUIZZER_BANK_DIR)")
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUIZZER_SERVE_ADDR)")
}
