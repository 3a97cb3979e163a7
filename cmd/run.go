package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
	"github.com/abhisek/quizzer/internal/bank"
	"github.com/abhisek/quizzer/internal/session"
)

// runApp resolves configuration, builds the session initializer, and
// launches the TUI.
func runApp(cmd *cobra.Command, link string, autoStart bool) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	retry := bank.DefaultRetryConfig()
	retry.MaxAttempts = cfg.BankRetries
	fetcher := bank.WithRetry(bank.NewHTTPClient(cfg.BankURL, bank.WithTimeout(cfg.BankTimeout)), retry)

	opts := app.Options{
		Starter:   session.NewInitializer(fetcher),
		Link:      link,
		AutoStart: autoStart,
	}
	return app.Run(opts)
}
