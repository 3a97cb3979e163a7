package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizzer [link]",
	Short: "Timed multiple-choice quizzes in the terminal",
	Long:  "Quizzer: sample questions from a course question bank and take a timed quiz in the terminal.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		link := ""
		if len(args) == 1 {
			link = args[0]
		}
		return runApp(cmd, link, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank-url", "", "Question bank base URL (overrides QUIZZER_BANK_URL env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads configuration with the --bank-url flag (highest
// priority), then the environment and .env, then defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if u, _ := cmd.Flags().GetString("bank-url"); u != "" {
		cfg.BankURL = u
	}
	return cfg, nil
}
