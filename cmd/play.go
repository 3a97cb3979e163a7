package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <link>",
	Short: "Start a quiz directly from a link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reject malformed links before taking over the terminal.
		if _, err := session.ParseLink(args[0]); err != nil {
			return fmt.Errorf("parse link: %w", err)
		}
		return runApp(cmd, args[0], true)
	},
}
