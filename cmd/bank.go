package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect question bank files",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate question bank files against the bank schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			b, err := bank.Decode(raw)
			if err != nil {
				failed++
				fmt.Fprintf(out, "✗ %s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "✓ %s: %s\n", path, describeBank(b))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d bank files invalid", failed, len(args))
		}
		return nil
	},
}

// describeBank summarises weeks and question counts.
func describeBank(b *bank.Bank) string {
	var weeks []string
	for _, w := range b.Weeks {
		label := w.Name
		if _, ok := w.Number(); !ok {
			label += " (not selectable)"
		}
		weeks = append(weeks, fmt.Sprintf("%s=%d", label, len(w.Questions)))
	}
	title := b.Title
	if title == "" {
		title = "untitled"
	}
	return fmt.Sprintf("%q, %d questions [%s]", title, b.QuestionCount(), strings.Join(weeks, ", "))
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
}
