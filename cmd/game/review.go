package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"detectivequest/internal/logging"
)

var reviewLimit int

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List recent verdicts from the case journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reviewLimit <= 0 {
			return fmt.Errorf("--limit must be positive, got %d", reviewLimit)
		}
		journal, err := logging.NewCaseLogger(settings.Journal)
		if err != nil {
			return fmt.Errorf("failed to open case journal: %w", err)
		}
		defer journal.Close()
		return runReview(journal, reviewLimit, cmd.OutOrStdout())
	},
}

func init() {
	reviewCmd.Flags().IntVar(&reviewLimit, "limit", 10, "number of cases to show")
}

func runReview(journal *logging.CaseLogger, limit int, out io.Writer) error {
	cases, err := journal.GetRecentCases(limit)
	if err != nil {
		return fmt.Errorf("failed to get cases: %w", err)
	}

	if len(cases) == 0 {
		fmt.Fprintln(out, "No cases found. Play the game first to close a case!")
		return nil
	}

	fmt.Fprintf(out, "Recent cases (%d):\n\n", len(cases))

	for _, c := range cases {
		outcome := "NOT SUSTAINED"
		if c.Sustained {
			outcome = "SUSTAINED"
		}
		fmt.Fprintf(out, "[%d] %s | %s | %s\n",
			c.ID,
			c.Timestamp.Format("2006-01-02 15:04:05"),
			c.Scenario,
			c.SessionID)
		fmt.Fprintf(out, "Accused: %s (%d clue(s)) %s\n", c.Accused, c.Count, outcome)
		if len(c.Clues) > 0 {
			fmt.Fprintf(out, "Clues: %s\n", strings.Join(c.Clues, "; "))
		}
		if len(c.Trail) > 0 {
			fmt.Fprintf(out, "Trail: %s\n", strings.Join(c.Trail, " | "))
		}
		fmt.Fprintln(out, strings.Repeat("-", 50))
	}
	return nil
}
