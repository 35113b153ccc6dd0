// ABOUTME: CLI command to browse condensed month summaries
// ABOUTME: One block per condensed month; --month prints a full summary
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/solace-app/solace/internal/models"
)

var historyMonth string

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse condensed month summaries",
		Long: `Browse the condensed summaries of past months.

Without flags every condensed month is listed oldest first. --month prints
one month's full summary.

Examples:
  solace history
  solace history --month 2026-03`,
		RunE: runHistory,
	}

	cmd.Flags().StringVar(&historyMonth, "month", "", "Show the full summary for one month (YYYY-MM)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := unlockVault(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Lock() }()

	out := cmd.OutOrStdout()

	if historyMonth != "" {
		t, err := time.Parse("2006-01", historyMonth)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", historyMonth)
		}
		block, err := st.Blocks.Get(models.MonthOf(t))
		if err != nil {
			return err
		}
		if block == nil {
			fmt.Fprintf(out, "No condensed block for %s\n", models.MonthOf(t))
			return nil
		}
		fmt.Fprintf(out, "%s (%d entries, condensed %s)\n\n%s\n",
			block.CalendarMonth(), block.SourceCount, block.CreatedAt.Format(models.DateLayout), block.Summary)
		return nil
	}

	blocks, err := st.Blocks.ListAll()
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		fmt.Fprintln(out, "No condensed months yet")
		return nil
	}

	for _, block := range blocks {
		fmt.Fprintf(out, "%s  %d entries\n    %s\n",
			block.CalendarMonth(), block.SourceCount, truncate(block.Summary, 80))
	}
	fmt.Fprintf(out, "\n%d condensed months\n", len(blocks))
	return nil
}
