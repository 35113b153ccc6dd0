// ABOUTME: CLI command to list journal entries
// ABOUTME: Defaults to the current month; --from/--to select a range
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/solace-app/solace/internal/models"
)

var (
	listFrom string
	listTo   string
	listFull bool
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long: `List loose journal entries, newest month first limited to a range.

Without flags the current month is shown. Condensed months no longer have
loose entries; see 'solace history' for their summaries.

Examples:
  solace list
  solace list --from 2026-06-01 --to 2026-07-31
  solace list --full`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listFrom, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&listTo, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&listFull, "full", false, "Print full entry text instead of a preview")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := unlockVault(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Lock() }()

	thisMonth := models.MonthOf(time.Now())
	from := listFrom
	if from == "" {
		from = thisMonth.First()
	}
	to := listTo
	if to == "" {
		to = thisMonth.Last()
	}

	entries, err := st.Entries.ListRange(from, to)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No entries between %s and %s\n", from, to)
		return nil
	}

	for _, e := range entries {
		origin := ""
		if e.SessionOrigin {
			origin = " (session)"
		}
		text := e.Text
		if !listFull {
			text = truncate(text, 80)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s  %s\n    %s\n", e.Date, origin, e.ID, text)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries\n", len(entries))
	return nil
}
