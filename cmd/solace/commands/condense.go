// ABOUTME: CLI command that unlocks the vault and reports the maintenance pass
// ABOUTME: Condensation always runs at unlock; this surfaces its outcome
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/solace-app/solace/internal/core"
	"github.com/solace-app/solace/internal/llm"
)

// NewCondenseCmd creates the condense command
func NewCondenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "condense",
		Short: "Run the condensation pass and report what it did",
		Long: `Unlock the vault and report the condensation pass.

The pass runs on every unlock; this command exists to see its outcome.
Months older than the freshness window are collapsed into single summary
blocks. A pass that already ran today is skipped.`,
		RunE: runCondense,
	}
}

func runCondense(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	client, err := llm.New(cfg)
	if err != nil {
		return err
	}
	var summarizer core.Summarizer
	if client != nil {
		summarizer = client
	}

	st, report, err := core.Unlock(cfg.DBPath, password, summarizer, cfg.Timeout, time.Now())
	if err != nil {
		return err
	}
	defer func() { _ = st.Lock() }()

	out := cmd.OutOrStdout()
	if report.Skipped {
		fmt.Fprintln(out, "Condensation already ran today; nothing to do")
		return nil
	}

	for _, m := range report.Condensed {
		fmt.Fprintf(out, "Condensed %s\n", m)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(os.Stderr, "Failed to condense %s; entries kept for next pass\n", f)
	}
	if len(report.Condensed) == 0 && len(report.Warnings) == 0 && len(report.Failures) == 0 {
		fmt.Fprintln(out, "No months eligible for condensation")
	}
	return nil
}
