// ABOUTME: CLI command to add or amend journal entries
// ABOUTME: Text from args, file, or stdin; entries date to today by default
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/solace-app/solace/internal/models"
)

var (
	addFile  string
	addDate  string
	addAmend string
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a journal entry",
		Long: `Add a journal entry for today (or a given date).

Entries stay editable until their month is condensed; use --amend with an
entry ID to rewrite one.

Examples:
  solace add "slept badly, kept replaying the meeting"
  solace add --date 2026-08-20 "backfilled entry"
  solace add --file entry.txt
  solace add --amend entry_20260820_143012_1a2b3c4d "corrected text"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addFile, "file", "", "Read entry text from file")
	cmd.Flags().StringVar(&addDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&addAmend, "amend", "", "Replace the text of an existing entry by ID")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var text string
	if addFile != "" {
		data, err := os.ReadFile(addFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no entry text provided")
	}

	st, err := unlockVault(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Lock() }()

	if addAmend != "" {
		if err := st.Entries.Update(addAmend, text); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Amended entry %s\n", addAmend)
		return nil
	}

	date := addDate
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	id, err := st.Entries.Create(date, text, false)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s for %s\n", id, date)
	return nil
}
