// ABOUTME: CLI commands to view and edit therapist notes
// ABOUTME: Edits use the revision read in the same unlock, so stale writes fail
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solace-app/solace/internal/store"
)

// NewNotesCmd creates the notes command with its subcommands
func NewNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "View or edit the therapist notes",
		Long: `View or edit the running therapist notes document.

Sessions update these notes automatically; manual edits replace the whole
document. Each write bumps a revision number, and a write against a
revision that changed underneath you is rejected rather than merged.`,
		RunE: runNotesView,
	}

	setCmd := &cobra.Command{
		Use:   "set [text]",
		Short: "Replace the therapist notes",
		Long: `Replace the therapist notes with new text (from the argument or stdin).

Examples:
  solace notes set "Recurring theme: conflict avoidance with family."
  cat notes.txt | solace notes set`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNotesSet,
	}

	cmd.AddCommand(setCmd)
	return cmd
}

func runNotesView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := unlockVault(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Lock() }()

	notes, err := st.Notes.Get()
	if err != nil {
		return err
	}
	if notes == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No therapist notes yet")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Revision %d, updated %s\n\n%s\n", notes.Revision, notes.UpdatedOn, notes.Text)
	return nil
}

func runNotesSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
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
		return fmt.Errorf("no notes text provided")
	}

	st, err := unlockVault(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Lock() }()

	var expectedRevision int64
	if notes, err := st.Notes.Get(); err != nil {
		return err
	} else if notes != nil {
		expectedRevision = notes.Revision
	}

	newRevision, err := st.Notes.Update(text, expectedRevision)
	if err != nil {
		if errors.Is(err, store.ErrConcurrentModification) {
			return fmt.Errorf("notes changed underneath this edit; re-run to retry: %w", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Notes updated to revision %d\n", newRevision)
	return nil
}
