// ABOUTME: Root command wiring for the solace CLI
// ABOUTME: Registers all subcommands and global flags
package commands

import (
	"github.com/spf13/cobra"
)

var dbPathFlag string

// NewRootCmd creates the root command with all subcommands registered
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solace",
		Short: "Local-first therapeutic journaling with an encrypted vault",
		Long: `Solace is a local-first therapeutic journal.

Entries, therapist notes, and your profile live in a single encrypted
vault on your machine, unlocked by a password that is never stored.
Aging months are condensed into summaries, and LLM-backed therapy
sessions read from and write back to the vault.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Vault file path (default: XDG data dir)")

	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewSessionCmd())
	cmd.AddCommand(NewProfileCmd())
	cmd.AddCommand(NewNotesCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewCondenseCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}
