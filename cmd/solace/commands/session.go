// ABOUTME: CLI command for a single therapy session exchange
// ABOUTME: Input is journaled before the provider call so it is never lost
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/solace-app/solace/internal/core"
	"github.com/solace-app/solace/internal/models"
	"github.com/solace-app/solace/internal/store"
)

var sessionFramework string

// NewSessionCmd creates the session command
func NewSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session [message]",
		Short: "Run one therapy session exchange",
		Long: `Run one exchange with the configured LLM provider.

Your message is saved to the journal before the provider is called, so a
network failure never loses what you wrote. The reply is framed by the
therapeutic framework from your profile unless --framework overrides it.

Examples:
  solace session "I keep putting off the conversation with my sister"
  solace session --framework cbt "same spiral as last week"
  cat message.txt | solace session`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSession,
	}

	cmd.Flags().StringVar(&sessionFramework, "framework", "", "Therapeutic framework for this exchange (freudian, jungian, cbt, humanistic, existential, psychodynamic)")

	return cmd
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := sessionClient(cfg)
	if err != nil {
		return err
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("no session message provided")
	}

	st, err := unlockVault(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Lock() }()

	framework, err := resolveFramework(st, sessionFramework)
	if err != nil {
		return err
	}

	orch := core.NewOrchestrator(st, client, cfg.ContextTokens, cfg.Timeout)
	reply, err := orch.RunSession(context.Background(), input, framework, time.Now())
	if err != nil {
		if reply != nil && errors.Is(err, store.ErrConcurrentModification) {
			// The reply arrived; only the notes delta lost its race.
			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return nil
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
	return nil
}

// resolveFramework picks the session framework: explicit flag first,
// then the profile, then CBT
func resolveFramework(st *store.Store, flag string) (models.Framework, error) {
	if flag != "" {
		f, err := models.ParseFramework(flag)
		if err != nil {
			return "", err
		}
		return f, nil
	}

	profile, err := st.Profile.Get()
	if err != nil {
		return "", err
	}
	if profile != nil && profile.Framework != "" {
		return profile.Framework, nil
	}
	return models.CBT, nil
}
