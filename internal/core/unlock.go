// ABOUTME: Vault unlock with the mandatory maintenance pass
// ABOUTME: Condensation completes before any other store operation is offered
package core

import (
	"context"
	"time"

	"github.com/solace-app/solace/internal/store"
)

// Unlock opens the vault and runs the condensation pass before returning the
// store, so callers can never mutate it ahead of maintenance. A storage
// fault during the pass locks the vault again and propagates; summarization
// failures are reported but do not block unlocking (journaling must keep
// working without a provider).
func Unlock(path, password string, summarizer Summarizer, timeout time.Duration, now time.Time) (*store.Store, *CondenseReport, error) {
	st, err := store.Unlock(path, password)
	if err != nil {
		return nil, nil, err
	}

	report, err := NewCondenser(st, summarizer, timeout).Run(context.Background(), now)
	if err != nil {
		_ = st.Lock()
		return nil, nil, err
	}

	return st, report, nil
}
