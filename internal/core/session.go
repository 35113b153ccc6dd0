// ABOUTME: Session orchestrator: one therapy exchange against the vault
// ABOUTME: The user's input is persisted before the provider call, never lost
package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/solace-app/solace/internal/llm"
	"github.com/solace-app/solace/internal/models"
	"github.com/solace-app/solace/internal/store"
)

// Orchestrator drives therapy sessions
type Orchestrator struct {
	store         *store.Store
	client        llm.Client
	contextTokens int
	timeout       time.Duration
}

// NewOrchestrator creates a session orchestrator.
// contextTokens bounds the assembled payload; timeout bounds the provider call.
func NewOrchestrator(st *store.Store, client llm.Client, contextTokens int, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		store:         st,
		client:        client,
		contextTokens: contextTokens,
		timeout:       timeout,
	}
}

// RunSession runs one exchange: assemble context, persist the input as a
// session-origin journal entry, call the provider, and apply any notes delta
// with optimistic revision matching.
//
// Provider failure or timeout returns an error wrapping llm.ErrUnavailable;
// the journal entry is already saved and the notes are untouched. A notes
// delta that loses the revision race returns the reply together with an
// error wrapping store.ErrConcurrentModification.
func (o *Orchestrator) RunSession(ctx context.Context, userInput string, framework models.Framework, now time.Time) (*llm.Reply, error) {
	if o.client == nil {
		return nil, errors.New("no LLM provider configured; set SOLACE_PROVIDER to start sessions")
	}

	payload, err := BuildContext(o.store, now, framework, o.contextTokens)
	if err != nil {
		return nil, err
	}

	// Capture the notes revision before the provider call so a delta in the
	// reply is applied against the state the model actually saw.
	var expectedRevision int64
	if notes, err := o.store.Notes.Get(); err != nil {
		return nil, err
	} else if notes != nil {
		expectedRevision = notes.Revision
	}

	entryID, err := o.store.Entries.Create(now.Format(models.DateLayout), userInput, true)
	if err != nil {
		return nil, err
	}

	callCtx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	reply, err := o.client.Complete(callCtx, payload.Render(), userInput, payload.Directive)
	if err != nil {
		if callCtx.Err() != nil && !errors.Is(err, llm.ErrUnavailable) {
			err = fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
		}
		return nil, fmt.Errorf("session reply unavailable (journal entry %s was saved): %w", entryID, err)
	}

	if reply.NotesUpdate != "" {
		newRevision, err := o.store.Notes.Update(reply.NotesUpdate, expectedRevision)
		if err != nil {
			return reply, fmt.Errorf("reply received but notes update failed: %w", err)
		}
		log.Printf("[session] therapist notes updated to revision %d", newRevision)
	}

	return reply, nil
}
