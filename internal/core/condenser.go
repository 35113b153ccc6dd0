// ABOUTME: Condensation engine: collapses aging months into single summary blocks
// ABOUTME: Runs synchronously at unlock; write-then-delete, idempotent per day
package core

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/solace-app/solace/internal/models"
	"github.com/solace-app/solace/internal/store"
)

// Summarizer is the condensation boundary to the LLM client.
// A nil Summarizer falls back to deterministic concatenation.
type Summarizer interface {
	Summarize(ctx context.Context, monthLabel, entriesText string) (string, error)
}

// CondenseReport describes what a maintenance pass did
type CondenseReport struct {
	Condensed []models.Month // months collapsed into blocks this pass
	Warnings  []string       // data-integrity faults, surfaced but not corrected
	Failures  []string       // months whose summarization failed; entries kept
	Skipped   bool           // pass already ran today
}

// Condenser maintains the invariant that every month older than the
// freshness window has exactly one condensed block and no loose entries
type Condenser struct {
	store      *store.Store
	summarizer Summarizer
	timeout    time.Duration
}

// NewCondenser creates a condensation engine. summarizer may be nil;
// timeout bounds each summarization call (0 means no bound).
func NewCondenser(st *store.Store, summarizer Summarizer, timeout time.Duration) *Condenser {
	return &Condenser{store: st, summarizer: summarizer, timeout: timeout}
}

// CondenseCutoff returns the boundary of the freshness window for now.
// Months strictly older than the returned month are eligible for
// condensation; the cutoff month itself and everything after stay loose.
func CondenseCutoff(now time.Time) models.Month {
	return models.MonthOf(now).AddMonths(-2)
}

// Run executes one maintenance pass. Safe to re-run: a pass with nothing to
// do changes nothing, and a pass already recorded for today is skipped
// without scanning. Summarization failures leave the month's entries fully
// intact for the next pass; only storage faults abort the run.
func (c *Condenser) Run(ctx context.Context, now time.Time) (*CondenseReport, error) {
	report := &CondenseReport{}
	today := now.Format(models.DateLayout)

	lastRun, err := c.store.Meta.LastCondenseRun()
	if err != nil {
		return nil, err
	}
	if lastRun == today {
		report.Skipped = true
		return report, nil
	}

	cutoff := CondenseCutoff(now)
	months, err := c.store.Entries.MonthsBefore(cutoff)
	if err != nil {
		return nil, err
	}

	for _, m := range months {
		exists, err := c.store.Blocks.Exists(m)
		if err != nil {
			return report, err
		}
		if exists {
			// Entries in an already-condensed month mean something went
			// wrong earlier. Never merge twice; surface and move on.
			warning := fmt.Sprintf("%s already has a condensed block but loose entries remain", m)
			report.Warnings = append(report.Warnings, warning)
			log.Printf("[condense] integrity fault: %s", warning)
			continue
		}

		entries, err := c.store.Entries.ListMonth(m)
		if err != nil {
			return report, err
		}
		if len(entries) == 0 {
			continue
		}

		summary, err := c.summarize(ctx, m, entries)
		if err != nil {
			report.Failures = append(report.Failures, m.String())
			log.Printf("[condense] summarization failed for %s, keeping %d entries: %v", m, len(entries), err)
			continue
		}

		ids := make([]string, len(entries))
		for i, e := range entries {
			ids[i] = e.ID
		}
		if err := c.store.Blocks.Condense(m, summary, ids); err != nil {
			return report, err
		}
		report.Condensed = append(report.Condensed, m)
		log.Printf("[condense] condensed %s (%d entries)", m, len(entries))
	}

	// Only a failure-free pass counts as done for today, so the next
	// unlock retries any month that could not be summarized.
	if len(report.Failures) == 0 {
		if err := c.store.Meta.SetLastCondenseRun(today); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (c *Condenser) summarize(ctx context.Context, m models.Month, entries []models.JournalEntry) (string, error) {
	if c.summarizer == nil {
		return FallbackSummary(m, entries), nil
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.summarizer.Summarize(ctx, m.String(), FormatEntries(entries))
}

// FormatEntries renders a month's entries in the stable date-stamped form
// used for both summarization input and the fallback summary
func FormatEntries(entries []models.JournalEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString("Date: ")
		sb.WriteString(e.Date)
		sb.WriteString("\n")
		sb.WriteString(e.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// FallbackSummary is the deterministic concatenation used when no
// summarizer is configured
func FallbackSummary(m models.Month, entries []models.JournalEntry) string {
	return fmt.Sprintf("Condensed journal entries for %s:\n\n%s", m, FormatEntries(entries))
}
