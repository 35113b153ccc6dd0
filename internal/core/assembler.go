// ABOUTME: Context assembler: builds the ordered, size-bounded session payload
// ABOUTME: Deterministic for identical store state and date
package core

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/solace-app/solace/internal/llm"
	"github.com/solace-app/solace/internal/models"
	"github.com/solace-app/solace/internal/store"
)

// charsPerToken is the budget approximation used throughout
const charsPerToken = 4

// truncationMark is appended to a shortened condensed summary
const truncationMark = "\n[summary truncated]"

// minSummaryChars is the smallest useful remnant of a condensed summary;
// below this the section is dropped instead of shortened further
const minSummaryChars = 200

// BuildContext assembles the payload for a session as of asOf.
// Order: profile, notes, condensed history oldest-first, then loose entries
// from the condensation cutoff through asOf. Over budget, condensed
// summaries are shortened then dropped oldest-first; daily entries, profile,
// and notes are never sacrificed.
func BuildContext(st *store.Store, asOf time.Time, framework models.Framework, budgetTokens int) (*models.ContextPayload, error) {
	payload := &models.ContextPayload{
		Framework: framework,
		Directive: llm.Directive(framework),
	}

	profile, err := st.Profile.Get()
	if err != nil {
		return nil, err
	}
	if profile != nil && !profile.IsEmpty() {
		payload.ProfileSection = formatProfile(profile)
	}

	notes, err := st.Notes.Get()
	if err != nil {
		return nil, err
	}
	if notes != nil {
		payload.NotesSection = formatNotes(notes)
	}

	cutoff := CondenseCutoff(asOf)
	blocks, err := st.Blocks.ListBefore(cutoff)
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		payload.HistorySections = append(payload.HistorySections, models.HistorySection{
			Month: b.CalendarMonth(),
			Text:  formatBlock(&b),
		})
	}

	entries, err := st.Entries.ListRange(cutoff.First(), asOf.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		payload.RecentSection = formatEntriesSection(entries)
	}

	enforceBudget(payload, budgetTokens*charsPerToken)
	return payload, nil
}

// enforceBudget trims condensed history oldest-first until the payload fits.
// Recent entries are never touched: daily granularity outranks history.
func enforceBudget(payload *models.ContextPayload, maxChars int) {
	for i := 0; i < len(payload.HistorySections); i++ {
		over := payload.Size() - maxChars
		if over <= 0 {
			return
		}

		section := &payload.HistorySections[i]
		keep := len(section.Text) - over - len(truncationMark)
		// Back off to a rune boundary so the cut never ships invalid UTF-8
		for keep > 0 && !utf8.RuneStart(section.Text[keep]) {
			keep--
		}
		if keep >= minSummaryChars {
			section.Text = section.Text[:keep] + truncationMark
			return
		}

		// Too little would survive: drop the whole section
		payload.HistorySections = append(payload.HistorySections[:i], payload.HistorySections[i+1:]...)
		i--
	}
}

func formatProfile(p *models.Profile) string {
	var sb strings.Builder
	sb.WriteString("USER PROFILE:\n")
	writeField(&sb, "Therapy goal", p.TherapyGoal)
	if p.Age != 0 {
		fmt.Fprintf(&sb, "Age: %d\n", p.Age)
	}
	writeField(&sb, "Sex", p.Sex)
	writeField(&sb, "Marital status", p.MaritalStatus)
	writeField(&sb, "Children", p.Children)
	writeField(&sb, "Siblings", p.Siblings)
	writeField(&sb, "Abuse history", p.AbuseHistory)
	writeField(&sb, "Substance use", p.SubstanceUse)
	writeField(&sb, "Selected framework", string(p.Framework))
	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	if value != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}
}

func formatNotes(n *models.TherapistNotes) string {
	return fmt.Sprintf("THERAPIST NOTES (revision %d, updated %s):\n%s\n", n.Revision, n.UpdatedOn, n.Text)
}

func formatBlock(b *models.CondensedBlock) string {
	return fmt.Sprintf("CONDENSED HISTORY (%s, %d entries):\n%s\n", b.CalendarMonth(), b.SourceCount, b.Summary)
}

func formatEntriesSection(entries []models.JournalEntry) string {
	var sb strings.Builder
	sb.WriteString("RECENT JOURNAL ENTRIES:\n")
	for _, e := range entries {
		sb.WriteString("Date: ")
		sb.WriteString(e.Date)
		if e.SessionOrigin {
			sb.WriteString(" (session)")
		}
		sb.WriteString("\n")
		sb.WriteString(e.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
