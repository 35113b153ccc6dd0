// ABOUTME: Tests for context assembly
// ABOUTME: Section order, the freshness boundary, determinism, and budget pressure
package core

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/solace-app/solace/internal/models"
	"github.com/solace-app/solace/internal/store"
)

func seedAssemblerStore(t *testing.T) *store.Store {
	t.Helper()
	st := testStore(t)

	if err := st.Profile.Upsert(&models.Profile{TherapyGoal: "manage anxiety", Age: 34}); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if _, err := st.Notes.Update("recurring theme: avoidance", 0); err != nil {
		t.Fatalf("Notes.Update() error: %v", err)
	}

	for _, m := range []models.Month{
		{Year: 2023, Month: time.December},
		{Year: 2024, Month: time.January},
	} {
		id, err := st.Entries.Create(m.First(), "old entry", false)
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if err := st.Blocks.Condense(m, "summary for "+m.String(), []string{id}); err != nil {
			t.Fatalf("Condense() error: %v", err)
		}
	}

	for _, date := range []string{"2024-02-05", "2024-03-10", "2024-04-01"} {
		if _, err := st.Entries.Create(date, "loose entry "+date, false); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}
	return st
}

func TestBuildContextOrderAndContent(t *testing.T) {
	st := seedAssemblerStore(t)
	asOf := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

	payload, err := BuildContext(st, asOf, models.CBT, 8000)
	if err != nil {
		t.Fatalf("BuildContext() error: %v", err)
	}

	rendered := payload.Render()
	idxProfile := strings.Index(rendered, "USER PROFILE")
	idxNotes := strings.Index(rendered, "THERAPIST NOTES")
	idxDec := strings.Index(rendered, "December 2023")
	idxJan := strings.Index(rendered, "January 2024")
	idxRecent := strings.Index(rendered, "RECENT JOURNAL ENTRIES")

	if idxProfile == -1 || idxNotes == -1 || idxDec == -1 || idxJan == -1 || idxRecent == -1 {
		t.Fatalf("missing sections:\n%s", rendered)
	}
	if !(idxProfile < idxNotes && idxNotes < idxDec && idxDec < idxJan && idxJan < idxRecent) {
		t.Errorf("sections out of order:\n%s", rendered)
	}

	// All loose entries from the cutoff month forward are present
	for _, date := range []string{"2024-02-05", "2024-03-10", "2024-04-01"} {
		if !strings.Contains(rendered, "loose entry "+date) {
			t.Errorf("loose entry %s missing from context", date)
		}
	}

	if payload.Directive == "" {
		t.Error("payload carries no framework directive")
	}
}

func TestBuildContextDeterministic(t *testing.T) {
	st := seedAssemblerStore(t)
	asOf := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

	first, err := BuildContext(st, asOf, models.CBT, 8000)
	if err != nil {
		t.Fatalf("BuildContext() error: %v", err)
	}
	second, err := BuildContext(st, asOf, models.CBT, 8000)
	if err != nil {
		t.Fatalf("BuildContext() error: %v", err)
	}
	if first.Render() != second.Render() {
		t.Error("identical store state rendered differently")
	}
}

func TestBuildContextBudgetDropsOldestHistory(t *testing.T) {
	st := testStore(t)
	asOf := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

	// Two bulky condensed months and one small recent entry
	long := strings.Repeat("significant month. ", 400) // ~7600 chars each
	for _, m := range []models.Month{
		{Year: 2023, Month: time.December},
		{Year: 2024, Month: time.January},
	} {
		id, err := st.Entries.Create(m.First(), "old entry", false)
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if err := st.Blocks.Condense(m, long, []string{id}); err != nil {
			t.Fatalf("Condense() error: %v", err)
		}
	}
	if _, err := st.Entries.Create("2024-03-10", "the recent entry", false); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// 2000 tokens = 8000 chars: both summaries cannot fit whole
	payload, err := BuildContext(st, asOf, models.CBT, 2000)
	if err != nil {
		t.Fatalf("BuildContext() error: %v", err)
	}

	if payload.Size() > 2000*charsPerToken {
		t.Errorf("payload size %d exceeds budget %d", payload.Size(), 2000*charsPerToken)
	}
	rendered := payload.Render()
	if !strings.Contains(rendered, "the recent entry") {
		t.Error("recent entry sacrificed to budget pressure")
	}
	// January (newer) must survive December (older) under pressure
	if strings.Contains(rendered, "December 2023") && !strings.Contains(rendered, "January 2024") {
		t.Error("older history kept while newer history dropped")
	}
}

func TestEnforceBudgetKeepsRuneBoundaries(t *testing.T) {
	// 300 two-byte runes: any odd cut position lands mid-rune
	payload := &models.ContextPayload{
		HistorySections: []models.HistorySection{
			{Month: models.Month{Year: 2024, Month: time.January}, Text: strings.Repeat("é", 300)},
		},
		RecentSection: "x",
	}

	// Budget chosen so the shortened summary would end on an odd byte offset
	enforceBudget(payload, 245)

	if len(payload.HistorySections) != 1 {
		t.Fatalf("history dropped instead of shortened: %d sections", len(payload.HistorySections))
	}
	text := payload.HistorySections[0].Text
	if !strings.HasSuffix(text, truncationMark) {
		t.Errorf("shortened summary missing truncation mark: %q", text)
	}
	if !utf8.ValidString(text) {
		t.Errorf("truncation produced invalid UTF-8: %q", text)
	}
	if payload.Size() > 245 {
		t.Errorf("payload size %d exceeds budget 245", payload.Size())
	}
}

func TestBuildContextEmptyVault(t *testing.T) {
	st := testStore(t)
	asOf := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

	payload, err := BuildContext(st, asOf, models.Humanistic, 8000)
	if err != nil {
		t.Fatalf("BuildContext() error: %v", err)
	}
	if payload.ProfileSection != "" || payload.NotesSection != "" ||
		len(payload.HistorySections) != 0 || payload.RecentSection != "" {
		t.Errorf("empty vault produced sections: %+v", payload)
	}
	if payload.Directive == "" {
		t.Error("directive missing for empty vault")
	}
}
