// ABOUTME: Tests for context payload rendering
// ABOUTME: Section order is fixed and rendering is deterministic
package models

import (
	"strings"
	"testing"
	"time"
)

func TestContextPayloadRenderOrder(t *testing.T) {
	p := &ContextPayload{
		ProfileSection: "USER PROFILE:\nAge: 34\n",
		NotesSection:   "THERAPIST NOTES (revision 2, updated 2024-03-01):\nthemes\n",
		HistorySections: []HistorySection{
			{Month: Month{2024, time.January}, Text: "CONDENSED HISTORY (January 2024, 3 entries):\njan\n"},
			{Month: Month{2024, time.February}, Text: "CONDENSED HISTORY (February 2024, 2 entries):\nfeb\n"},
		},
		RecentSection: "RECENT JOURNAL ENTRIES:\nDate: 2024-03-10\nrecent\n\n",
	}

	rendered := p.Render()
	idxProfile := strings.Index(rendered, "USER PROFILE")
	idxNotes := strings.Index(rendered, "THERAPIST NOTES")
	idxJan := strings.Index(rendered, "January 2024")
	idxFeb := strings.Index(rendered, "February 2024")
	idxRecent := strings.Index(rendered, "RECENT JOURNAL ENTRIES")

	if idxProfile == -1 || idxNotes == -1 || idxJan == -1 || idxFeb == -1 || idxRecent == -1 {
		t.Fatalf("Render() missing sections:\n%s", rendered)
	}
	if !(idxProfile < idxNotes && idxNotes < idxJan && idxJan < idxFeb && idxFeb < idxRecent) {
		t.Errorf("Render() sections out of order:\n%s", rendered)
	}
}

func TestContextPayloadRenderSkipsEmpty(t *testing.T) {
	p := &ContextPayload{RecentSection: "RECENT JOURNAL ENTRIES:\nDate: 2024-03-10\ntext\n\n"}
	rendered := p.Render()
	if strings.Contains(rendered, "USER PROFILE") || strings.Contains(rendered, "THERAPIST NOTES") {
		t.Errorf("Render() emitted empty sections:\n%s", rendered)
	}
}

func TestContextPayloadDeterministic(t *testing.T) {
	p := &ContextPayload{
		ProfileSection: "USER PROFILE:\nAge: 34\n",
		RecentSection:  "RECENT JOURNAL ENTRIES:\ntext\n",
	}
	if p.Render() != p.Render() {
		t.Error("Render() is not deterministic")
	}
	if p.Size() != len(p.Render()) {
		t.Error("Size() disagrees with rendered length")
	}
}
