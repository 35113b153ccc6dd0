// ABOUTME: ContextPayload is the ordered, size-bounded bundle sent to the LLM
// ABOUTME: Profile, notes, condensed history oldest-first, then recent daily entries
package models

import "strings"

// HistorySection is one condensed month's summary inside a payload
type HistorySection struct {
	Month Month
	Text  string
}

// ContextPayload is the assembled session context. The framework directive
// rides alongside the stored data; it is never persisted.
type ContextPayload struct {
	ProfileSection  string
	NotesSection    string
	HistorySections []HistorySection
	RecentSection   string
	Framework       Framework
	Directive       string
}

// Render produces the payload text in assembly order.
// Identical payloads render byte-identically.
func (p *ContextPayload) Render() string {
	var sections []string
	if p.ProfileSection != "" {
		sections = append(sections, p.ProfileSection)
	}
	if p.NotesSection != "" {
		sections = append(sections, p.NotesSection)
	}
	for _, h := range p.HistorySections {
		sections = append(sections, h.Text)
	}
	if p.RecentSection != "" {
		sections = append(sections, p.RecentSection)
	}
	return strings.Join(sections, "\n")
}

// Size returns the rendered payload length in characters
func (p *ContextPayload) Size() int {
	return len(p.Render())
}
