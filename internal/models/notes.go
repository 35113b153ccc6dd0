// ABOUTME: TherapistNotes is the singleton versioned clinical notes record
// ABOUTME: Revision increases strictly on every update, enforced by the store
package models

// TherapistNotes holds the current clinical notes.
// Updates replace the text; prior content is not retained.
type TherapistNotes struct {
	Text      string `json:"text"`
	Revision  int64  `json:"revision"`
	UpdatedOn string `json:"updated_on"` // YYYY-MM-DD
}
