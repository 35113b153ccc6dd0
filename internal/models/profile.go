// ABOUTME: Profile is the singleton user profile with all-optional fields
// ABOUTME: Partial updates merge field by field, never replacing the whole record
package models

import "time"

// Profile holds the user's background information. Every field is optional;
// zero values mean "not provided" and are skipped during merges.
type Profile struct {
	TherapyGoal   string    `json:"therapy_goal,omitempty"`
	Age           int       `json:"age,omitempty"`
	Sex           string    `json:"sex,omitempty"`
	MaritalStatus string    `json:"marital_status,omitempty"`
	Children      string    `json:"children,omitempty"`
	Siblings      string    `json:"siblings,omitempty"`
	AbuseHistory  string    `json:"abuse_history,omitempty"`
	SubstanceUse  string    `json:"substance_use,omitempty"`
	Framework     Framework `json:"framework,omitempty"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Merge applies the populated fields of partial onto the profile.
// Empty fields in partial leave the existing values untouched.
func (p *Profile) Merge(partial *Profile) {
	if partial.TherapyGoal != "" {
		p.TherapyGoal = partial.TherapyGoal
	}
	if partial.Age != 0 {
		p.Age = partial.Age
	}
	if partial.Sex != "" {
		p.Sex = partial.Sex
	}
	if partial.MaritalStatus != "" {
		p.MaritalStatus = partial.MaritalStatus
	}
	if partial.Children != "" {
		p.Children = partial.Children
	}
	if partial.Siblings != "" {
		p.Siblings = partial.Siblings
	}
	if partial.AbuseHistory != "" {
		p.AbuseHistory = partial.AbuseHistory
	}
	if partial.SubstanceUse != "" {
		p.SubstanceUse = partial.SubstanceUse
	}
	if partial.Framework != "" {
		p.Framework = partial.Framework
	}
	p.LastUpdated = time.Now()
}

// IsEmpty reports whether no field has ever been populated
func (p *Profile) IsEmpty() bool {
	return p.TherapyGoal == "" && p.Age == 0 && p.Sex == "" &&
		p.MaritalStatus == "" && p.Children == "" && p.Siblings == "" &&
		p.AbuseHistory == "" && p.SubstanceUse == "" && p.Framework == ""
}
