// ABOUTME: Tests for profile merge semantics
// ABOUTME: Empty fields in a partial update never clobber stored values
package models

import "testing"

func TestProfileMerge(t *testing.T) {
	p := &Profile{
		TherapyGoal:   "manage anxiety",
		Age:           34,
		MaritalStatus: "single",
		Framework:     CBT,
	}

	p.Merge(&Profile{
		Age:       35,
		Framework: Humanistic,
	})

	if p.TherapyGoal != "manage anxiety" {
		t.Errorf("Merge() clobbered therapy goal: %q", p.TherapyGoal)
	}
	if p.Age != 35 {
		t.Errorf("Merge() age = %d, want 35", p.Age)
	}
	if p.MaritalStatus != "single" {
		t.Errorf("Merge() clobbered marital status: %q", p.MaritalStatus)
	}
	if p.Framework != Humanistic {
		t.Errorf("Merge() framework = %q, want Humanistic", p.Framework)
	}
	if p.LastUpdated.IsZero() {
		t.Error("Merge() did not stamp LastUpdated")
	}
}

func TestProfileMergeEmptyPartial(t *testing.T) {
	p := &Profile{TherapyGoal: "work through grief", Age: 50}
	p.Merge(&Profile{})

	if p.TherapyGoal != "work through grief" || p.Age != 50 {
		t.Error("Merge() with empty partial changed stored fields")
	}
}

func TestProfileIsEmpty(t *testing.T) {
	if !(&Profile{}).IsEmpty() {
		t.Error("zero profile should be empty")
	}
	if (&Profile{Age: 1}).IsEmpty() {
		t.Error("profile with age should not be empty")
	}
	if (&Profile{Framework: CBT}).IsEmpty() {
		t.Error("profile with framework should not be empty")
	}
}
