// ABOUTME: Tests for profile storage
// ABOUTME: Lazy creation and merge-on-upsert through the sealed record
package store

import (
	"testing"

	"github.com/solace-app/solace/internal/models"
)

func TestProfileGetEmpty(t *testing.T) {
	st := testStore(t)

	profile, err := st.Profile.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if profile != nil {
		t.Errorf("fresh vault has a profile: %+v", profile)
	}
}

func TestProfileUpsertMerges(t *testing.T) {
	st := testStore(t)

	if err := st.Profile.Upsert(&models.Profile{TherapyGoal: "manage anxiety", Age: 34}); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if err := st.Profile.Upsert(&models.Profile{Framework: models.Jungian}); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	profile, err := st.Profile.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if profile == nil {
		t.Fatal("Get() returned nil after upserts")
	}
	if profile.TherapyGoal != "manage anxiety" {
		t.Errorf("second upsert clobbered goal: %q", profile.TherapyGoal)
	}
	if profile.Age != 34 {
		t.Errorf("second upsert clobbered age: %d", profile.Age)
	}
	if profile.Framework != models.Jungian {
		t.Errorf("framework = %q, want Jungian", profile.Framework)
	}
	if profile.LastUpdated.IsZero() {
		t.Error("LastUpdated not stamped")
	}
}
