// ABOUTME: Tests for framework parsing and validation
// ABOUTME: Parsing is case-insensitive and accepts the long CBT alias
package models

import "testing"

func TestParseFramework(t *testing.T) {
	tests := []struct {
		input   string
		want    Framework
		wantErr bool
	}{
		{"cbt", CBT, false},
		{"CBT", CBT, false},
		{"cognitive behavioral therapy", CBT, false},
		{"Freudian", Freudian, false},
		{"jungian", Jungian, false},
		{"  humanistic  ", Humanistic, false},
		{"existential", Existential, false},
		{"psychodynamic", Psychodynamic, false},
		{"gestalt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFramework(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFramework(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFramework(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFramework(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFrameworkValid(t *testing.T) {
	for _, f := range Frameworks {
		if !f.Valid() {
			t.Errorf("Valid() = false for %q", f)
		}
	}
	if Framework("Gestalt").Valid() {
		t.Error("Valid() = true for unknown framework")
	}
	if Framework("").Valid() {
		t.Error("Valid() = true for empty framework")
	}
}
