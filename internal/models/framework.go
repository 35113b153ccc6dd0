// ABOUTME: Framework is the closed set of therapeutic orientations
// ABOUTME: Selects the prompt directive for sessions, stored only on the profile
package models

import (
	"fmt"
	"strings"
)

// Framework identifies a therapeutic orientation
type Framework string

const (
	Freudian      Framework = "Freudian"
	Jungian       Framework = "Jungian"
	CBT           Framework = "CBT"
	Humanistic    Framework = "Humanistic"
	Existential   Framework = "Existential"
	Psychodynamic Framework = "Psychodynamic"
)

// Frameworks lists all supported orientations in display order
var Frameworks = []Framework{Freudian, Jungian, CBT, Humanistic, Existential, Psychodynamic}

// ParseFramework resolves a case-insensitive name to a Framework.
// Accepts "cognitive behavioral therapy" as an alias for CBT.
func ParseFramework(s string) (Framework, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "cognitive behavioral therapy" {
		return CBT, nil
	}
	for _, f := range Frameworks {
		if strings.ToLower(string(f)) == normalized {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown framework %q (expected one of %s)", s, frameworkNames())
}

// Valid reports whether f is one of the supported orientations
func (f Framework) Valid() bool {
	for _, known := range Frameworks {
		if f == known {
			return true
		}
	}
	return false
}

func frameworkNames() string {
	names := make([]string, len(Frameworks))
	for i, f := range Frameworks {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
