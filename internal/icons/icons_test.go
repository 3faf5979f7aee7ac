//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected the wrong icon set", tt.style)
			}
		})
	}

	Init("none")
}

func TestForLink(t *testing.T) {
	Init("nerd")
	defer Init("none")

	tests := []struct {
		label    string
		expected string
	}{
		{"GitHub", nerdIcons.GitHub},
		{"github", nerdIcons.GitHub},
		{"LinkedIn", nerdIcons.LinkedIn},
		{"Instagram", nerdIcons.Instagram},
		{"Facebook", nerdIcons.Facebook},
		{"WhatsApp", nerdIcons.WhatsApp},
		{"Mastodon", nerdIcons.Link},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := ForLink(tt.label); got != tt.expected {
				t.Errorf("ForLink(%q) = %q, want %q", tt.label, got, tt.expected)
			}
		})
	}
}

func TestForEducation(t *testing.T) {
	Init("unicode")
	defer Init("none")

	if got := ForEducation("degree"); got != unicodeIcons.Degree {
		t.Errorf("ForEducation(degree) = %q", got)
	}
	if got := ForEducation("award"); got != unicodeIcons.Award {
		t.Errorf("ForEducation(award) = %q", got)
	}
	if got := ForEducation("anything"); got != unicodeIcons.School {
		t.Errorf("ForEducation(anything) = %q", got)
	}
}

func TestFormatLink_NoneStyle(t *testing.T) {
	Init("none")

	if got := FormatLink("GitHub"); got != "GitHub" {
		t.Errorf("FormatLink() = %q, want plain label", got)
	}
}

func TestBullet_NeverEmpty(t *testing.T) {
	for _, style := range []string{"nerd", "unicode", "none"} {
		Init(style)
		if Bullet() == "" {
			t.Errorf("Bullet() empty for style %q", style)
		}
	}
	Init("none")
}
