package validate

import "testing"

func TestNonEmpty(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"hello", true},
		{"  x  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}

	for _, tt := range tests {
		if got := NonEmpty(tt.in); got != tt.want {
			t.Errorf("NonEmpty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"first.last@sub.domain.org", true},
		{"user-name@host.io", true},
		{"", false},
		{"a@@b", false},
		{"no-at-sign", false},
		{"user@domain", false},
		{"user@domain.c", false},
		{"@domain.com", false},
	}

	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestISODate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2025-12-02", true},
		{"2024-02-29", true}, // leap day
		{"02-12-2025", false},
		{"2025/12/02", false},
		{"2025-13-01", false},
		{"2025-02-30", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ISODate(tt.in); got != tt.want {
			t.Errorf("ISODate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHours(t *testing.T) {
	tests := []struct {
		in   float64
		want bool
	}{
		{8, true},
		{7.5, true},
		{24, true},
		{0.25, true},
		{0, false},
		{25, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := Hours(tt.in); got != tt.want {
			t.Errorf("Hours(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHoursString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"8", true},
		{"7.5", true},
		{" 12 ", true},
		{"0", false},
		{"25", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HoursString(tt.in); got != tt.want {
			t.Errorf("HoursString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
