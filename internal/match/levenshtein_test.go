package match

import (
	"math"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"userId", "userId", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"Name", "name", 1},

		// Runes, not bytes
		{"naïve", "naive", 1},
		{"日本", "日本語", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}

			if got := Levenshtein(tt.b, tt.a); got != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"userId", "user_id", 1.0},
		{"userId", "USERID", 1.0},
		{"name", "nme", 0.75},
		{"abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"userId", "userid"},
		{"user_id", "userid"},
		{"user-id", "userid"},
		{"User.Id", "userid"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeIdent(tt.input); got != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
