package utils

import (
	"testing"
)

func TestTrigramSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical strings",
			a:    "Rato Bangala School",
			b:    "Rato Bangala School",
			want: 1.0,
		},
		{
			name: "case and whitespace insensitive",
			a:    "  rato   BANGALA school ",
			b:    "Rato Bangala School",
			want: 1.0,
		},
		{
			name: "no shared trigrams",
			a:    "xyz",
			b:    "Rato Bangala School",
			want: 0.0,
		},
		{
			name: "empty query",
			a:    "",
			b:    "Rato Bangala School",
			want: 0.0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrigramSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("TrigramSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTrigramSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"Rato Bengala", "Rato Bangala School"},
		{"st xavier", "St. Xavier School Jawalkhel"},
		{"school", "Shuvatara School"},
		{"a", "b"},
	}

	for _, p := range pairs {
		got := TrigramSimilarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("TrigramSimilarity(%q, %q) = %v, outside [0,1]", p[0], p[1], got)
		}
	}
}

func TestTrigramSimilarity_MisspellingScoresAboveThreshold(t *testing.T) {
	// A one-letter typo against a partial name must still clear the
	// resolver's 0.3 cutoff.
	got := TrigramSimilarity("Rato Bengala", "Rato Bangala School")
	if got < 0.3 {
		t.Errorf("expected misspelled name to score >= 0.3, got %v", got)
	}
	if got >= 1.0 {
		t.Errorf("expected misspelled name to score below 1.0, got %v", got)
	}
}

func TestTrigramSimilarity_Symmetric(t *testing.T) {
	a, b := "Rato Bengala", "Rato Bangala School"
	if TrigramSimilarity(a, b) != TrigramSimilarity(b, a) {
		t.Error("expected similarity to be symmetric")
	}
}
