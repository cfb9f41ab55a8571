package ushell

import "testing"

func candidateTable(t *testing.T) CandidatesFn {
	t.Helper()
	buckets := map[byte][]string{
		'a': {"alpha", "alpine", "arm"},
		'l': {"led", "level"},
		'r': {"read"},
	}
	return func(first byte) []string {
		return buckets[first]
	}
}

func TestAutocompleteEmptyInputClears(t *testing.T) {
	ac := NewAutocomplete(8, 32)
	ac.UpdateInput("al", candidateTable(t))
	ac.UpdateInput("", candidateTable(t))
	if ac.CurrentInput() != "" {
		t.Errorf("input = %q, want empty", ac.CurrentInput())
	}
	if len(ac.FilteredCandidates()) != 0 {
		t.Errorf("filtered = %v, want none", ac.FilteredCandidates())
	}
}

func TestAutocompleteSingleMatchAppendsSpace(t *testing.T) {
	ac := NewAutocomplete(8, 32)
	ac.UpdateInput("r", candidateTable(t))
	if got := ac.CurrentInput(); got != "read " {
		t.Errorf("input = %q, want %q", got, "read ")
	}
}

func TestAutocompleteMultiMatchUsesLCP(t *testing.T) {
	ac := NewAutocomplete(8, 32)
	ac.UpdateInput("al", candidateTable(t))
	if got := ac.CurrentInput(); got != "alp" {
		t.Errorf("input = %q, want %q", got, "alp")
	}

	filtered := ac.FilteredCandidates()
	if len(filtered) != 2 {
		t.Fatalf("filtered = %v, want 2 entries", filtered)
	}
	for _, f := range filtered {
		if f[:2] != "al" {
			t.Errorf("filtered entry %q does not match prefix", f)
		}
	}
}

func TestAutocompleteNoMatchKeepsInput(t *testing.T) {
	ac := NewAutocomplete(8, 32)
	ac.UpdateInput("alz", candidateTable(t))
	if got := ac.CurrentInput(); got != "alz" {
		t.Errorf("input = %q, want %q", got, "alz")
	}
}

func TestAutocompleteCycling(t *testing.T) {
	ac := NewAutocomplete(8, 32)
	ac.UpdateInput("al", candidateTable(t))

	ac.CycleForward()
	if got := ac.CurrentInput(); got != "alpine " {
		t.Errorf("forward 1 = %q, want %q", got, "alpine ")
	}
	ac.CycleForward()
	if got := ac.CurrentInput(); got != "alpha " {
		t.Errorf("forward 2 = %q, want %q", got, "alpha ")
	}

	ac.CycleBackward()
	if got := ac.CurrentInput(); got != "alpine " {
		t.Errorf("backward = %q, want %q", got, "alpine ")
	}
}

func TestAutocompleteCycleEmptyIsNoop(t *testing.T) {
	ac := NewAutocomplete(8, 32)
	ac.UpdateInput("zz", candidateTable(t))
	ac.CycleForward()
	if got := ac.CurrentInput(); got != "zz" {
		t.Errorf("input = %q, want %q", got, "zz")
	}
}

func TestAutocompleteBucketReloadOnFirstLetterChange(t *testing.T) {
	calls := 0
	fn := func(first byte) []string {
		calls++
		if first == 'a' {
			return []string{"alpha"}
		}
		return []string{"led", "level"}
	}

	ac := NewAutocomplete(8, 32)
	ac.UpdateInput("a", fn)
	ac.UpdateInput("al", fn)
	if calls != 1 {
		t.Errorf("bucket loaded %d times for same letter, want 1", calls)
	}
	ac.UpdateInput("le", fn)
	if calls != 2 {
		t.Errorf("bucket loads = %d, want 2 after letter change", calls)
	}
	if got := ac.CurrentInput(); got != "le" {
		t.Errorf("input = %q, want %q", got, "le")
	}
}

func TestAutocompleteCandidateCapTruncates(t *testing.T) {
	fn := func(first byte) []string {
		return []string{"aa", "ab", "ac", "ad"}
	}
	ac := NewAutocomplete(2, 32)
	ac.UpdateInput("a", fn)
	if got := len(ac.FilteredCandidates()); got != 2 {
		t.Errorf("filtered %d candidates, want 2 (capacity)", got)
	}
}

func TestAutocompleteReset(t *testing.T) {
	ac := NewAutocomplete(8, 32)
	ac.UpdateInput("al", candidateTable(t))
	ac.Reset()
	if ac.CurrentInput() != "" || len(ac.FilteredCandidates()) != 0 {
		t.Error("reset did not clear state")
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"empty set", nil, ""},
		{"single", []string{"led"}, "led"},
		{"shared", []string{"alpha", "alpine"}, "alp"},
		{"disjoint", []string{"led", "read"}, ""},
		{"identical", []string{"led", "led"}, "led"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := longestCommonPrefix(tt.in); got != tt.want {
				t.Errorf("lcp(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
