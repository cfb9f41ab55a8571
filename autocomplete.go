package ushell

import "strings"

// CandidatesFn returns the command names starting with the given first
// letter. The generated dispatcher provides one backed by static
// per-letter buckets; anything returning a stable slice works.
type CandidatesFn func(first byte) []string

// Autocomplete filters a command-name table by the current input
// prefix and supports Tab cycling through the matches.
//
// Candidates are loaded lazily: the per-letter bucket is fetched only
// when the first character of the input changes, and at most
// maxCandidates entries of it are cached.
type Autocomplete struct {
	candidates []string // cached bucket for the current first letter
	filtered   []string // candidates matching the whole prefix
	input      string   // current (possibly completed) input
	tabIndex   int
	firstChar  byte
	firstSet   bool

	maxCandidates int
	nameLen       int
}

// NewAutocomplete creates an engine caching at most maxCandidates
// entries per first-letter bucket, with command names bounded by
// nameLen bytes.
func NewAutocomplete(maxCandidates, nameLen int) *Autocomplete {
	if maxCandidates < 1 {
		maxCandidates = 1
	}
	if nameLen < 1 {
		nameLen = 1
	}
	return &Autocomplete{
		candidates:    make([]string, 0, maxCandidates),
		filtered:      make([]string, 0, maxCandidates),
		maxCandidates: maxCandidates,
		nameLen:       nameLen,
	}
}

// UpdateInput refilters against newInput.
//
//   - Empty input clears all state.
//   - A changed first letter reloads the candidate bucket via
//     getCandidates, silently truncating to the cache capacity.
//   - One match: the input is completed to it plus a trailing space.
//   - Several matches: the input becomes their longest common prefix.
func (a *Autocomplete) UpdateInput(newInput string, getCandidates CandidatesFn) {
	if len(newInput) > a.nameLen {
		newInput = newInput[:a.nameLen]
	}
	a.input = newInput
	a.filtered = a.filtered[:0]
	a.tabIndex = 0

	if a.input == "" {
		a.candidates = a.candidates[:0]
		a.firstSet = false
		return
	}

	first := a.input[0]
	if !a.firstSet || a.firstChar != first {
		a.candidates = a.candidates[:0]
		if getCandidates != nil {
			for _, c := range getCandidates(first) {
				if len(a.candidates) == a.maxCandidates {
					break
				}
				a.candidates = append(a.candidates, c)
			}
		}
		a.firstChar = first
		a.firstSet = true
	}

	for _, c := range a.candidates {
		if strings.HasPrefix(c, a.input) {
			if len(a.filtered) == cap(a.filtered) {
				break
			}
			a.filtered = append(a.filtered, c)
		}
	}

	switch {
	case len(a.filtered) == 1:
		a.input = a.filtered[0] + " "
	case len(a.filtered) > 1:
		a.input = longestCommonPrefix(a.filtered)
	}
}

// CycleForward selects the next filtered candidate (with a trailing
// space). No-op when nothing matches.
func (a *Autocomplete) CycleForward() {
	if len(a.filtered) == 0 {
		return
	}
	a.tabIndex = (a.tabIndex + 1) % len(a.filtered)
	a.input = a.filtered[a.tabIndex] + " "
}

// CycleBackward selects the previous filtered candidate (with a
// trailing space). No-op when nothing matches.
func (a *Autocomplete) CycleBackward() {
	if len(a.filtered) == 0 {
		return
	}
	if a.tabIndex == 0 {
		a.tabIndex = len(a.filtered) - 1
	} else {
		a.tabIndex--
	}
	a.input = a.filtered[a.tabIndex] + " "
}

// CurrentInput returns the current, possibly completed, input text.
func (a *Autocomplete) CurrentInput() string {
	return a.input
}

// FilteredCandidates returns the candidates matching the current
// prefix, for suggestion displays.
func (a *Autocomplete) FilteredCandidates() []string {
	return a.filtered
}

// Reset clears input, caches, and the cycle position.
func (a *Autocomplete) Reset() {
	a.input = ""
	a.candidates = a.candidates[:0]
	a.filtered = a.filtered[:0]
	a.firstSet = false
	a.tabIndex = 0
}

// longestCommonPrefix computes the byte-wise LCP; it may be empty.
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	prefix := strs[0]
	for _, s := range strs[1:] {
		for !strings.HasPrefix(s, prefix) {
			if prefix == "" {
				return ""
			}
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
