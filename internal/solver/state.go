// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package solver

import (
	"fmt"
)

// DictionaryState owns the solver's mutable sets. It has a single-
// threaded lifecycle: the driver mutates it between pass boundaries;
// workers only ever see frozen Snapshot values built from it.
type DictionaryState struct {
	// RawTypoMap is produced once by stage 2 and never mutated by the
	// solver passes.
	RawTypoMap map[string][]string

	activeCorrections map[Correction]struct{}
	activePatterns     map[Correction]struct{}
	graveyard           map[Correction]GraveyardEntry
	patternReplacements map[Correction][]Correction
	formattedCache      map[Correction]string
	dirty               map[Correction]struct{}

	CurrentIteration int

	events []Event
}

// Event is a single append-only structured debug log entry.
type Event struct {
	Iteration int
	Pass      string
	Message   string
	Triple    *Correction
}

// NewDictionaryState builds an empty state around a raw typo map.
func NewDictionaryState(rawTypoMap map[string][]string) *DictionaryState {
	return &DictionaryState{
		RawTypoMap:          rawTypoMap,
		activeCorrections:   make(map[Correction]struct{}),
		activePatterns:      make(map[Correction]struct{}),
		graveyard:           make(map[Correction]GraveyardEntry),
		patternReplacements: make(map[Correction][]Correction),
		formattedCache:      make(map[Correction]string),
		dirty:               make(map[Correction]struct{}),
	}
}

// InvariantViolation is panicked by CheckInvariants when the state is
// caught in a provably impossible configuration. The scheduler recovers
// it per iteration and Run returns it as an error; the CLI then exits
// fatally (§7).
type InvariantViolation struct {
	Description string
	Triple      Correction
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s (triple: %s)", e.Description, e.Triple)
}

// CheckInvariants re-validates every universal invariant in §3/§8. The
// scheduler calls it at the end of every iteration, after all four
// passes; it panics with *InvariantViolation on the first violation found.
func (s *DictionaryState) CheckInvariants() {
	for c := range s.activeCorrections {
		if _, ok := s.activePatterns[c]; ok {
			panic(&InvariantViolation{"active_corrections ∩ active_patterns ≠ ∅", c})
		}
		if _, ok := s.graveyard[c]; ok {
			panic(&InvariantViolation{"active correction also in graveyard", c})
		}
	}
	for p := range s.activePatterns {
		if _, ok := s.graveyard[p]; ok {
			panic(&InvariantViolation{"active pattern also in graveyard", p})
		}
		occurrences, ok := s.patternReplacements[p]
		if !ok || len(occurrences) == 0 {
			panic(&InvariantViolation{"pattern has no occurrences in pattern_replacements", p})
		}
		for _, occ := range occurrences {
			if _, ok := s.activeCorrections[occ]; ok {
				panic(&InvariantViolation{"pattern occurrence still active", occ})
			}
		}
	}
}

// ActiveCorrections returns a snapshot slice of currently active direct
// corrections. Safe to call between passes; the driver owns mutation.
func (s *DictionaryState) ActiveCorrections() []Correction {
	out := make([]Correction, 0, len(s.activeCorrections))
	for c := range s.activeCorrections {
		out = append(out, c)
	}
	return out
}

// ActivePatterns returns a snapshot slice of currently active patterns.
func (s *DictionaryState) ActivePatterns() []Correction {
	out := make([]Correction, 0, len(s.activePatterns))
	for c := range s.activePatterns {
		out = append(out, c)
	}
	return out
}

// IsActiveCorrection reports direct-correction membership.
func (s *DictionaryState) IsActiveCorrection(c Correction) bool {
	_, ok := s.activeCorrections[c]
	return ok
}

// IsActivePattern reports pattern membership.
func (s *DictionaryState) IsActivePattern(c Correction) bool {
	_, ok := s.activePatterns[c]
	return ok
}

// IsGraveyarded reports whether the exact triple has already been
// rejected in a previous or current iteration.
func (s *DictionaryState) IsGraveyarded(c Correction) bool {
	_, ok := s.graveyard[c]
	return ok
}

// GraveyardEntryFor returns the recorded rejection for c, if any.
func (s *DictionaryState) GraveyardEntryFor(c Correction) (GraveyardEntry, bool) {
	e, ok := s.graveyard[c]
	return e, ok
}

// GraveyardSize returns the total number of rejected triples recorded so
// far.
func (s *DictionaryState) GraveyardSize() int { return len(s.graveyard) }

// GraveyardSnapshot returns a copy of the full graveyard map, for
// serializing a completed solve to the run-cache store.
func (s *DictionaryState) GraveyardSnapshot() map[Correction]GraveyardEntry {
	out := make(map[Correction]GraveyardEntry, len(s.graveyard))
	for c, e := range s.graveyard {
		out[c] = e
	}
	return out
}

// PatternReplacementsFor returns the occurrences a pattern subsumes.
func (s *DictionaryState) PatternReplacementsFor(p Correction) []Correction {
	return s.patternReplacements[p]
}

// AddActiveCorrection promotes c to active_corrections. It panics (an
// invariant violation) if c is already graveyarded in this solve, since
// "promote to active" and "in graveyard" are mutually exclusive by
// construction, and refuses it silently if c is already an active
// pattern's occurrence (the caller should not attempt that).
func (s *DictionaryState) AddActiveCorrection(c Correction) {
	if _, ok := s.graveyard[c]; ok {
		panic(&InvariantViolation{"attempted to activate a graveyarded triple in the same solve", c})
	}
	for p := range s.activePatterns {
		for _, occ := range s.patternReplacements[p] {
			if occ == c {
				return
			}
		}
	}
	s.activeCorrections[c] = struct{}{}
	s.markDirty(c)
}

// RemoveActiveCorrection removes c from active_corrections without
// graveyarding it (used when a pattern subsumes it).
func (s *DictionaryState) RemoveActiveCorrection(c Correction) {
	delete(s.activeCorrections, c)
}

// Graveyard rejects c with the given reason/blocker at the current
// iteration. Graveyarding is monotone: once added, an entry is never
// removed within a solve (§4.6 Non-convergence policy).
func (s *DictionaryState) Graveyard(c Correction, reason RejectionReason, blocker string) {
	if _, ok := s.graveyard[c]; ok {
		return // monotone: first rejection wins
	}
	delete(s.activeCorrections, c)
	delete(s.activePatterns, c)
	s.graveyard[c] = GraveyardEntry{Reason: reason, Blocker: blocker, Iteration: s.CurrentIteration}
	s.markDirty(c)
}

// CommitPattern adds pattern to active_patterns, removes its occurrences
// from active_corrections, and records pattern_replacements. It panics
// if pattern is itself already graveyarded.
func (s *DictionaryState) CommitPattern(pattern Correction, occurrences []Correction) {
	if _, ok := s.graveyard[pattern]; ok {
		panic(&InvariantViolation{"attempted to commit a graveyarded pattern", pattern})
	}
	s.activePatterns[pattern] = struct{}{}
	cp := make([]Correction, len(occurrences))
	copy(cp, occurrences)
	s.patternReplacements[pattern] = cp
	for _, occ := range occurrences {
		delete(s.activeCorrections, occ)
	}
	s.markDirty(pattern)
}

func (s *DictionaryState) markDirty(c Correction) {
	s.dirty[c] = struct{}{}
	delete(s.formattedCache, c)
}

// ClearDirty drops the dirty set once the iteration has observed and
// reacted to every change (called by the scheduler at the end of each
// iteration).
func (s *DictionaryState) ClearDirty() {
	s.dirty = make(map[Correction]struct{})
}

// Dirty reports whether c changed since the last ClearDirty call.
func (s *DictionaryState) Dirty(c Correction) bool {
	_, ok := s.dirty[c]
	return ok
}

// CachedFormat returns the memoized platform-formatted trigger for c, if
// present and not dirty.
func (s *DictionaryState) CachedFormat(c Correction) (string, bool) {
	if s.Dirty(c) {
		return "", false
	}
	v, ok := s.formattedCache[c]
	return v, ok
}

// SetCachedFormat stores the platform-formatted trigger for c.
func (s *DictionaryState) SetCachedFormat(c Correction, formatted string) {
	s.formattedCache[c] = formatted
}

// LogEvent appends a structured debug event. Cheap and append-only;
// every call is recorded, with no verbosity filtering.
func (s *DictionaryState) LogEvent(pass, message string, triple *Correction) {
	s.events = append(s.events, Event{Iteration: s.CurrentIteration, Pass: pass, Message: message, Triple: triple})
}

// Events returns the accumulated debug event log.
func (s *DictionaryState) Events() []Event { return s.events }

// Counts is a point-in-time summary of state sizes, used for both the
// convergence check and the final user-visible report (§7).
type Counts struct {
	ActiveCorrections int
	ActivePatterns    int
	Graveyard         int
}

// Snapshot returns the current Counts.
func (s *DictionaryState) Snapshot() Counts {
	return Counts{
		ActiveCorrections: len(s.activeCorrections),
		ActivePatterns:    len(s.activePatterns),
		Graveyard:         len(s.graveyard),
	}
}

// GraveyardByReason tabulates graveyard size per rejection reason, for
// the per-reason breakdown the success summary prints.
func (s *DictionaryState) GraveyardByReason() map[RejectionReason]int {
	out := make(map[RejectionReason]int)
	for _, e := range s.graveyard {
		out[e.Reason]++
	}
	return out
}
