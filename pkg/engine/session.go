// pkg/engine/session.go
package engine

import "sort"

// Session holds per-sitting progress: the attempts counter for the
// level currently being played and the set of completed level indices.
// It lives in memory only and is reset on process restart.
//
// Attempts counts level entries, not launches: the initial entry and
// every retry each count one, and switching levels resets the counter
// for the newly entered level.
type Session struct {
	attempts  int
	completed map[int]struct{}
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		completed: make(map[int]struct{}),
	}
}

// RecordEntry increments the attempts counter for the current level.
func (s *Session) RecordEntry() {
	s.attempts++
}

// ResetAttempts zeroes the counter when a different level is entered.
func (s *Session) ResetAttempts() {
	s.attempts = 0
}

// Attempts returns the entry count for the current level.
func (s *Session) Attempts() int {
	return s.attempts
}

// Complete marks a level index as completed. Insertion is idempotent.
func (s *Session) Complete(index int) {
	s.completed[index] = struct{}{}
}

// IsCompleted reports whether a level index has been completed.
func (s *Session) IsCompleted(index int) bool {
	_, ok := s.completed[index]
	return ok
}

// Completed returns the completed level indices in ascending order.
func (s *Session) Completed() []int {
	out := make([]int, 0, len(s.completed))
	for i := range s.completed {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
