package state

import "time"

// Selection tracks the highlighted entry and the countdown deadline.
type Selection struct {
	Cursor   int
	Count    int
	Timeout  time.Duration
	Deadline time.Time
}

// NewSelection starts a selection over count entries with the deadline one
// timeout after now.
func NewSelection(count int, timeout time.Duration, now time.Time) *Selection {
	s := &Selection{Count: count, Timeout: timeout}
	s.Touch(now)
	return s
}

// Touch pushes the deadline one timeout past now.
func (s *Selection) Touch(now time.Time) {
	s.Deadline = now.Add(s.Timeout)
}

// MoveUp moves the cursor towards the first entry without wrapping.
func (s *Selection) MoveUp() bool {
	return s.moveCursorBy(-1)
}

// MoveDown moves the cursor towards the last entry without wrapping.
func (s *Selection) MoveDown() bool {
	return s.moveCursorBy(1)
}

func (s *Selection) moveCursorBy(delta int) bool {
	if s.Count <= 0 {
		s.Cursor = 0
		return false
	}
	old := s.Cursor
	s.Cursor += delta
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= s.Count {
		s.Cursor = s.Count - 1
	}
	return s.Cursor != old
}

// Expired reports whether now has reached the deadline.
func (s *Selection) Expired(now time.Time) bool {
	return !now.Before(s.Deadline)
}

// Remaining returns the whole seconds left, rounded up.
func (s *Selection) Remaining(now time.Time) int {
	left := s.Deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	secs := left / time.Second
	if left%time.Second != 0 {
		secs++
	}
	return int(secs)
}

// Until returns the time left before the deadline, never negative.
func (s *Selection) Until(now time.Time) time.Duration {
	left := s.Deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
