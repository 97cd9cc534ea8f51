package state

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMoveUpStopsAtFirst(t *testing.T) {
	s := NewSelection(3, 10*time.Second, epoch)
	if s.MoveUp() {
		t.Fatalf("expected no movement from the first entry")
	}
	if s.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Cursor)
	}
}

func TestMoveDownStopsAtLast(t *testing.T) {
	s := NewSelection(3, 10*time.Second, epoch)
	if !s.MoveDown() || !s.MoveDown() {
		t.Fatalf("expected two movements")
	}
	if s.MoveDown() {
		t.Fatalf("expected no movement past the last entry")
	}
	if s.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", s.Cursor)
	}
	if !s.MoveUp() || s.Cursor != 1 {
		t.Fatalf("expected cursor 1 after moving up, got %d", s.Cursor)
	}
}

func TestEmptySelectionKeepsCursorAtZero(t *testing.T) {
	s := NewSelection(0, time.Second, epoch)
	s.Cursor = 4
	if s.MoveDown() {
		t.Fatalf("expected no movement for empty selection")
	}
	if s.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", s.Cursor)
	}
}

func TestTouchResetsDeadline(t *testing.T) {
	s := NewSelection(2, 5*time.Second, epoch)
	later := epoch.Add(4 * time.Second)
	if s.Expired(later) {
		t.Fatalf("expected deadline in the future")
	}
	s.Touch(later)
	if want := later.Add(5 * time.Second); !s.Deadline.Equal(want) {
		t.Fatalf("expected deadline %v, got %v", want, s.Deadline)
	}
	if s.Expired(epoch.Add(6 * time.Second)) {
		t.Fatalf("expected touched deadline to extend the countdown")
	}
	if !s.Expired(later.Add(5 * time.Second)) {
		t.Fatalf("expected expiry exactly at the deadline")
	}
}

func TestRemainingRoundsUp(t *testing.T) {
	s := NewSelection(1, 10*time.Second, epoch)
	cases := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 10},
		{100 * time.Millisecond, 10},
		{time.Second, 9},
		{9*time.Second + 999*time.Millisecond, 1},
		{10 * time.Second, 0},
		{11 * time.Second, 0},
	}
	for _, tc := range cases {
		if got := s.Remaining(epoch.Add(tc.elapsed)); got != tc.want {
			t.Fatalf("Remaining after %v = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
	if got := s.Until(epoch.Add(time.Minute)); got != 0 {
		t.Fatalf("expected Until clamped to 0, got %v", got)
	}
}
