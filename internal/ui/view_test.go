package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderIncludesTitleLabelsAndCountdown(t *testing.T) {
	view := ansi.Strip(Render(Frame{
		Title:     "Boot Menu",
		Labels:    []string{"Fedora", "Shell"},
		Cursor:    1,
		Remaining: 7,
	}, 0, 0))
	for _, want := range []string{"Boot Menu", " Fedora ", " Shell ", "Timeout 7s"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[len(lines)-1], "Timeout 7s") {
		t.Fatalf("expected countdown on the last line, got %q", lines[len(lines)-1])
	}
}

func TestRenderCentersInScreen(t *testing.T) {
	view := ansi.Strip(Render(Frame{Title: "T", Labels: []string{"a"}, Remaining: 1}, 40, 20))
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Fatalf("expected row %d width 40, got %d", i, w)
		}
	}
	if strings.TrimSpace(lines[0]) != "" {
		t.Fatalf("expected blank first row for vertical centering, got %q", lines[0])
	}
}

func TestRenderTruncatesWideLabels(t *testing.T) {
	label := strings.Repeat("w", 30)
	view := ansi.Strip(Render(Frame{Title: "T", Labels: []string{label}}, 10, 8))
	if strings.Contains(view, label) {
		t.Fatalf("expected label to be truncated, got:\n%s", view)
	}
	if !strings.Contains(view, "…") {
		t.Fatalf("expected truncation marker, got:\n%s", view)
	}
}

func TestModelViewShowsRemaining(t *testing.T) {
	m := NewModel(testConfig(9, "a", "b"), Options{Clock: newTestClock().Now})
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Timeout 9s") {
		t.Fatalf("expected initial countdown, got:\n%s", view)
	}
}
