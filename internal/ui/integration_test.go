package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCountdownFiresWithinOnePollOfTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("real-time countdown")
	}
	const timeout = time.Second
	start := time.Now()
	h := NewHarness(NewModel(testConfig(1, "a", "b"), Options{}))
	h.Start()
	elapsed := time.Since(start)

	res := h.Model().Result()
	if res.Reason != TimedOut || res.Index != 0 {
		t.Fatalf("expected timeout on entry 0, got %+v", res)
	}
	if elapsed < timeout {
		t.Fatalf("countdown finished early after %v", elapsed)
	}
	if elapsed >= timeout+DefaultPollInterval {
		t.Fatalf("countdown finished late after %v", elapsed)
	}
}

func TestRunConfirmsFromInput(t *testing.T) {
	var out bytes.Buffer
	res, err := Run(testConfig(30, "a", "b", "c"), Options{
		Input:  strings.NewReader("\x1b[B\r"),
		Output: &out,
		Width:  40,
		Height: 10,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Reason != Confirmed || res.Index != 1 {
		t.Fatalf("expected confirmed entry 1, got %+v", res)
	}
}
