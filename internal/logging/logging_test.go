package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigureCreatesDirectoryAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tmp", "bootmenu.log")
	Configure(path, 1)
	t.Cleanup(func() { _ = Close() })

	Printf("Executing: %s", "echo one")
	Warn(errors.New("fallback in use"))
	Error(nil)

	if got := Path(); got != path {
		t.Fatalf("expected path %q, got %q", path, got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "Executing: echo one") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "warning: fallback in use") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path, 1)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		_ = Close()
	})

	Trace("ignored", nil)
	SetTraceEnabled(true)
	Trace("menu.cursor", map[string]interface{}{"cursor": 2})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single trace line, got %q", lines)
	}
	var entry struct {
		Event   string         `json:"event"`
		Run     string         `json:"run"`
		Payload map[string]int `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "menu.cursor" || entry.Payload["cursor"] != 2 {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.Run != RunID() {
		t.Fatalf("expected run id %q, got %q", RunID(), entry.Run)
	}
}

func TestUnwritableLogIsIgnored(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	// the parent of the log path is a regular file, so nothing can be created
	Configure(filepath.Join(blocker, "sub", "bootmenu.log"), 1)
	t.Cleanup(func() { _ = Close() })

	Printf("still running")
	Error(errors.New("boom"))
}
