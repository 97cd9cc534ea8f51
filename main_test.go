package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/bootmenu/internal/app"
	"github.com/atomicstack/bootmenu/internal/config"
	"github.com/atomicstack/bootmenu/internal/logging"
	"github.com/atomicstack/bootmenu/internal/terminal"
	"github.com/atomicstack/bootmenu/internal/testutil"
)

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			MenuPath: "menu.yaml",
			Timeout:  4,
			Width:    80,
			Height:   24,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"config":  "menu.yaml",
			"timeout": "4",
			"width":   "80",
			"height":  "24",
		},
		Args: []string{"--config", "menu.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["config"] != "menu.yaml" {
		t.Fatalf("expected config flag %q, got %v", "menu.yaml", flagsValue["config"])
	}
	if flagsValue["timeout"] != "4" {
		t.Fatalf("expected timeout 4, got %v", flagsValue["timeout"])
	}
	if _, ok := payload["tty"].(terminal.Details); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if payload["run"] != logging.RunID() {
		t.Fatalf("expected run id in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestCheckCommandMatchesGolden(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = logging.Close() })

	cmd := newRootCmd([]string{"HOME=" + dir})
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", "--config", "testdata/menu.yaml", "--log-file", filepath.Join(dir, "tmp", "bootmenu.log")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	testutil.AssertGolden(t, "check.golden", out.String())
}

func TestCheckCommandFailsOnMissingMenu(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = logging.Close() })

	cmd := newRootCmd([]string{"HOME=" + dir})
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check"})
	if err := cmd.Execute(); err != errCheckFailed {
		t.Fatalf("expected errCheckFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "built-in menu would be used") {
		t.Fatalf("expected fallback notice, got:\n%s", out.String())
	}
}
