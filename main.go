package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/bootmenu/internal/config"
	"github.com/atomicstack/bootmenu/internal/logging"
	"github.com/atomicstack/bootmenu/internal/logging/events"
	"github.com/atomicstack/bootmenu/internal/terminal"
)

func main() {
	if err := newRootCmd(os.Environ()).Execute(); err != nil {
		os.Exit(1)
	}
}

// setup configures logging from the resolved runtime configuration.
func setup(cfg config.Config) {
	logging.Configure(cfg.Logging.FilePath, cfg.Logging.MaxSizeMB)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"run":    logging.RunID(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = terminal.Probe()
	return payload
}

func fail(err error) error {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
