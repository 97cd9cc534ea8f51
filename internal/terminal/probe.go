package terminal

import (
	"os"

	"golang.org/x/term"
)

// Details summarises the standard descriptors for the startup trace.
type Details struct {
	Detected *Detected     `json:"detected,omitempty"`
	Probes   []ProbeResult `json:"probes"`
}

type Detected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Probe inspects stdin, stdout and stderr for terminal support and size.
func Probe() Details {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ProbeResult, 0, len(probes))
	var detected *Detected
	for _, probe := range probes {
		entry := ProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &Detected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return Details{Detected: detected, Probes: results}
}
