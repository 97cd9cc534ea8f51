package menu

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	// MaxLabelWidth is the widest label, in display cells, the menu draws.
	MaxLabelWidth = 49
	// MaxCommandLength bounds a command string in bytes.
	MaxCommandLength = 255

	DefaultTitle   = "Boot Menu"
	DefaultTimeout = 10
	MaxTimeout     = 3600
)

// Option is a single selectable menu entry.
type Option struct {
	Label   string
	Command string
	// Type is read from the document; nothing acts on it.
	Type string
}

// Complete reports whether both the label and the command are set.
func (o Option) Complete() bool {
	return strings.TrimSpace(o.Label) != "" && strings.TrimSpace(o.Command) != ""
}

// Config is the menu definition consumed by the selection engine and the
// dispatcher. It is not modified after construction.
type Config struct {
	Title   string
	Timeout int
	Options []Option
}

// Labels returns the option labels in display order.
func (c Config) Labels() []string {
	labels := make([]string, len(c.Options))
	for i, opt := range c.Options {
		labels[i] = opt.Label
	}
	return labels
}

// WithTimeout returns a copy of c using the given timeout. Non-positive
// values leave the timeout unchanged.
func (c Config) WithTimeout(seconds int) Config {
	if seconds <= 0 {
		return c
	}
	out := c
	out.Options = append([]Option(nil), c.Options...)
	out.Timeout = seconds
	return out
}

func clipLabel(label string) string {
	label = strings.TrimSpace(label)
	if ansi.StringWidth(label) <= MaxLabelWidth {
		return label
	}
	return ansi.Truncate(label, MaxLabelWidth, "")
}
