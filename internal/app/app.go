package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atomicstack/bootmenu/internal/dispatcher"
	"github.com/atomicstack/bootmenu/internal/format/table"
	"github.com/atomicstack/bootmenu/internal/logging"
	"github.com/atomicstack/bootmenu/internal/logging/events"
	"github.com/atomicstack/bootmenu/internal/menu"
	"github.com/atomicstack/bootmenu/internal/terminal"
	"github.com/atomicstack/bootmenu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	MenuPath     string
	Timeout      int
	PollInterval time.Duration
	Width        int
	Height       int
}

// ErrDispatchReturned is returned if the dispatcher gave control back, which
// only happens when its exit hook does not terminate the process.
var ErrDispatchReturned = errors.New("dispatch returned to the menu")

// SelectFunc runs the interactive selection.
type SelectFunc func(menu.Config, ui.Options) (ui.Result, error)

// App wires the loader, the selection engine and the dispatcher.
type App struct {
	cfg        Config
	selectFn   SelectFunc
	dispatcher *dispatcher.Dispatcher
}

type Option func(*App)

// WithSelect replaces the interactive selection.
func WithSelect(fn SelectFunc) Option {
	return func(a *App) { a.selectFn = fn }
}

// WithDispatcher replaces the default dispatcher.
func WithDispatcher(d *dispatcher.Dispatcher) Option {
	return func(a *App) { a.dispatcher = d }
}

func New(cfg Config, opts ...Option) *App {
	a := &App{cfg: cfg, selectFn: ui.Run}
	for _, opt := range opts {
		opt(a)
	}
	if a.dispatcher == nil {
		a.dispatcher = dispatcher.New()
	}
	return a
}

// LoadMenu reads the menu document, substituting the built-in menu when it
// cannot be used, and applies the timeout override.
func LoadMenu(cfg Config) menu.Config {
	m, err := menu.LoadOrDefault(cfg.MenuPath)
	if err != nil {
		logging.Warn(fmt.Errorf("using built-in menu: %w", err))
		events.Config.Fallback(cfg.MenuPath, err)
	} else {
		events.Config.Loaded(cfg.MenuPath, m.Title, m.Timeout, len(m.Options))
	}
	if cfg.Timeout > 0 && cfg.Timeout != m.Timeout {
		events.Config.TimeoutOverride(m.Timeout, cfg.Timeout)
		m = m.WithTimeout(cfg.Timeout)
	}
	return m
}

// Run shows the menu and dispatches the chosen entry. A failing menu falls
// back to the first entry.
func (a *App) Run(ctx context.Context) dispatcher.Outcome {
	m := LoadMenu(a.cfg)
	res, err := a.selectFn(m, ui.Options{
		Width:        a.cfg.Width,
		Height:       a.cfg.Height,
		PollInterval: a.cfg.PollInterval,
	})
	if err != nil {
		logging.Error(fmt.Errorf("menu: %w", err))
		events.App.SelectionFailed(err)
		res = ui.Result{Index: 0, Reason: ui.TimedOut}
	}
	return a.dispatcher.Dispatch(ctx, m, res.Index)
}

// Exec dispatches the entry matching query without showing the menu.
func (a *App) Exec(ctx context.Context, query string) (dispatcher.Outcome, error) {
	m := LoadMenu(a.cfg)
	index, err := menu.Match(m, query)
	if err != nil {
		return dispatcher.Outcome{}, err
	}
	return a.dispatcher.Dispatch(ctx, m, index), nil
}

// Check parses the menu document and writes a summary to w. The parse error
// is returned when the built-in menu would be used instead.
func Check(cfg Config, w io.Writer) error {
	m, err := menu.Load(cfg.MenuPath)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\nbuilt-in menu would be used:\n", cfg.MenuPath, err)
		m = menu.Default()
	} else {
		fmt.Fprintf(w, "%s: ok\n", cfg.MenuPath)
	}
	m = m.WithTimeout(cfg.Timeout)
	fmt.Fprintf(w, "title:   %s\ntimeout: %ds\n", m.Title, m.Timeout)
	rows := make([][]string, len(m.Options))
	for i, opt := range m.Options {
		rows[i] = []string{fmt.Sprintf("%d.", i+1), opt.Label, opt.Command}
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight}) {
		fmt.Fprintf(w, "  %s\n", line)
	}
	return err
}

// Run bootstraps the menu against the controlling terminal.
func Run(cfg Config) error {
	saved := terminal.SnapshotStdin()
	a := New(cfg, WithDispatcher(dispatcher.New(dispatcher.WithReleaser(saved))))
	a.Run(context.Background())
	return ErrDispatchReturned
}

// Exec dispatches a single entry against the controlling terminal.
func Exec(cfg Config, query string) error {
	a := New(cfg, WithDispatcher(dispatcher.New(dispatcher.WithReleaser(terminal.SnapshotStdin()))))
	if _, err := a.Exec(context.Background(), query); err != nil {
		return err
	}
	return ErrDispatchReturned
}
