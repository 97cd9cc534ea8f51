package dispatcher

import (
	"context"
	"fmt"
	"os"

	"github.com/atomicstack/bootmenu/internal/logging"
	"github.com/atomicstack/bootmenu/internal/logging/events"
	"github.com/atomicstack/bootmenu/internal/menu"
)

// Releaser hands the terminal back before a command runs.
type Releaser interface {
	Restore() error
}

// Outcome records what a dispatch did. Outside tests the process has exited
// before an Outcome can be observed.
type Outcome struct {
	Index   int
	Label   string
	Command string
	Status  int
	Err     error
}

// Dispatcher runs the selected entry and terminates the process.
type Dispatcher struct {
	runner   Runner
	releaser Releaser
	exit     func(int)
}

type Option func(*Dispatcher)

// WithRunner replaces the shell runner.
func WithRunner(r Runner) Option {
	return func(d *Dispatcher) { d.runner = r }
}

// WithReleaser sets the terminal releaser invoked before running a command.
func WithReleaser(r Releaser) Option {
	return func(d *Dispatcher) { d.releaser = r }
}

// WithExit replaces os.Exit.
func WithExit(exit func(int)) Option {
	return func(d *Dispatcher) { d.exit = exit }
}

func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		runner: ShellRunner{},
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch releases the terminal, runs the command of entry index, logs a
// failing status and exits. Indexes outside cfg fall back to the first entry.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg menu.Config, index int) Outcome {
	if len(cfg.Options) == 0 {
		cfg = menu.Default()
	}
	if index < 0 || index >= len(cfg.Options) {
		index = 0
	}
	opt := cfg.Options[index]
	out := Outcome{Index: index, Label: opt.Label, Command: opt.Command}

	if d.releaser != nil {
		err := d.releaser.Restore()
		events.Dispatch.Release(err)
		if err != nil {
			logging.Warn(fmt.Errorf("restore terminal: %w", err))
		}
	}

	logging.Printf("Executing: %s", opt.Command)
	events.Dispatch.Run(index, opt.Label, opt.Command)
	out.Status, out.Err = d.runner.Run(ctx, opt.Command)
	events.Dispatch.Result(opt.Command, out.Status, out.Err)
	switch {
	case out.Err != nil:
		logging.Error(fmt.Errorf("start %q: %w", opt.Command, out.Err))
	case out.Status != 0:
		logging.Printf("Command failed with exit code %d: %s", out.Status, opt.Command)
	}
	_ = logging.Close()

	d.exit(0)
	return out
}
