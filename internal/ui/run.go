package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/bootmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoSelection is returned when the program stops before a selection
// finished.
var ErrNoSelection = errors.New("menu exited without a selection")

// Run shows the menu until an entry is confirmed or the countdown expires.
// The terminal is back in its previous mode when Run returns.
func Run(cfg menu.Config, opts Options) (Result, error) {
	model := NewModel(cfg, opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	program := tea.NewProgram(model, progOpts...)
	final, err := program.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run menu: %w", err)
	}
	finished, ok := final.(*Model)
	if !ok || !finished.Done() {
		return Result{}, ErrNoSelection
	}
	return finished.Result(), nil
}
