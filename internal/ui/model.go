package ui

import (
	"io"
	"reflect"
	"time"

	"github.com/atomicstack/bootmenu/internal/logging/events"
	"github.com/atomicstack/bootmenu/internal/menu"
	uistate "github.com/atomicstack/bootmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultPollInterval is the longest time between two countdown checks.
const DefaultPollInterval = time.Second

// Reason records how a selection finished.
type Reason int

const (
	Pending Reason = iota
	Confirmed
	TimedOut
)

func (r Reason) String() string {
	switch r {
	case Confirmed:
		return "confirmed"
	case TimedOut:
		return "timed-out"
	default:
		return "pending"
	}
}

// Result is the outcome of a finished selection.
type Result struct {
	Index  int
	Reason Reason
}

// Options tunes the selection engine. Zero values use defaults.
type Options struct {
	Width        int
	Height       int
	PollInterval time.Duration
	Clock        func() time.Time
	Input        io.Reader
	Output       io.Writer
}

type tickMsg time.Time

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the boot menu.
type Model struct {
	cfg         menu.Config
	sel         *uistate.Selection
	keys        keyMap
	poll        time.Duration
	now         func() time.Time
	remaining   int
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	result      Result

	handlers map[reflect.Type]msgHandler
}

// NewModel starts the countdown for cfg at the current clock reading.
func NewModel(cfg menu.Config, opts Options) *Model {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	poll := opts.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	timeout := time.Duration(cfg.Timeout) * time.Second
	m := &Model{
		cfg:  cfg,
		sel:  uistate.NewSelection(len(cfg.Options), timeout, now()),
		keys: defaultKeyMap(),
		poll: poll,
		now:  now,
	}
	m.remaining = cfg.Timeout
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.scheduleTick()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Done() {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	now := m.now()
	m.sel.Touch(now)
	m.remaining = m.sel.Remaining(now)
	events.Menu.Key(keyMsg.String(), m.sel.Cursor, m.remaining)
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		return m.finish(Confirmed, m.sel.Cursor)
	case key.Matches(keyMsg, m.keys.Up):
		if m.sel.MoveUp() {
			events.Menu.Cursor(m.sel.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.sel.MoveDown() {
			events.Menu.Cursor(m.sel.Cursor)
		}
	}
	return nil
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	now := m.now()
	if m.sel.Expired(now) {
		return m.finish(TimedOut, 0)
	}
	m.remaining = m.sel.Remaining(now)
	return m.scheduleTick()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// scheduleTick arms the next countdown check, no later than the deadline.
func (m *Model) scheduleTick() tea.Cmd {
	wait := m.poll
	if left := m.sel.Until(m.now()); left < wait {
		wait = left
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) finish(reason Reason, index int) tea.Cmd {
	m.result = Result{Index: index, Reason: reason}
	label := ""
	if index >= 0 && index < len(m.cfg.Options) {
		label = m.cfg.Options[index].Label
	}
	if reason == Confirmed {
		events.Menu.Confirm(index, label)
	} else {
		events.Menu.Timeout(index, label)
	}
	return tea.Quit
}

// Done reports whether the selection has finished.
func (m *Model) Done() bool {
	return m.result.Reason != Pending
}

// Result returns the finished selection; Reason is Pending until then.
func (m *Model) Result() Result {
	return m.result
}

// Cursor returns the highlighted entry.
func (m *Model) Cursor() int {
	return m.sel.Cursor
}

// Deadline returns the instant the default entry will be chosen.
func (m *Model) Deadline() time.Time {
	return m.sel.Deadline
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.Done() {
		return ""
	}
	return Render(m.frame(), m.width, m.height)
}

func (m *Model) frame() Frame {
	return Frame{
		Title:     m.cfg.Title,
		Labels:    m.cfg.Labels(),
		Cursor:    m.sel.Cursor,
		Remaining: m.remaining,
	}
}
