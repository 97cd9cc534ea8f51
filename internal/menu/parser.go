package menu

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/bootmenu/internal/logging/events"
)

const promptKey = "prompt"

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionPrompt
	sectionOption
)

// field names the slot the next scalar is written to.
type field int

const (
	fieldNone field = iota
	fieldSkip
	fieldTitle
	fieldTimeout
	fieldOptionNames
	fieldLabel
	fieldCommand
	fieldType
)

// parseContext holds the state of a single Parse call.
type parseContext struct {
	cfg Config

	depth   int
	section sectionKind
	name    string
	// pending is the root key whose mapping value opens a section.
	pending string
	expect  field

	inNames    bool
	namesDepth int

	names   []string
	options map[string]*Option
}

func newParseContext() *parseContext {
	return &parseContext{
		cfg:     Config{Title: DefaultTitle, Timeout: DefaultTimeout},
		options: make(map[string]*Option),
	}
}

// Parse reads a menu document from r. Malformed input returns a *ParseError;
// a document without a complete option returns a *ContentError.
func Parse(r io.Reader) (Config, error) {
	stream, err := ReadEvents(r)
	if err != nil {
		return Config{}, err
	}
	ctx := newParseContext()
	for _, ev := range stream {
		if ev.Kind == StreamEnd {
			break
		}
		if err := ctx.handle(ev); err != nil {
			return Config{}, err
		}
	}
	return ctx.finish()
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (Config, error) {
	return Parse(bytes.NewReader(data))
}

func (p *parseContext) handle(ev Event) error {
	switch ev.Kind {
	case MappingStart:
		p.depth++
		if p.pending != "" && p.depth == 2 {
			p.openSection(p.pending, ev.Line)
		}
		p.pending = ""
		p.expect = fieldNone
	case MappingEnd:
		if p.section != sectionNone && p.depth == 2 {
			if p.section == sectionPrompt && p.inNames {
				return &ParseError{Line: ev.Line, Msg: "prompt section closed inside its options list"}
			}
			p.section = sectionNone
			p.name = ""
		}
		p.depth--
	case SequenceStart:
		p.depth++
		if p.expect == fieldOptionNames && p.section == sectionPrompt {
			p.inNames = true
			p.namesDepth = p.depth
		}
		p.pending = ""
		p.expect = fieldNone
	case SequenceEnd:
		if p.inNames && p.depth == p.namesDepth {
			p.inNames = false
		}
		p.depth--
	case Scalar:
		p.scalar(ev)
	}
	return nil
}

func (p *parseContext) openSection(name string, line int) {
	events.Parse.Section(name, line)
	if name == promptKey {
		p.section = sectionPrompt
		return
	}
	p.section = sectionOption
	p.name = name
}

func (p *parseContext) scalar(ev Event) {
	if p.pending != "" {
		// a section key followed by a plain value; nothing to open
		p.pending = ""
		return
	}
	if p.expect != fieldNone {
		p.assign(ev)
		p.expect = fieldNone
		return
	}
	if p.inNames {
		if p.depth == p.namesDepth {
			p.declare(ev.Value, ev.Line)
		}
		return
	}
	switch {
	case p.depth == 1:
		p.rootKey(ev.Value)
	case p.depth == 2 && p.section == sectionPrompt:
		p.promptKey(ev)
	case p.depth == 2 && p.section == sectionOption:
		p.optionKey(ev)
	}
}

func (p *parseContext) rootKey(key string) {
	if key == promptKey {
		p.pending = key
		return
	}
	if _, ok := p.options[key]; ok {
		p.pending = key
		return
	}
	p.expect = fieldSkip
}

func (p *parseContext) promptKey(ev Event) {
	switch ev.Value {
	case "title":
		p.expect = fieldTitle
	case "timeout":
		p.expect = fieldTimeout
	case "options":
		p.expect = fieldOptionNames
	default:
		p.expect = fieldSkip
		return
	}
	events.Parse.Field(promptKey, ev.Value, ev.Line)
}

func (p *parseContext) optionKey(ev Event) {
	switch ev.Value {
	case "label":
		p.expect = fieldLabel
	case "cmd":
		p.expect = fieldCommand
	case "type":
		p.expect = fieldType
	default:
		// "options" is reserved for nested menus
		p.expect = fieldSkip
		return
	}
	events.Parse.Field(p.name, ev.Value, ev.Line)
}

func (p *parseContext) declare(name string, line int) {
	name = strings.TrimSpace(name)
	if name == "" || name == promptKey {
		return
	}
	if _, ok := p.options[name]; ok {
		return
	}
	events.Parse.Declare(name, line)
	p.names = append(p.names, name)
	p.options[name] = &Option{}
}

func (p *parseContext) assign(ev Event) {
	switch p.expect {
	case fieldTitle:
		if title := strings.TrimSpace(ev.Value); title != "" {
			p.cfg.Title = title
		}
	case fieldTimeout:
		p.setTimeout(ev.Value)
	case fieldLabel:
		p.options[p.name].Label = ev.Value
	case fieldCommand:
		p.options[p.name].Command = ev.Value
	case fieldType:
		p.options[p.name].Type = strings.TrimSpace(ev.Value)
	case fieldOptionNames, fieldSkip:
		// a scalar where the names sequence belongs declares nothing
	}
}

func (p *parseContext) setTimeout(raw string) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		events.Parse.TimeoutRejected(raw, p.cfg.Timeout, events.ParseReasonNonNumeric)
		return
	}
	if value <= 0 || value > MaxTimeout {
		events.Parse.TimeoutRejected(raw, p.cfg.Timeout, events.ParseReasonOutOfRange)
		return
	}
	p.cfg.Timeout = value
}

func (p *parseContext) finish() (Config, error) {
	cfg := p.cfg
	for _, name := range p.names {
		opt := p.options[name]
		switch {
		case strings.TrimSpace(opt.Label) == "":
			events.Parse.OptionSkipped(name, events.ParseReasonMissingLabel)
			continue
		case strings.TrimSpace(opt.Command) == "":
			events.Parse.OptionSkipped(name, events.ParseReasonMissingCommand)
			continue
		case len(opt.Command) > MaxCommandLength:
			events.Parse.OptionSkipped(name, events.ParseReasonCommandTooLong)
			continue
		}
		cfg.Options = append(cfg.Options, Option{
			Label:   clipLabel(opt.Label),
			Command: strings.TrimSpace(opt.Command),
			Type:    opt.Type,
		})
	}
	events.Parse.Done(len(cfg.Options))
	if len(cfg.Options) == 0 {
		return Config{}, &ContentError{Err: fmt.Errorf("%w (%d declared)", ErrNoOptions, len(p.names))}
	}
	return cfg, nil
}
