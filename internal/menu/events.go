package menu

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EventKind identifies an entry of the flattened document stream.
type EventKind int

const (
	StreamStart EventKind = iota
	MappingStart
	MappingEnd
	SequenceStart
	SequenceEnd
	Scalar
	StreamEnd
)

func (k EventKind) String() string {
	switch k {
	case StreamStart:
		return "stream-start"
	case MappingStart:
		return "mapping-start"
	case MappingEnd:
		return "mapping-end"
	case SequenceStart:
		return "sequence-start"
	case SequenceEnd:
		return "sequence-end"
	case Scalar:
		return "scalar"
	case StreamEnd:
		return "stream-end"
	default:
		return "unknown"
	}
}

// Event is one element of the flattened document stream.
type Event struct {
	Kind  EventKind
	Value string
	Line  int
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// ReadEvents decodes the first document in r and flattens it into a stream of
// events bracketed by StreamStart and StreamEnd. Empty input produces just the
// brackets.
func ReadEvents(r io.Reader) ([]Event, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Event{{Kind: StreamStart}, {Kind: StreamEnd}}, nil
		}
		return nil, yamlParseError(err)
	}
	events := []Event{{Kind: StreamStart, Line: doc.Line}}
	events = appendNodeEvents(events, &doc)
	return append(events, Event{Kind: StreamEnd}), nil
}

func appendNodeEvents(events []Event, n *yaml.Node) []Event {
	if n == nil {
		return events
	}
	switch n.Kind {
	case yaml.DocumentNode:
		for _, child := range n.Content {
			events = appendNodeEvents(events, child)
		}
	case yaml.MappingNode:
		events = append(events, Event{Kind: MappingStart, Line: n.Line})
		for _, child := range n.Content {
			events = appendNodeEvents(events, child)
		}
		events = append(events, Event{Kind: MappingEnd, Line: n.Line})
	case yaml.SequenceNode:
		events = append(events, Event{Kind: SequenceStart, Line: n.Line})
		for _, child := range n.Content {
			events = appendNodeEvents(events, child)
		}
		events = append(events, Event{Kind: SequenceEnd, Line: n.Line})
	case yaml.ScalarNode:
		events = append(events, Event{Kind: Scalar, Value: n.Value, Line: n.Line})
	case yaml.AliasNode:
		events = appendNodeEvents(events, n.Alias)
	}
	return events
}

func yamlParseError(err error) *ParseError {
	msg := strings.TrimPrefix(err.Error(), "yaml: ")
	pe := &ParseError{Msg: msg}
	if m := yamlLinePattern.FindStringSubmatch(msg); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
		pe.Msg = strings.TrimSpace(strings.TrimPrefix(msg, m[0]+":"))
	}
	return pe
}
