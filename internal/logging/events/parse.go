package events

import "github.com/atomicstack/bootmenu/internal/logging"

type ParseTracer struct{}

type parseReason string

const (
	ParseReasonMissingLabel   parseReason = "missing-label"
	ParseReasonMissingCommand parseReason = "missing-command"
	ParseReasonCommandTooLong parseReason = "command-too-long"
	ParseReasonNonNumeric     parseReason = "non-numeric"
	ParseReasonOutOfRange     parseReason = "out-of-range"
)

var Parse = ParseTracer{}

func (ParseTracer) Section(name string, line int) {
	logging.Trace("parse.section", map[string]interface{}{"name": name, "line": line})
}

func (ParseTracer) Declare(name string, line int) {
	logging.Trace("parse.declare", map[string]interface{}{"name": name, "line": line})
}

func (ParseTracer) Field(section, key string, line int) {
	logging.Trace("parse.field", map[string]interface{}{"section": section, "key": key, "line": line})
}

func (ParseTracer) TimeoutRejected(value string, kept int, reason parseReason) {
	logging.Trace("parse.timeout.rejected", map[string]interface{}{
		"value":  value,
		"kept":   kept,
		"reason": string(reason),
	})
}

func (ParseTracer) OptionSkipped(name string, reason parseReason) {
	logging.Trace("parse.option.skip", map[string]interface{}{"name": name, "reason": string(reason)})
}

func (ParseTracer) Done(options int) {
	logging.Trace("parse.done", map[string]interface{}{"options": options})
}
