package events

import "github.com/atomicstack/bootmenu/internal/logging"

type DispatchTracer struct{}

var Dispatch = DispatchTracer{}

func (DispatchTracer) Release(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("dispatch.release", payload)
}

func (DispatchTracer) Run(index int, label, command string) {
	logging.Trace("dispatch.run", map[string]interface{}{"index": index, "label": label, "command": command})
}

func (DispatchTracer) Result(command string, status int, err error) {
	payload := map[string]interface{}{"command": command, "status": status}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("dispatch.result", payload)
}
