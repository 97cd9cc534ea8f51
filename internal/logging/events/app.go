package events

import "github.com/atomicstack/bootmenu/internal/logging"

type AppTracer struct{}

type ConfigTracer struct{}

var (
	App    = AppTracer{}
	Config = ConfigTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) SelectionFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.selection.error", map[string]interface{}{"error": err.Error()})
}

func (ConfigTracer) Loaded(path, title string, timeout, options int) {
	logging.Trace("config.loaded", map[string]interface{}{
		"path":    path,
		"title":   title,
		"timeout": timeout,
		"options": options,
	})
}

func (ConfigTracer) Fallback(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("config.fallback", payload)
}

func (ConfigTracer) TimeoutOverride(from, to int) {
	logging.Trace("config.timeout.override", map[string]interface{}{"from": from, "to": to})
}
