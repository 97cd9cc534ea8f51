package events

import "github.com/atomicstack/bootmenu/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Key(key string, cursor int, remaining int) {
	logging.Trace("menu.key", map[string]interface{}{"key": key, "cursor": cursor, "remaining": remaining})
}

func (MenuTracer) Cursor(cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"cursor": cursor})
}

func (MenuTracer) Confirm(cursor int, label string) {
	logging.Trace("menu.confirm", map[string]interface{}{"cursor": cursor, "label": label})
}

func (MenuTracer) Timeout(index int, label string) {
	logging.Trace("menu.timeout", map[string]interface{}{"index": index, "label": label})
}
