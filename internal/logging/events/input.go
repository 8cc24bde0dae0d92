package events

import "github.com/atomicstack/focusnav/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Key(key, request string) {
	logging.Trace("input.key", map[string]interface{}{"key": key, "request": request})
}

func (InputTracer) Pointer(x, y float64, target int64) {
	logging.Trace("input.pointer", map[string]interface{}{"x": x, "y": y, "target": target})
}

func (InputTracer) Jump(query string, target int64) {
	logging.Trace("input.jump", map[string]interface{}{"query": query, "target": target})
}
