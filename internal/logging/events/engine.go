package events

import "github.com/atomicstack/focusnav/internal/logging"

type EngineTracer struct{}

var Engine = EngineTracer{}

func (EngineTracer) DroppedRequests(count int) {
	logging.Trace("engine.dropped-requests", map[string]interface{}{"count": count})
}

func (EngineTracer) LockGated(request string) {
	logging.Trace("engine.lock-gated", map[string]interface{}{"request": request})
}

func (EngineTracer) InitialFocus(node int64) {
	logging.Trace("engine.initial-focus", map[string]interface{}{"node": node})
}

func (EngineTracer) NoFocusables() {
	logging.Warn("navigation request received but the graph has no focusable nodes")
}
