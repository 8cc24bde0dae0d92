package events

import "github.com/atomicstack/focusnav/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Resolved(request string, from, to []int64) {
	logging.Trace("nav.resolved", map[string]interface{}{
		"request": request,
		"from":    from,
		"to":      to,
	})
}

func (NavTracer) NoChanges(request string, from []int64) {
	logging.Trace("nav.no-changes", map[string]interface{}{"request": request, "from": from})
}

func (NavTracer) Locked(reason string) {
	logging.Trace("nav.locked", map[string]interface{}{"reason": reason})
}

func (NavTracer) Unlocked(reason string) {
	logging.Trace("nav.unlocked", map[string]interface{}{"reason": reason})
}

func (NavTracer) SpuriousUnlock() {
	logging.Warn("unlock requested while the navigation lock is not held")
}
