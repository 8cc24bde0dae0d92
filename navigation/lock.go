package navigation

// NavLock is the navigation system's lock. While it holds a reason, the
// driving loop must short-circuit every request except Unlock; Resolve only
// mutates it through its own Lock/Unlock handling.
type NavLock struct {
	reason *LockReason
}

// IsLocked reports whether the navigation system is locked.
func (l *NavLock) IsLocked() bool {
	return l.reason != nil
}

// Reason returns the lock reason when locked.
func (l *NavLock) Reason() (LockReason, bool) {
	if l.reason == nil {
		return LockReason{}, false
	}
	return *l.reason, true
}

func (l *NavLock) set(reason LockReason) {
	r := reason
	l.reason = &r
}

func (l *NavLock) clear() (LockReason, bool) {
	if l.reason == nil {
		return LockReason{}, false
	}
	r := *l.reason
	l.reason = nil
	return r, true
}
