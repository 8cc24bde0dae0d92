package demo

import (
	"strings"
	"testing"

	"github.com/atomicstack/focusnav/navigation"
)

func newHarness(t *testing.T) *Harness {
	t.Helper()
	tree, err := BuildScene(true)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	return NewHarness(NewModel(tree, 80, 24))
}

func focusedName(h *Harness) string {
	m := h.Model()
	return m.tree.Name(m.tree.Focused())
}

func TestSceneStartsOnFirstTab(t *testing.T) {
	h := newHarness(t)
	if got := focusedName(h); got != "tab-red" {
		t.Fatalf("initial focus = %q, want tab-red", got)
	}
}

func TestActivateAndWalkGrid(t *testing.T) {
	h := newHarness(t)
	h.Key("enter")
	if got := focusedName(h); got != "red-0-0" {
		t.Fatalf("after enter = %q, want red-0-0", got)
	}
	h.Key("right")
	if got := focusedName(h); got != "red-0-1" {
		t.Fatalf("after right = %q, want red-0-1", got)
	}
	h.Key("down")
	if got := focusedName(h); got != "red-1-1" {
		t.Fatalf("after down = %q, want red-1-1", got)
	}
	h.Key("esc")
	if got := focusedName(h); got != "tab-red" {
		t.Fatalf("after esc = %q, want tab-red", got)
	}
	// Re-entering lands on the remembered cell.
	h.Key("enter")
	if got := focusedName(h); got != "red-1-1" {
		t.Fatalf("after re-enter = %q, want red-1-1", got)
	}
}

func TestTabCyclesScopes(t *testing.T) {
	h := newHarness(t)
	h.Key("tab")
	// Scope moves land on the target tab's submenu leaf.
	if got := focusedName(h); got != "green-top" {
		t.Fatalf("after tab = %q, want green-top", got)
	}
	h.Key("shift+tab")
	if got := focusedName(h); got != "red-0-0" {
		t.Fatalf("after shift+tab = %q, want red-0-0", got)
	}
}

func TestJumpPromptFocusesByName(t *testing.T) {
	h := newHarness(t)
	h.Key("/")
	h.Key("blue-lock")
	h.Key("enter")
	if got := focusedName(h); got != "blue-lock" {
		t.Fatalf("after jump = %q, want blue-lock", got)
	}
}

func TestLockBannerAndRelease(t *testing.T) {
	h := newHarness(t)
	h.Key("/")
	h.Key("blue-lock")
	h.Key("enter")
	h.Key("enter")
	if !h.Model().Engine().Locked() {
		t.Fatalf("engine not locked after activating the lock button")
	}
	if view := h.View(); !strings.Contains(view, "navigation locked") {
		t.Fatalf("lock banner missing from view:\n%s", view)
	}

	h.Key("right")
	if got := focusedName(h); got != "blue-lock" {
		t.Fatalf("focus moved while locked, now %q", got)
	}

	h.Key("f12")
	if h.Model().Engine().Locked() {
		t.Fatalf("engine still locked after f12")
	}
}

func TestBlockedItemIsUnreachable(t *testing.T) {
	h := newHarness(t)
	h.Key("/")
	h.Key("blue-top")
	h.Key("enter")
	if got := focusedName(h); got != "blue-top" {
		t.Fatalf("setup focus = %q, want blue-top", got)
	}
	// blue-sealed sits between blue-lock and blue-back; moving down twice
	// from the top must skip it.
	h.Key("down")
	if got := focusedName(h); got != "blue-lock" {
		t.Fatalf("after down = %q, want blue-lock", got)
	}
	h.Key("down")
	if got := focusedName(h); got != "blue-back" {
		t.Fatalf("after second down = %q, want blue-back", got)
	}
}

func TestCancelButtonReturnsToTab(t *testing.T) {
	h := newHarness(t)
	h.Key("/")
	h.Key("green-back")
	h.Key("enter")
	h.Key("enter")
	if got := focusedName(h); got != "tab-green" {
		t.Fatalf("after the back button = %q, want tab-green", got)
	}
}

func TestViewShowsBreadcrumb(t *testing.T) {
	h := newHarness(t)
	h.Key("tab")
	view := h.View()
	if !strings.Contains(view, "tab-green") || !strings.Contains(view, "green-top") {
		t.Fatalf("breadcrumb missing from view:\n%s", view)
	}
}

func TestNestedMenuDescent(t *testing.T) {
	h := newHarness(t)
	h.Key("/")
	h.Key("green-nested")
	h.Key("enter")
	h.Key("enter")
	if got := focusedName(h); got != "nested-0-0" {
		t.Fatalf("nested descent = %q, want nested-0-0", got)
	}
	crumb := navigation.RootPath(h.Model().tree.Focused(), h.Model().tree)
	if len(crumb) != 3 {
		t.Fatalf("breadcrumb depth = %d, want 3 (%v)", len(crumb), crumb)
	}
}
