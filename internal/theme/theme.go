package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/focusnav/navigation"
)

// Styles describes reusable Lip Gloss styles shared across the demo UI.
type Styles struct {
	Focused     *lipgloss.Style
	Active      *lipgloss.Style
	Prioritized *lipgloss.Style
	Inert       *lipgloss.Style
	Blocked     *lipgloss.Style

	Header     *lipgloss.Style
	Breadcrumb *lipgloss.Style
	Footer     *lipgloss.Style
	LockBanner *lipgloss.Style
	Jump       *lipgloss.Style
	JumpPrompt *lipgloss.Style
}

var defaultStyles = Styles{
	Focused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	),
	Active: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Prioritized: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Inert: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Blocked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Strikethrough(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Breadcrumb: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	LockBanner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("196")).Bold(true),
	),
	Jump: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	JumpPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the demo.
func Default() *Styles {
	return &defaultStyles
}

// ForState returns the style matching a focus state.
func (s *Styles) ForState(state navigation.FocusState) *lipgloss.Style {
	switch state {
	case navigation.StateFocused:
		return s.Focused
	case navigation.StateActive:
		return s.Active
	case navigation.StatePrioritized:
		return s.Prioritized
	case navigation.StateBlocked:
		return s.Blocked
	}
	return s.Inert
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
