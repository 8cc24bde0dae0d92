package demo

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/focusnav/internal/config"
)

// Run builds the demo scene and blocks inside the Bubble Tea event loop
// until the user quits.
func Run(cfg config.Demo) error {
	tree, err := BuildScene(!cfg.NoWrap)
	if err != nil {
		return err
	}
	model := NewModel(tree, cfg.Width, cfg.Height)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
