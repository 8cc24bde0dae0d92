package demo

import (
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/focusnav/engine"
	"github.com/atomicstack/focusnav/graph"
	"github.com/atomicstack/focusnav/input"
	"github.com/atomicstack/focusnav/internal/logging/events"
	"github.com/atomicstack/focusnav/internal/theme"
	"github.com/atomicstack/focusnav/navigation"
)

var styles = theme.Default()

// Model implements the Bubble Tea model for the demo.
type Model struct {
	engine *engine.Engine
	tree   *graph.Tree
	keymap input.Keymap

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	jump    textinput.Model
	jumping bool

	last *navigation.Event
}

// NewModel wraps a built scene tree. Width and height of zero track the
// terminal size.
func NewModel(tree *graph.Tree, width, height int) *Model {
	jump := textinput.New()
	jump.Placeholder = "node name"
	jump.Prompt = "jump: "
	jump.PromptStyle = *styles.JumpPrompt
	m := &Model{
		engine: engine.New(tree),
		tree:   tree,
		keymap: input.DefaultKeymap(),
		jump:   jump,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	return m
}

// Engine exposes the engine driving the model, mainly for tests.
func (m *Model) Engine() *engine.Engine {
	return m.engine
}

func (m *Model) Init() tea.Cmd {
	// Focus the first tab so the initial view shows a focused node.
	m.last = m.engine.Tick([]navigation.Request{navigation.FocusOn(m.firstFocusable())})
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.jumping {
		switch key {
		case "esc":
			m.closeJump()
			return m, nil
		case "enter":
			m.submitJump()
			return m, nil
		}
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}
	if key == "/" && !m.engine.Locked() {
		m.jumping = true
		m.jump.SetValue("")
		m.jump.Focus()
		return m, textinput.Blink
	}
	if req, ok := m.keymap.Request(msg); ok {
		m.last = m.engine.Tick([]navigation.Request{req})
	}
	return m, nil
}

// submitJump fuzzy-matches the prompt text against node names and focuses
// the best hit.
func (m *Model) submitJump() {
	query := m.jump.Value()
	m.closeJump()
	if query == "" {
		return
	}
	names := m.focusableNames()
	ranks := fuzzy.RankFindFold(query, names)
	if len(ranks) == 0 {
		return
	}
	sort.Sort(ranks)
	target := m.tree.FindByName(ranks[0].Target)
	if target == navigation.NoNode {
		return
	}
	events.Input.Jump(query, int64(target))
	m.last = m.engine.Tick([]navigation.Request{navigation.FocusOn(target)})
}

func (m *Model) closeJump() {
	m.jumping = false
	m.jump.Blur()
}

func (m *Model) focusableNames() []string {
	ids := m.tree.Focusables()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if f, _ := m.tree.Focusable(id); f.State == navigation.StateBlocked {
			continue
		}
		if name := m.tree.Name(id); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (m *Model) firstFocusable() navigation.NodeID {
	for _, id := range m.tree.Focusables() {
		if f, _ := m.tree.Focusable(id); f.State != navigation.StateBlocked {
			return id
		}
	}
	return navigation.NoNode
}
