package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/focusnav/navigation"
)

const breadcrumbSeparator = " > "

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Header.Render("focusnav"))
	if crumb := m.breadcrumb(); crumb != "" {
		b.WriteString("  ")
		b.WriteString(styles.Breadcrumb.Render(crumb))
	}
	b.WriteString("\n")

	if m.engine.Locked() {
		b.WriteString(styles.LockBanner.Render(" navigation locked, press f12 to release "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, menu := range m.tree.Menus() {
		b.WriteString(m.renderMenu(menu))
		b.WriteString("\n")
	}

	if m.jumping {
		b.WriteString(styles.Jump.Render(m.jump.View()))
		b.WriteString("\n")
	}
	footer := "arrows move · enter activates · esc cancels · tab cycles · / jumps"
	if m.last != nil {
		footer += "  [" + m.last.Kind.String() + "]"
	}
	b.WriteString(styles.Footer.Render(footer))
	return b.String()
}

// breadcrumb renders the reachable-from ascent of the focused node, root
// first.
func (m *Model) breadcrumb() string {
	focused := m.tree.Focused()
	if focused == navigation.NoNode {
		return ""
	}
	path := navigation.RootPath(focused, m.tree)
	parts := make([]string, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		parts = append(parts, m.nodeLabel(path[i]))
	}
	return strings.Join(parts, breadcrumbSeparator)
}

// renderMenu lays the menu's own focusables out in rows, grouping by the Y
// coordinate used for spatial navigation.
func (m *Model) renderMenu(menu navigation.NodeID) string {
	var b strings.Builder
	title := m.tree.Marker(menu)
	if title == "" {
		title = m.nodeLabel(menu)
	}
	b.WriteString(styles.Header.Render(title))
	b.WriteString("\n")

	rows := map[float64][]navigation.NodeID{}
	var ys []float64
	for _, id := range navigation.MenuFocusables(menu, m.tree) {
		pos, _ := m.tree.Position(id)
		if _, ok := rows[pos.Y]; !ok {
			ys = append(ys, pos.Y)
		}
		rows[pos.Y] = append(rows[pos.Y], id)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))
	for _, y := range ys {
		row := rows[y]
		sort.Slice(row, func(i, j int) bool {
			a, _ := m.tree.Position(row[i])
			b, _ := m.tree.Position(row[j])
			return a.X < b.X
		})
		cells := make([]string, len(row))
		for i, id := range row {
			cells[i] = m.renderItem(id)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderItem(id navigation.NodeID) string {
	f, _ := m.tree.Focusable(id)
	label := " " + m.nodeLabel(id) + " "
	return styles.ForState(f.State).Render(label)
}

func (m *Model) nodeLabel(id navigation.NodeID) string {
	if name := m.tree.Name(id); name != "" {
		return name
	}
	return fmt.Sprintf("node-%d", id)
}
