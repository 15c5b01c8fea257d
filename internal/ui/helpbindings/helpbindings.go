// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ice-orion/smooth-sheets/internal/keymap"
	"github.com/ice-orion/smooth-sheets/internal/ui"
	"github.com/ice-orion/smooth-sheets/internal/ui/render"
	"github.com/ice-orion/smooth-sheets/internal/ui/styles"
)

// CloseMsg signals that the help popup should close.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"sheet",
	"detent",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global": "Global",
	"sheet":  "Sheet Motion",
	"detent": "Detents",
}

var (
	titleStyle  = styles.T().S().Title
	headerStyle = lipgloss.NewStyle().Foreground(styles.T().Secondary).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
	descStyle   = styles.T().S().Base
	dimStyle    = styles.T().S().Subtle
)

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	contexts     []string
	scrollOffset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Update handles key input while the popup is open. Close keys emit
// CloseMsg; the owner hides the popup when it arrives.
func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the help popup content (without border - the owner adds that).
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.contentLines()

	// The popup keeps the width of its widest line even when that line is
	// scrolled out of view, so the border does not jump while scrolling.
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}

	visible := m.visibleHeight()
	if visible <= 0 {
		visible = len(lines)
	}
	start := min(m.scrollOffset, len(lines))
	end := min(m.scrollOffset+visible, len(lines))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Help"))
	b.WriteString("\n\n")
	for _, line := range lines[start:end] {
		b.WriteString(line)
		if w := lipgloss.Width(line); w < width {
			b.WriteString(strings.Repeat(" ", width-w))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.footer()))

	return b.String()
}

// contentLines renders one line per binding, grouped under category
// headers, with keys left-aligned in a shared column.
func (m Model) contentLines() []string {
	keyCol := 0
	for _, b := range m.bindings {
		keyCol = max(keyCol, len(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				dimStyle.Render(render.Separator(keyCol+15)))
			context = b.Context
		}
		keys := render.Pad(strings.Join(b.Keys, ", "), keyCol)
		lines = append(lines, keyStyle.Render(keys)+"  "+descStyle.Render(b.Description))
	}
	return lines
}

func (m Model) footer() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for the popup chrome: title, footer, border
// and padding.
func (m Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m Model) totalLines() int {
	return len(m.contentLines())
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
