// internal/app/view.go
package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ice-orion/smooth-sheets/internal/keymap"
	"github.com/ice-orion/smooth-sheets/internal/ui/popup"
	"github.com/ice-orion/smooth-sheets/internal/ui/render"
	"github.com/ice-orion/smooth-sheets/internal/ui/styles"
)

// Vertical space taken by fixed chrome.
const (
	footerHeight   = 1
	inputBarHeight = 3
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	view := m.renderBackdrop()

	if sheetView := m.renderSheet(); sheetView != "" {
		view = popup.Compose(view, sheetView, m.Width, m.Height)
	}

	if m.InputVisible {
		view = popup.Compose(view, m.renderInputBar(), m.Width, m.Height)
	}

	if m.ShowHelp {
		helpView := popup.RenderBordered(m.HelpPopup.View(), m.Width, m.Height, popup.SizeAuto)
		view = popup.Compose(view, helpView, m.Width, m.Height)
	}

	return view
}

func (m Model) renderBackdrop() string {
	t := styles.T()
	s := t.S()

	lines := make([]string, 0, m.Height)

	title := styles.ApplyBoldGradient("smooth sheets", t.Primary, t.Secondary)
	lines = append(lines, render.Row(title, s.Subtle.Render("a draggable bottom sheet"), m.Width))
	lines = append(lines, s.Subtle.Render(render.Separator(m.Width)))

	if len(m.Notes) == 0 {
		lines = append(lines,
			render.EmptyLine(m.Width),
			s.Muted.Render(render.TruncateAndPad("  Drag the sheet with k/j, release with space.", m.Width)),
			s.Muted.Render(render.TruncateAndPad("  Fling it with f/d, cycle detents with tab.", m.Width)),
			s.Muted.Render(render.TruncateAndPad("  Press i to jot a note behind the sheet.", m.Width)),
		)
	} else {
		lines = append(lines, render.EmptyLine(m.Width))
		for _, note := range m.Notes {
			lines = append(lines, s.Base.Render(render.TruncateAndPad("  • "+note, m.Width)))
		}
	}

	for len(lines) < m.Height-footerHeight {
		lines = append(lines, render.EmptyLine(m.Width))
	}
	if len(lines) > m.Height-footerHeight {
		lines = lines[:m.Height-footerHeight]
	}
	lines = append(lines, m.renderFooter())

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	s := styles.T().S()

	left := s.Title.Render(m.Controller.Status().String())
	if metrics := m.Controller.Metrics(); metrics.IsMeasured() {
		measured := metrics.Measured()
		if content := measured.ContentSize(); content.Height > 0 {
			pct := measured.Offset() / content.Height * 100
			left += s.Muted.Render(fmt.Sprintf("  %.0f%%", pct))
		}
	}

	hints := strings.Join(m.Resolver.KeysFor(keymap.ActionHelp), "/") + " help"
	if quitKeys := m.Resolver.KeysFor(keymap.ActionQuit); len(quitKeys) > 0 {
		hints += " · " + quitKeys[0] + " quit"
	}
	right := s.Subtle.Render(hints)
	if m.Persist && !m.LastSavedAt.IsZero() {
		right = s.Subtle.Render("saved "+humanize.Time(m.LastSavedAt)) + "  " + right
	}

	return render.Row(left, right, m.Width)
}

// renderSheet draws the sheet panel anchored above the footer and the
// input bar, sized by the controller's current offset.
func (m Model) renderSheet() string {
	metrics := m.Controller.Metrics()
	if !metrics.IsMeasured() || m.Width < 4 {
		return ""
	}
	measured := metrics.Measured()

	rows := int(math.Round(measured.Offset()))
	bottom := m.Height - m.bottomInset()
	if rows > bottom {
		rows = bottom
	}
	if rows <= 0 {
		return ""
	}
	top := bottom - rows

	t := styles.T()
	if rows == 1 {
		edge := lipgloss.NewStyle().Foreground(t.BorderFocus).Render(render.Separator(m.Width))
		return strings.Repeat("\n", top) + edge
	}

	innerWidth := m.Width - 2
	body := m.sheetBodyLines(innerWidth)
	if len(body) > rows-2 {
		body = body[:rows-2]
	}
	for len(body) < rows-2 {
		body = append(body, "")
	}

	box := styles.PanelStyle(true).Width(innerWidth).Render(strings.Join(body, "\n"))
	return strings.Repeat("\n", top) + box
}

func (m Model) sheetBodyLines(width int) []string {
	s := styles.T().S()
	measured := m.Controller.Metrics().Measured()
	content := measured.ContentSize()

	handle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(styles.T().FgSubtle).
		Render("━━━━━━")

	pct := 0.0
	if content.Height > 0 {
		pct = measured.Offset() / content.Height * 100
	}

	detent := "none"
	if n := len(m.Detents); n > 0 {
		detent = fmt.Sprintf("%s of %d", humanize.Ordinal(m.currentDetentIndex()+1), n)
	}

	noteCount := "none yet"
	if n := len(m.Notes); n > 0 {
		noteCount = fmt.Sprintf("%d saved", n)
	}

	position := fmt.Sprintf("%.0f%% · %.0f of %.0f rows", pct, measured.Offset(), content.Height)

	return []string{
		handle,
		" " + s.Title.Render("Details"),
		"",
		" " + s.Muted.Render("Position") + "   " + s.Base.Render(position),
		" " + s.Muted.Render("Detent") + "     " + s.Base.Render(detent),
		" " + s.Muted.Render("Status") + "     " + s.Base.Render(m.Controller.Status().String()),
		"",
		" " + s.Muted.Render("Notes") + "      " + s.Base.Render(noteCount),
		"",
		" " + s.Subtle.Render("tab/shift+tab detents · f/d fling · s settle"),
	}
}

func (m Model) renderInputBar() string {
	if m.Width < 4 {
		return ""
	}
	box := styles.PanelStyle(true).Width(m.Width - 2).Render(" " + m.Input.View())
	top := m.Height - footerHeight - inputBarHeight
	if top < 0 {
		top = 0
	}
	return strings.Repeat("\n", top) + box
}
