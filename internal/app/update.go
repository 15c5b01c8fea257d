// internal/app/update.go
package app

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ice-orion/smooth-sheets/internal/keymap"
	"github.com/ice-orion/smooth-sheets/internal/sheet"
	"github.com/ice-orion/smooth-sheets/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case AnimationDoneMsg:
		return m.handleAnimationDone()

	case helpbindings.CloseMsg:
		m.ShowHelp = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.HelpPopup.SetSize(msg.Width, msg.Height)
	m.applyDimensions()
	return m, nil
}

// applyDimensions pushes the current layout into the controller as one
// batch, so the activity sees a resize and an inset change together.
func (m *Model) applyDimensions() {
	if m.Width <= 0 || m.Height <= 0 {
		return
	}
	end := m.Controller.BeginDimensionChange()
	defer end()
	m.Controller.ApplyContentSize(sheet.Size{
		Width:  float64(m.Width),
		Height: float64(m.sheetContentHeight()),
	})
	m.Controller.ApplyViewport(sheet.Viewport{
		Width:  float64(m.Width),
		Height: float64(m.Height),
		Insets: sheet.Insets{Bottom: float64(m.bottomInset())},
	})
}

// sheetContentHeight is the sheet's natural height in rows: the screen
// minus the footer and the input bar when it is open.
func (m Model) sheetContentHeight() int {
	h := m.Height - m.bottomInset()
	if h < 0 {
		h = 0
	}
	return h
}

func (m Model) bottomInset() int {
	inset := footerHeight
	if m.InputVisible {
		inset += inputBarHeight
	}
	return inset
}

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.Ticking {
		return m, nil
	}
	if m.Controller.Status().IsAnimating() {
		m.Controller.Tick(now)
	}
	if m.Controller.Status().IsAnimating() {
		return m, FrameCmd()
	}
	m.Ticking = false
	m.SaveRestingPosition()
	return m, nil
}

func (m Model) handleAnimationDone() (tea.Model, tea.Cmd) {
	// The channel also closes when another motion supersedes the
	// animation; only a real stop ends the frame loop.
	if !m.Controller.Status().IsAnimating() {
		m.Ticking = false
		m.SaveRestingPosition()
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help popup swallows all keys while open
	if m.ShowHelp {
		var cmd tea.Cmd
		m.HelpPopup, cmd = m.HelpPopup.Update(msg)
		return m, cmd
	}

	// Input bar mode
	if m.InputVisible {
		return m.handleInputKey(msg)
	}

	return m.handleActionKey(msg.String())
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeInput(), nil
	case "enter":
		if note := strings.TrimSpace(m.Input.Value()); note != "" {
			m.Notes = append(m.Notes, note)
		}
		m.Input.SetValue("")
		return m.closeInput(), nil
	}
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleActionKey(key string) (tea.Model, tea.Cmd) {
	action := m.Resolver.Resolve(key)

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
		return m, nil
	case keymap.ActionToggleInput:
		return m.openInput()
	}

	// Everything below moves the sheet, which needs dimensions first.
	if !m.Controller.Metrics().IsMeasured() {
		return m, nil
	}

	switch action {
	case keymap.ActionDragUp:
		m.applyDrag(dragStep)
		return m, nil
	case keymap.ActionDragDown:
		m.applyDrag(-dragStep)
		return m, nil
	case keymap.ActionRelease:
		return m.releaseDrag()
	case keymap.ActionFlingUp:
		return m.fling(flingVelocity)
	case keymap.ActionFlingDown:
		return m.fling(-flingVelocity)
	case keymap.ActionSettle:
		m.Dragging = false
		m.Controller.Settle()
		return m.ensureTicking()
	case keymap.ActionNextDetent:
		return m.animateToDetent(m.currentDetentIndex() + 1)
	case keymap.ActionPrevDetent:
		return m.animateToDetent(m.currentDetentIndex() - 1)
	case keymap.ActionExpand:
		return m.animateToExtent(m.Controller.MaxExtent())
	case keymap.ActionCollapse:
		return m.animateToExtent(m.Controller.MinExtent())
	}

	return m, nil
}

func (m Model) openInput() (tea.Model, tea.Cmd) {
	m.InputVisible = true
	m.applyDimensions()
	return m, m.Input.Focus()
}

func (m Model) closeInput() Model {
	m.InputVisible = false
	m.Input.Blur()
	m.applyDimensions()
	return m
}

// applyDrag moves the sheet by delta rows and keeps a velocity estimate
// from the spacing of repeated presses, for the release fling.
func (m *Model) applyDrag(delta float64) {
	now := time.Now()
	if m.Dragging {
		if dt := now.Sub(m.LastDragAt).Seconds(); dt > 0 {
			v := dragStep / dt
			if v < minDragVelocity {
				v = minDragVelocity
			}
			if v > maxDragVelocity {
				v = maxDragVelocity
			}
			if delta < 0 {
				v = -v
			}
			m.DragVelocity = v
		}
	} else {
		m.Dragging = true
		m.DragVelocity = 0
	}
	m.LastDragAt = now
	m.Controller.DragBy(delta)
}

func (m Model) releaseDrag() (tea.Model, tea.Cmd) {
	if !m.Dragging {
		return m, nil
	}
	m.Dragging = false
	m.Controller.GoBallistic(m.DragVelocity)
	return m.ensureTicking()
}

func (m Model) fling(velocity float64) (tea.Model, tea.Cmd) {
	m.Dragging = false
	m.Controller.GoBallistic(velocity)
	return m.ensureTicking()
}

func (m Model) animateToDetent(idx int) (tea.Model, tea.Cmd) {
	if len(m.Detents) == 0 {
		return m, nil
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.Detents)-1 {
		idx = len(m.Detents) - 1
	}
	return m.animateToExtent(m.Detents[idx])
}

func (m Model) animateToExtent(target sheet.Extent) (tea.Model, tea.Cmd) {
	m.Dragging = false
	done := m.Controller.AnimateTo(target, m.AnimCurve, m.AnimDuration)
	model, tickCmd := m.ensureTicking()
	return model, tea.Batch(WaitForAnimationCmd(done), tickCmd)
}

// ensureTicking starts the frame loop when motion is in progress. When a
// request left the sheet at rest instead, the position is persisted right
// away.
func (m Model) ensureTicking() (tea.Model, tea.Cmd) {
	if !m.Controller.Status().IsAnimating() {
		m.SaveRestingPosition()
		return m, nil
	}
	if m.Ticking {
		return m, nil
	}
	m.Ticking = true
	return m, FrameCmd()
}

// currentDetentIndex returns the detent nearest the current offset.
func (m Model) currentDetentIndex() int {
	if len(m.Detents) == 0 {
		return 0
	}
	measured := m.Controller.Metrics().Measured()
	content := measured.ContentSize()
	offset := measured.Offset()

	best := 0
	bestDist := math.Abs(m.Detents[0].Resolve(content) - offset)
	for i, d := range m.Detents[1:] {
		if dist := math.Abs(d.Resolve(content) - offset); dist < bestDist {
			best, bestDist = i+1, dist
		}
	}
	return best
}
