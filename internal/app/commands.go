// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// framePeriod is the interval between simulation frames.
const framePeriod = time.Second / 60

// FrameCmd returns a command that sends FrameMsg after one frame period.
func FrameCmd() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// WaitForAnimationCmd returns a command that waits for a detent animation
// to finish.
func WaitForAnimationCmd(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return AnimationDoneMsg{}
	}
}
