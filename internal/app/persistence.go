// internal/app/persistence.go
package app

import (
	"time"

	"github.com/ice-orion/smooth-sheets/internal/state"
)

// SaveRestingPosition persists the sheet's position as a fraction of the
// content height, so it can be restored at the next run regardless of the
// terminal size.
func (m *Model) SaveRestingPosition() {
	if !m.Persist || m.StateMgr == nil {
		return
	}
	metrics := m.Controller.Metrics()
	if !metrics.IsMeasured() {
		return
	}
	measured := metrics.Measured()
	content := measured.ContentSize()
	if content.Height <= 0 {
		return
	}

	fraction := measured.Offset() / content.Height
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	m.StateMgr.SavePosition(state.PositionState{
		Fraction: fraction,
		SavedAt:  time.Now(),
	})
	m.LastSavedAt = time.Now()
}
