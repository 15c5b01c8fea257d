// internal/app/app.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ice-orion/smooth-sheets/internal/config"
	"github.com/ice-orion/smooth-sheets/internal/keymap"
	"github.com/ice-orion/smooth-sheets/internal/physics"
	"github.com/ice-orion/smooth-sheets/internal/sheet"
	"github.com/ice-orion/smooth-sheets/internal/state"
	"github.com/ice-orion/smooth-sheets/internal/ui/helpbindings"
)

// Drag tuning: rows moved per keypress and the velocity range, in rows
// per second, that repeated presses can register as. A fling key releases
// at flingVelocity directly.
const (
	dragStep        = 2.0
	minDragVelocity = 2.0
	maxDragVelocity = 60.0
	flingVelocity   = 40.0
)

// Model is the root application model containing all state.
type Model struct {
	Controller *sheet.Controller
	StateMgr   state.Interface
	Resolver   *keymap.Resolver

	Detents      []sheet.Extent
	AnimDuration time.Duration
	AnimCurve    sheet.Curve
	Persist      bool

	Input        textinput.Model
	InputVisible bool
	Notes        []string

	HelpPopup helpbindings.Model
	ShowHelp  bool

	Ticking      bool
	Dragging     bool
	LastDragAt   time.Time
	DragVelocity float64

	LastSavedAt time.Time
	Width       int
	Height      int
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// New creates a new application model from configuration. When
// persistence is enabled, the sheet starts where the last run left it.
// stateMgr may be nil when persistence is disabled.
func New(cfg *config.Config, stateMgr state.Interface) Model {
	sheetCfg := cfg.GetSheetConfig()
	physicsCfg := cfg.GetPhysicsConfig()
	animCfg := cfg.GetAnimationConfig()

	detents := sheetCfg.DetentExtents()

	initial := sheetCfg.InitialExtent()
	if cfg.PersistEnabled() && stateMgr != nil {
		if pos, err := stateMgr.GetPosition(); err == nil && pos != nil &&
			pos.Fraction >= 0 && pos.Fraction <= 1 {
			initial = sheet.Proportional(pos.Fraction)
		}
	}

	ctrl := sheet.NewController(sheet.Config{
		MinExtent:     sheetCfg.MinExtent(),
		MaxExtent:     sheetCfg.MaxExtent(),
		InitialExtent: initial,
		Physics: physics.NewSnapPhysics(physics.SnapConfig{
			Detents:         detents,
			SpringFrequency: physicsCfg.SpringFrequency,
			SpringDamping:   physicsCfg.SpringDamping,
			FrictionTau:     physicsCfg.FrictionTimeConstant,
			RestDistance:    physicsCfg.RestDistance,
			RestVelocity:    physicsCfg.RestVelocity,
		}),
	})

	ti := textinput.New()
	ti.Placeholder = "Add a note..."
	ti.CharLimit = 256
	ti.Width = 50

	help := helpbindings.New()
	help.SetContexts([]string{"global", "sheet", "detent"})

	return Model{
		Controller:   ctrl,
		StateMgr:     stateMgr,
		Resolver:     keymap.NewResolver(keymap.Bindings),
		Detents:      detents,
		AnimDuration: animCfg.Duration(),
		AnimCurve:    animCfg.Easing(),
		Persist:      cfg.PersistEnabled(),
		Input:        ti,
		HelpPopup:    help,
	}
}
