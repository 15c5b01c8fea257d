package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ice-orion/smooth-sheets/internal/app"
	"github.com/ice-orion/smooth-sheets/internal/config"
	"github.com/ice-orion/smooth-sheets/internal/errmsg"
	"github.com/ice-orion/smooth-sheets/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	var stateMgr state.Interface
	if cfg.PersistEnabled() {
		mgr, err := openState(cfg)
		if err != nil {
			fmt.Println(errmsg.Format(errmsg.OpStateOpen, err))
			os.Exit(1)
		}
		stateMgr = mgr
	}

	m := app.New(cfg, stateMgr)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()

	// Close flushes any pending debounced write before the process exits.
	if stateMgr != nil {
		if err := stateMgr.Close(); err != nil {
			fmt.Println(errmsg.Format(errmsg.OpStateSave, err))
		}
	}

	if runErr != nil {
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
}

// openState opens the position database, honoring a custom path when the
// config file sets one.
func openState(cfg *config.Config) (*state.Manager, error) {
	if cfg.State.Path != "" {
		return state.OpenAt(cfg.State.Path)
	}
	return state.Open()
}
