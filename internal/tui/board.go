package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
)

// RunBoard starts the interactive board against an already loaded store.
func RunBoard(store *engine.Store, out io.Writer) error {
	m := newBoardModel(store)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
