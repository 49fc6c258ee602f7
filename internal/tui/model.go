package tui

import (
	"pathctl/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Entries []model.PathEntry
	Loading bool
	load    func() []model.PathEntry

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Entries to show
	SearchActive    bool
}

// InitialModel returns the initial state. The load callback runs the
// analysis off the UI loop once the program starts.
func InitialModel(load func() []model.PathEntry) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Binary name..."
	ti.CharLimit = 50
	ti.Width = 20

	return AppModel{
		Loading:     true,
		InputBuffer: ti,
		SelectedIdx: 0,
		load:        load,
	}
}

// Init kicks off the background analysis.
func (m AppModel) Init() tea.Cmd {
	return func() tea.Msg {
		return MsgAnalysisReady(m.load())
	}
}

// Run starts the interactive browser over the given analysis loader.
func Run(load func() []model.PathEntry) error {
	m := InitialModel(load)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
