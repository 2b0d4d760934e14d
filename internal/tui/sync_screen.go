package tui

import "github.com/charmbracelet/bubbles/spinner"

// syncModel is the spinner shown while a sync or download runs.
type syncModel struct {
	spinner spinner.Model
	label   string
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{spinner: s}
}

func (m syncModel) View() string {
	label := m.label
	if label == "" {
		label = "Syncing..."
	}
	return m.spinner.View() + " " + label
}
