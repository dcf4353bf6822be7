package controller

import (
	"crmctl/internal/tui/model"
	"crmctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions and
// resizes the log overlay viewport to match.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	m.LogViewport.Width, m.LogViewport.Height = view.LogViewportSize(m.Width, m.Height)
	m.Help.Width = m.Width
	return m, nil
}
